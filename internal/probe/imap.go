package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/emersion/go-imap/v2/imapclient"
)

// IMAPChecker opens an authenticated session to a mailbox server and logs
// straight back out.
type IMAPChecker struct {
	Addr      string
	Username  string
	Password  string
	TLS       bool        // implicit TLS; false means a plain TCP session
	TLSConfig *tls.Config // used when TLS is set
	Dialer    *net.Dialer
}

func NewIMAPChecker(addr, username, password string, useTLS, skipVerify bool) *IMAPChecker {
	host, _, _ := net.SplitHostPort(addr)
	return &IMAPChecker{
		Addr:     addr,
		Username: username,
		Password: password,
		TLS:      useTLS,
		TLSConfig: &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: skipVerify,
		},
		Dialer: &net.Dialer{},
	}
}

func (c *IMAPChecker) Name() string { return "imap" }

func (c *IMAPChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	if err := c.session(ctx); err != nil {
		return failed(c.Name(), start, err)
	}
	return passed(c.Name(), start, "logged in as "+c.Username)
}

func (c *IMAPChecker) session(ctx context.Context) error {
	host, _, err := net.SplitHostPort(c.Addr)
	if err != nil || host == "" {
		return errors.New("IMAP_HOST is not set")
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("connecting to IMAP %s: %w", c.Addr, err)
	}
	defer bindConn(ctx, conn)()

	client := imapclient.New(conn, nil)
	defer client.Close()

	// imapclient commands take no context; closing conn unblocks them.
	done := make(chan error, 1)
	go func() { done <- c.login(client) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("IMAP session with %s: %w", c.Addr, ctx.Err())
	}
}

func (c *IMAPChecker) login(client *imapclient.Client) error {
	if err := client.Login(c.Username, c.Password).Wait(); err != nil {
		return fmt.Errorf("authentication failed for %s: %w", c.Username, err)
	}
	_ = client.Logout().Wait()
	return nil
}

func (c *IMAPChecker) dial(ctx context.Context) (net.Conn, error) {
	if !c.TLS {
		return c.Dialer.DialContext(ctx, "tcp", c.Addr)
	}
	d := &tls.Dialer{NetDialer: c.Dialer, Config: c.TLSConfig}
	return d.DialContext(ctx, "tcp", c.Addr)
}
