package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// SMTPChecker performs the relay's capability handshake without sending mail:
// greeting, EHLO, STARTTLS when offered on a plain connection, AUTH when
// credentials are configured, QUIT.
type SMTPChecker struct {
	Addr      string
	Username  string
	Password  string
	Secure    bool // implicit TLS
	TLSConfig *tls.Config
	Dialer    *net.Dialer
}

func NewSMTPChecker(addr, username, password string, secure bool) *SMTPChecker {
	host, _, _ := net.SplitHostPort(addr)
	return &SMTPChecker{
		Addr:      addr,
		Username:  username,
		Password:  password,
		Secure:    secure,
		TLSConfig: &tls.Config{ServerName: host},
		Dialer:    &net.Dialer{},
	}
}

func (c *SMTPChecker) Name() string { return "smtp" }

func (c *SMTPChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	if err := c.verify(ctx); err != nil {
		return failed(c.Name(), start, err)
	}
	return passed(c.Name(), start, "handshake ok")
}

func (c *SMTPChecker) verify(ctx context.Context) error {
	host, _, err := net.SplitHostPort(c.Addr)
	if err != nil || host == "" {
		return errors.New("SMTP_HOST is not set")
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("connecting to SMTP %s: %w", c.Addr, err)
	}
	defer bindConn(ctx, conn)()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("greeting: %w", err)
	}
	defer client.Close()

	if !c.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(c.TLSConfig); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}
	if c.Username != "" {
		if err := client.Auth(sasl.NewPlainClient("", c.Username, c.Password)); err != nil {
			return fmt.Errorf("authentication failed for %s: %w", c.Username, err)
		}
	}
	if err := client.Quit(); err != nil {
		return fmt.Errorf("quit: %w", err)
	}
	return nil
}

func (c *SMTPChecker) dial(ctx context.Context) (net.Conn, error) {
	if !c.Secure {
		return c.Dialer.DialContext(ctx, "tcp", c.Addr)
	}
	d := &tls.Dialer{NetDialer: c.Dialer, Config: c.TLSConfig}
	return d.DialContext(ctx, "tcp", c.Addr)
}
