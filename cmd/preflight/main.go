// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/hamed0406/ecommailer/internal/config"
)

func main() {
	fail := func(msg string) { fmt.Fprintln(os.Stderr, "✖", msg) }
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		fail(err.Error())
		os.Exit(1)
	}

	missing := multierr.Errors(cfg.Validate())
	for _, e := range missing {
		fail(e.Error())
	}

	if cfg.IMAP.Host != "" {
		ok("IMAP=" + cfg.IMAP.Addr())
		if cfg.IMAP.TLS && cfg.IMAP.SkipVerify {
			warn("IMAP certificate verification is disabled (IMAP_TLS_SKIP_VERIFY=true).")
		}
	}
	if cfg.SMTP.Host != "" {
		ok("SMTP=" + cfg.SMTP.Addr())
	}
	if cfg.DatabaseURL != "" {
		ok("DB_URL present")
	}
	if cfg.OllamaBaseURL != "" {
		ok("OLLAMA_BASE_URL=" + cfg.OllamaBaseURL)
	}
	if cfg.StatusAddr == "" {
		warn("STATUS_ADDR empty — status API disabled.")
	} else {
		ok("STATUS_ADDR=" + cfg.StatusAddr)
	}
	if cfg.LogDir == "" {
		warn("LOG_DIR=none — logging to standard streams only.")
	}
	ok(fmt.Sprintf("heartbeat every %s, check timeout %s", cfg.HeartbeatInterval, cfg.CheckTimeout))

	if len(missing) > 0 {
		os.Exit(1)
	}
	ok("preflight passed")
}
