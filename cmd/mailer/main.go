package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/ecommailer/internal/config"
	"github.com/hamed0406/ecommailer/internal/httpapi"
	"github.com/hamed0406/ecommailer/internal/logging"
	"github.com/hamed0406/ecommailer/internal/probe"
	"github.com/hamed0406/ecommailer/internal/repo/memory"
	"github.com/hamed0406/ecommailer/internal/scheduler"
)

func main() {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting_service", zap.String("service", cfg.Service))
	for _, e := range multierr.Errors(cfg.Validate()) {
		logger.Warn("config_missing", zap.Error(e))
	}

	checks := probe.NewMultiChecker(cfg.CheckTimeout,
		probe.NewIMAPChecker(cfg.IMAP.Addr(), cfg.MailUser, cfg.MailPass, cfg.IMAP.TLS, cfg.IMAP.SkipVerify),
		probe.NewSMTPChecker(cfg.SMTP.Addr(), cfg.MailUser, cfg.MailPass, cfg.SMTP.Secure),
		probe.NewPostgresChecker(cfg.DatabaseURL),
		probe.NewOllamaChecker(cfg.OllamaBaseURL),
	)
	runs := memory.New()

	if cfg.StatusAddr != "" {
		srv := &http.Server{
			Addr:              cfg.StatusAddr,
			Handler:           httpapi.NewServer(logger, runs).Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("status_listen", zap.String("addr", cfg.StatusAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("status_listen_error", zap.Error(err))
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	scheduler.Run(ctx,
		scheduler.NewProber(logger, checks, runs),
		scheduler.NewHeartbeat(logger, cfg.Service, cfg.HeartbeatInterval),
	)
}
