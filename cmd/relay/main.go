// Command relay serves the portfolio site and relays contact form
// submissions to the configured mail provider.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ashimpoudel/portfolio"
	"github.com/ashimpoudel/portfolio/handlers"
	"github.com/ashimpoudel/portfolio/internal/config"
	"github.com/ashimpoudel/portfolio/middlewares"
	"github.com/ashimpoudel/portfolio/pkg/contact"
	"github.com/ashimpoudel/portfolio/pkg/health"
	"github.com/ashimpoudel/portfolio/pkg/logger"
	"github.com/ashimpoudel/portfolio/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New(cfg.Logger,
		middlewares.RequestIDExtractor(),
		contact.SubmissionIDExtractor(),
	).With("app", "portfolio-relay")

	if err := run(cfg, log); err != nil {
		log.Error("relay stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	sender, err := config.NewSender(cfg, log)
	if err != nil {
		return err
	}

	relay := contact.NewRelay(sender, cfg.ContactTo,
		contact.WithSendTimeout(cfg.MailSendTimeout),
		contact.WithLogger(log.With("component", "contact.relay")),
	)

	readiness := []portfolio.HealthOption{
		portfolio.WithReadinessCheck("mailer", health.Static(nil)),
	}
	if cfg.ResumePath != "" {
		readiness = append(readiness, portfolio.WithReadinessCheck("resume", health.FileReadable(cfg.ResumePath)))
	}

	app := portfolio.New(
		portfolio.WithLogger(log),
		portfolio.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(middlewares.WithSkipPaths("/health/live", "/health/ready")),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSAllowedOrigins...)),
			middlewares.BodyLimit(cfg.MaxBodyBytes),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		portfolio.WithHealthChecks(readiness...),
		portfolio.WithHandlers(
			handlers.NewContact(relay),
			handlers.NewResume(cfg.ResumePath, cfg.ResumeDownloadName),
		),
		portfolio.WithStaticFiles("/*", web.Assets, web.Root),
	)

	log.Info("starting relay",
		slog.String("addr", cfg.Address),
		slog.String("mail_provider", cfg.MailProvider),
	)

	return app.Run(cfg.Address,
		portfolio.Logger(log),
		portfolio.ShutdownTimeout(cfg.ShutdownTimeout),
		portfolio.ShutdownHook(func(context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		}),
	)
}
