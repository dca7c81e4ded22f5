// Package config loads the relay configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ashimpoudel/portfolio/pkg/logger"
	"github.com/ashimpoudel/portfolio/pkg/mailer"
	"github.com/ashimpoudel/portfolio/pkg/mailer/logsender"
	"github.com/ashimpoudel/portfolio/pkg/mailer/resend"
	"github.com/ashimpoudel/portfolio/pkg/mailer/smtp"
)

// Mail providers.
const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
	ProviderLog    = "log"
)

// ErrInvalid wraps every configuration problem found by Load.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete relay configuration.
type Config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`

	MailProvider    string        `env:"MAIL_PROVIDER" envDefault:"smtp"`
	MailSendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"10s"`
	// ContactTo defaults to the SMTP account identifier.
	ContactTo string `env:"CONTACT_TO"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	ResumePath         string `env:"RESUME_PATH"`
	ResumeDownloadName string `env:"RESUME_DOWNLOAD_NAME" envDefault:"Ashim_Poudel_Resume.pdf"`

	SMTP   smtp.Config
	Resend resend.Config
	Logger logger.Config
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.MailProvider = strings.ToLower(strings.TrimSpace(cfg.MailProvider))
	if cfg.ContactTo == "" {
		cfg.ContactTo = cfg.SMTP.Username
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once so a misconfigured deployment
// fails on its first start.
func (c Config) Validate() error {
	var errs []error

	switch c.MailProvider {
	case ProviderSMTP:
		if c.SMTP.Username == "" || c.SMTP.Password == "" {
			errs = append(errs, errors.New("EMAIL_USER and EMAIL_PASS are required for the smtp provider"))
		}
	case ProviderResend:
		if c.Resend.APIKey == "" || c.Resend.SenderEmail == "" {
			errs = append(errs, errors.New("RESEND_API_KEY and RESEND_FROM_EMAIL are required for the resend provider"))
		}
	case ProviderLog:
	default:
		errs = append(errs, fmt.Errorf("MAIL_PROVIDER %q is not one of smtp, resend, log", c.MailProvider))
	}

	if c.ContactTo == "" {
		errs = append(errs, errors.New("CONTACT_TO is required when EMAIL_USER is not set"))
	} else if _, err := mail.ParseAddress(c.ContactTo); err != nil {
		errs = append(errs, fmt.Errorf("CONTACT_TO: %w", err))
	}

	if c.MailSendTimeout <= 0 {
		errs = append(errs, errors.New("MAIL_SEND_TIMEOUT must be positive"))
	}
	if c.RequestTimeout > 0 && c.RequestTimeout < c.MailSendTimeout {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must not be shorter than MAIL_SEND_TIMEOUT"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// NewSender builds the configured mail provider.
func NewSender(c Config, log *slog.Logger) (mailer.Sender, error) {
	switch c.MailProvider {
	case ProviderSMTP:
		return smtp.New(c.SMTP)
	case ProviderResend:
		return resend.New(c.Resend)
	case ProviderLog:
		return logsender.New(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown mail provider %q", mailer.ErrMisconfigured, c.MailProvider)
	}
}
