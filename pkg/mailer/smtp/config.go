package smtp

import "time"

// Config holds SMTP account settings.
// The account identifier doubles as the envelope sender.
type Config struct {
	Host     string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Username string        `env:"EMAIL_USER"`
	Password string        `env:"EMAIL_PASS"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
}
