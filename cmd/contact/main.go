// Command contact submits the portfolio contact form from a terminal.
//
//	contact --name Alice --email alice@example.com --subject Hi --message "Hello there"
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ashimpoudel/portfolio/pkg/contact"
	"github.com/ashimpoudel/portfolio/pkg/contact/client"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	values   contact.Submission
	endpoint string
	timeout  time.Duration
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "contact",
		Short:         "Send a message through the portfolio contact relay",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return submit(cmd.Context(), opts, newPresenter(cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.values.Name, "name", "", "your name")
	f.StringVar(&opts.values.Email, "email", "", "your email address")
	f.StringVar(&opts.values.Subject, "subject", "", "message subject")
	f.StringVar(&opts.values.Message, "message", "", "message body")
	f.StringVar(&opts.endpoint, "endpoint", "http://localhost:8080", "relay base URL")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	return cmd
}

func submit(ctx context.Context, opts options, p client.Presenter) error {
	if ctx == nil {
		ctx = context.Background()
	}

	form := client.NewForm(client.New(opts.endpoint, client.WithTimeout(opts.timeout)), p)
	for _, field := range contact.Fields {
		if err := form.Set(field, opts.values.Value(field)); err != nil {
			return err
		}
	}

	// The presenter has already explained any failure; only the exit status is left.
	if err := form.Submit(ctx); err != nil {
		return fmt.Errorf("%w: %w", errSubmitFailed, err)
	}
	return nil
}

var errSubmitFailed = errors.New("submission failed")
