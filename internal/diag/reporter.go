// Package diag reports errors the app swallows on purpose, such as failed
// feedback deliveries, to Sentry when a DSN is configured.
package diag

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ytget/feedback-widget/internal/config"
)

// Reporter receives errors that are not surfaced to the user
type Reporter interface {
	Report(err error, tags map[string]string)
	Flush(timeout time.Duration) bool
}

// New returns a Sentry reporter when cfg has a DSN and a no-op reporter otherwise
func New(cfg *config.Config, release string) (Reporter, error) {
	if cfg.SentryDSN == "" {
		return Nop{}, nil
	}
	return NewSentry(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     release,
	})
}

// Nop discards reports
type Nop struct{}

func (Nop) Report(error, map[string]string) {}

func (Nop) Flush(time.Duration) bool { return true }

// SentryReporter sends reports through its own hub
type SentryReporter struct {
	hub *sentry.Hub
}

// NewSentry creates a reporter with a dedicated client
func NewSentry(options sentry.ClientOptions) (*SentryReporter, error) {
	client, err := sentry.NewClient(options)
	if err != nil {
		return nil, err
	}
	return &SentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Report captures err with the given tags
func (r *SentryReporter) Report(err error, tags map[string]string) {
	if err == nil {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

// Flush waits for queued events to be sent
func (r *SentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}
