package diag

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/feedback-widget/internal/config"
)

func TestNew_WithoutDSNIsNop(t *testing.T) {
	reporter, err := New(config.Default(), "test")
	require.NoError(t, err)

	assert.IsType(t, Nop{}, reporter)
	assert.NotPanics(t, func() { reporter.Report(errors.New("boom"), nil) })
	assert.True(t, reporter.Flush(time.Millisecond))
}

func TestNew_InvalidDSN(t *testing.T) {
	cfg := config.Default()
	cfg.SentryDSN = "::not a dsn"

	_, err := New(cfg, "test")
	assert.Error(t, err)
}

func TestSentryReporter_Report(t *testing.T) {
	var (
		mu     sync.Mutex
		events []*sentry.Event
	)

	reporter, err := NewSentry(sentry.ClientOptions{
		Dsn: "https://public@sentry.example.com/1",
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
			return nil
		},
	})
	require.NoError(t, err)

	reporter.Report(errors.New("form endpoint unreachable"), map[string]string{"component": "submit"})
	reporter.Report(nil, nil)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, "submit", events[0].Tags["component"])
	require.NotEmpty(t, events[0].Exception)
	exceptions := events[0].Exception
	assert.Equal(t, "form endpoint unreachable", exceptions[len(exceptions)-1].Value)
}
