package submit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/feedback-widget/internal/config"
	"github.com/ytget/feedback-widget/internal/diag"
	"github.com/ytget/feedback-widget/internal/model"
)

// ErrUnexpectedStatus is wrapped when the endpoint answers outside 2xx
var ErrUnexpectedStatus = errors.New("unexpected status from form endpoint")

// Sink posts feedback to a form endpoint
type Sink struct {
	form     config.FormConfig
	client   *http.Client
	log      *zap.Logger
	reporter diag.Reporter

	onResult      func(Result) // callback for logging and tests
	callbackMutex sync.RWMutex

	inflight sync.WaitGroup
}

// Option configures a Sink
type Option func(*Sink)

// WithHTTPClient replaces the default client; its Timeout is overridden
// only when unset
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sink) {
		s.client = client
	}
}

// WithReporter sets where swallowed errors are reported
func WithReporter(reporter diag.Reporter) Option {
	return func(s *Sink) {
		s.reporter = reporter
	}
}

// NewSink creates a sink for the given form
func NewSink(form config.FormConfig, log *zap.Logger, opts ...Option) *Sink {
	if form.Timeout <= 0 {
		form.Timeout = config.DefaultSubmitTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Sink{
		form:     form,
		client:   &http.Client{},
		log:      log.Named("submit"),
		reporter: diag.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client.Timeout == 0 {
		s.client.Timeout = form.Timeout
	}
	return s
}

// SetResultCallback sets the callback invoked after every attempt
func (s *Sink) SetResultCallback(callback func(Result)) {
	s.callbackMutex.Lock()
	defer s.callbackMutex.Unlock()
	s.onResult = callback
}

// Submit validates the feedback and delivers it in the background
func (s *Sink) Submit(rating model.Rating, comment string) {
	fb, err := model.NewFeedback(rating, comment, "")
	if err != nil {
		s.log.Warn("Feedback rejected before delivery", zap.Int("rating", int(rating)), zap.Error(err))
		s.notifyResult(Result{Rating: rating, Err: err})
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.notifyResult(s.deliver(fb))
	}()
}

// Wait blocks until in-flight deliveries finish or ctx is done
func (s *Sink) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// deliver performs exactly one POST and never returns an error to the caller
func (s *Sink) deliver(fb *model.Feedback) Result {
	started := time.Now()
	result := Result{FeedbackID: fb.ID, Rating: fb.Rating}

	ctx, cancel := context.WithTimeout(context.Background(), s.form.Timeout)
	defer cancel()

	status, err := s.post(ctx, fb)
	result.StatusCode = status
	result.Err = err
	result.Duration = time.Since(started)

	if err != nil {
		s.log.Warn("Feedback delivery failed",
			zap.String("feedback_id", fb.ID),
			zap.Int("status", status),
			zap.Duration("duration", result.Duration),
			zap.Error(err))
		s.reporter.Report(err, map[string]string{
			"component":   "submit",
			"feedback_id": fb.ID,
		})
		return result
	}

	s.log.Info("Feedback delivered",
		zap.String("feedback_id", fb.ID),
		zap.Int("rating", int(fb.Rating)),
		zap.Int("status", status),
		zap.Duration("duration", result.Duration))
	return result
}

func (s *Sink) post(ctx context.Context, fb *model.Feedback) (int, error) {
	body, contentType, err := EncodeForm(s.form, fb)
	if err != nil {
		return 0, fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.form.URL, body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("post feedback: %w", err)
	}
	defer resp.Body.Close()

	// The response is not used; drain it so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// EncodeForm builds the multipart/form-data body with the two form fields
func EncodeForm(form config.FormConfig, fb *model.Feedback) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField(form.RatingField, fb.RatingValue()); err != nil {
		return nil, "", err
	}
	if err := w.WriteField(form.CommentField, fb.Comment); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

// notifyResult calls the result callback if set
func (s *Sink) notifyResult(result Result) {
	s.callbackMutex.RLock()
	callback := s.onResult
	s.callbackMutex.RUnlock()

	if callback != nil {
		callback(result)
	}
}
