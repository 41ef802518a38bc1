package submit

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/feedback-widget/internal/config"
	"github.com/ytget/feedback-widget/internal/model"
)

type recordingReporter struct {
	mu   sync.Mutex
	errs []error
	tags []map[string]string
}

func (r *recordingReporter) Report(err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
	r.tags = append(r.tags, tags)
}

func (r *recordingReporter) Flush(time.Duration) bool { return true }

func (r *recordingReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs)
}

func testForm(url string) config.FormConfig {
	return config.FormConfig{
		URL:          url,
		RatingField:  config.DefaultRatingField,
		CommentField: config.DefaultCommentField,
		Timeout:      2 * time.Second,
	}
}

func newTestSink(t *testing.T, url string, opts ...Option) (*Sink, chan Result) {
	t.Helper()
	sink := NewSink(testForm(url), zap.NewNop(), opts...)
	results := make(chan Result, 4)
	sink.SetResultCallback(func(r Result) { results <- r })
	return sink, results
}

func waitResult(t *testing.T, results chan Result) Result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery result")
		return Result{}
	}
}

func TestSink_PostsMultipartForm(t *testing.T) {
	type received struct {
		method, mediaType, rating, comment string
	}
	got := make(chan received, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		got <- received{
			method:    r.Method,
			mediaType: mediaType,
			rating:    r.FormValue("entry.781153381"),
			comment:   r.FormValue("entry.1124057666"),
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "<html>ignored</html>")
	}))
	defer server.Close()

	sink, results := newTestSink(t, server.URL)
	sink.Submit(2, "food was cold")

	result := waitResult(t, results)
	assert.True(t, result.OK())
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, model.Rating(2), result.Rating)
	assert.NotEmpty(t, result.FeedbackID)

	req := <-got
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "multipart/form-data", req.mediaType)
	assert.Equal(t, "2", req.rating)
	assert.Equal(t, "food was cold", req.comment)
}

func TestSink_OneAttemptPerSubmit(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	reporter := &recordingReporter{}
	sink, results := newTestSink(t, server.URL, WithReporter(reporter))

	sink.Submit(1, "rude staff")
	sink.Submit(1, "rude staff")

	for i := 0; i < 2; i++ {
		result := waitResult(t, results)
		assert.False(t, result.OK())
		assert.ErrorIs(t, result.Err, ErrUnexpectedStatus)
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	}

	require.NoError(t, sink.Wait(context.Background()))
	assert.Equal(t, int32(2), hits.Load(), "no retries and no dedup across submissions")
	assert.Equal(t, 2, reporter.count())
	assert.Equal(t, "submit", reporter.tags[0]["component"])
}

func TestSink_TransportErrorIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	reporter := &recordingReporter{}
	sink, results := newTestSink(t, url, WithReporter(reporter))

	assert.NotPanics(t, func() { sink.Submit(3, "long wait") })

	result := waitResult(t, results)
	assert.Error(t, result.Err)
	assert.Zero(t, result.StatusCode)
	assert.Equal(t, 1, reporter.count())
}

func TestSink_SubmitDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	sink, results := newTestSink(t, server.URL)

	done := make(chan struct{})
	go func() {
		sink.Submit(2, "cold fries")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on the network")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, sink.Wait(ctx), context.DeadlineExceeded)

	select {
	case <-results:
		t.Fatal("result reported before the endpoint answered")
	default:
	}
}

func TestSink_TimeoutIsReported(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	form := testForm(server.URL)
	form.Timeout = 100 * time.Millisecond
	sink := NewSink(form, zap.NewNop())
	results := make(chan Result, 1)
	sink.SetResultCallback(func(r Result) { results <- r })

	sink.Submit(1, "never arrived")

	result := waitResult(t, results)
	assert.Error(t, result.Err)
}

func TestSink_InvalidFeedbackIsNotSent(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	sink, results := newTestSink(t, server.URL)

	sink.Submit(0, "no rating")
	sink.Submit(2, "   ")

	first := waitResult(t, results)
	second := waitResult(t, results)
	assert.Error(t, first.Err)
	assert.True(t, errors.Is(second.Err, model.ErrBlankComment))

	require.NoError(t, sink.Wait(context.Background()))
	assert.Zero(t, hits.Load())
}

func TestEncodeForm(t *testing.T) {
	fb, err := model.NewFeedback(4, "line one\nline two", model.LanguageArabic)
	require.NoError(t, err)

	body, contentType, err := EncodeForm(testForm("https://example.com"), fb)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="))

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `name="entry.781153381"`)
	assert.Contains(t, string(raw), `name="entry.1124057666"`)
	assert.Contains(t, string(raw), "line one\nline two")
}

func TestNewSink_Defaults(t *testing.T) {
	sink := NewSink(config.FormConfig{URL: "https://example.com"}, nil)

	assert.Equal(t, config.DefaultSubmitTimeout, sink.form.Timeout)
	assert.Equal(t, config.DefaultSubmitTimeout, sink.client.Timeout)
	assert.NotNil(t, sink.log)
}
