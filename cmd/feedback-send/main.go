// Command feedback-send posts one rating and comment through the same sink the
// widget uses. It is meant for checking the form endpoint configuration.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/feedback-widget/internal/config"
	"github.com/ytget/feedback-widget/internal/diag"
	"github.com/ytget/feedback-widget/internal/logger"
	"github.com/ytget/feedback-widget/internal/model"
	"github.com/ytget/feedback-widget/internal/submit"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var rating int
	var comment string
	var strict bool

	fs := flag.NewFlagSet("feedback-send", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&rating, "rating", 0, "Star rating 1-5")
	fs.StringVar(&comment, "comment", "", "Feedback comment")
	fs.BoolVar(&strict, "strict", false, "Exit 1 when delivery fails")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	reporter, err := diag.New(cfg, version)
	if err != nil {
		log.Warn("Diagnostics disabled", zap.Error(err))
		reporter = diag.Nop{}
	}
	defer reporter.Flush(2 * time.Second)

	results := make(chan submit.Result, 1)
	sink := submit.NewSink(cfg.Form, log, submit.WithReporter(reporter))
	sink.SetResultCallback(func(r submit.Result) { results <- r })
	sink.Submit(model.Rating(rating), comment)

	if err := sink.Wait(ctx); err != nil {
		fmt.Fprintf(stderr, "Interrupted: %v\n", err)
		return 1
	}

	result := <-results
	if result.OK() {
		fmt.Fprintf(stdout, "Delivered %s (status %d) in %s\n", result.FeedbackID, result.StatusCode, result.Duration.Round(time.Millisecond))
		return 0
	}

	fmt.Fprintf(stdout, "Delivery failed: %v\n", result.Err)
	if strict {
		return 1
	}
	return 0
}
