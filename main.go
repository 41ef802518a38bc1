package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/feedback-widget/internal/config"
	"github.com/ytget/feedback-widget/internal/diag"
	"github.com/ytget/feedback-widget/internal/flow"
	"github.com/ytget/feedback-widget/internal/logger"
	"github.com/ytget/feedback-widget/internal/submit"
	"github.com/ytget/feedback-widget/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.feedback-widget"

	// ShutdownTimeout bounds the wait for in-flight submissions on exit
	ShutdownTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Feedback widget starting", zap.String("version", version), zap.String("environment", cfg.Environment))

	reporter, err := diag.New(cfg, version)
	if err != nil {
		log.Warn("Diagnostics disabled", zap.Error(err))
		reporter = diag.Nop{}
	}
	defer reporter.Flush(2 * time.Second)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppID)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp.Preferences())
	sink := submit.NewSink(cfg.Form, log, submit.WithReporter(reporter))
	machine := flow.NewMachine(settings, sink, myApp, cfg.ReviewURL, log)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, machine, log)

	// Show and run
	myWindow.ShowAndRun()

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := sink.Wait(ctx); err != nil {
		log.Warn("Exiting with submissions in flight", zap.Error(err))
	}
	log.Info("Feedback widget stopped")
}
