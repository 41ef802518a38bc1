package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/feedback-widget/internal/flow"
	"github.com/ytget/feedback-widget/internal/i18n"
	"github.com/ytget/feedback-widget/internal/model"
)

// RootUI renders the machine's current screen into a window
type RootUI struct {
	window  fyne.Window
	app     fyne.App
	machine *flow.Machine
	mobile  *MobileUI
	log     *zap.Logger

	header *Header
	body   *fyne.Container
	footer *widget.Label

	view          flow.ViewModel
	themeApplied  bool
	draft         string // feedback comment kept across language and theme changes
	copiedTimeout time.Duration

	// Widgets of the current screen, nil when not shown
	stars        []*widget.Button
	ratingLabel  *widget.Label
	backButton   *widget.Button
	commentEntry *widget.Entry
	submitButton *widget.Button
	reviewButton *widget.Button
	copyButtons  []*widget.Button
	againButton  *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, machine *flow.Machine, log *zap.Logger) *RootUI {
	if log == nil {
		log = zap.NewNop()
	}

	ui := &RootUI{
		window:        window,
		app:           app,
		machine:       machine,
		mobile:        NewMobileUI(),
		log:           log.Named("ui"),
		copiedTimeout: CopiedIndicatorDuration,
	}

	ui.setupUI()

	// Set up callback for screen and preference changes
	machine.SetChangeCallback(ui.render)
	ui.render(machine.View())

	ui.log.Debug("UI setup completed")
	return ui
}

// setupUI creates the static chrome; screens are swapped into body
func (ui *RootUI) setupUI() {
	ui.header = NewHeader(ui.machine)

	ui.body = container.NewVBox()
	ui.footer = widget.NewLabel("")
	ui.footer.Wrapping = fyne.TextWrapWord
	ui.footer.Alignment = fyne.TextAlignCenter
	ui.footer.Importance = widget.LowImportance

	// The swipe area sits inside the scroll, which would otherwise take the drags
	screen := container.NewVScroll(newSwipeArea(container.NewPadded(ui.body), ui.onSwipe))

	content := container.NewBorder(
		container.NewVBox(ui.header.Container(), widget.NewSeparator()), // top
		container.NewVBox(widget.NewSeparator(), ui.footer),             // bottom
		nil, // left
		nil, // right
		screen,
	)
	ui.window.SetContent(content)
}

// render is the machine's change callback. Machine operations are only
// triggered from widget callbacks, so it always runs on the UI thread.
func (ui *RootUI) render(view flow.ViewModel) {
	previous := ui.view
	ui.view = view

	if !ui.themeApplied || previous.Dark != view.Dark {
		ui.app.Settings().SetTheme(NewFeedbackTheme(view.Dark))
		ui.themeApplied = true
	}

	ui.window.SetTitle(view.Common.Text(i18n.KeyAppTitle))
	ui.header.Update(view)
	ui.footer.SetText(view.Common.Text(i18n.KeyFooter))

	if view.Screen == model.ScreenRating || view.Screen == model.ScreenThankYou {
		ui.draft = ""
	}

	ui.clearScreenWidgets()
	var objects []fyne.CanvasObject
	switch view.Screen {
	case model.ScreenFeedback:
		objects = ui.feedbackScreen(view)
	case model.ScreenReview:
		objects = ui.reviewScreen(view)
	case model.ScreenThankYou:
		objects = ui.thankYouScreen(view)
	default:
		objects = ui.ratingScreen(view)
	}

	ui.body.Objects = objects
	ui.body.Refresh()
}

func (ui *RootUI) clearScreenWidgets() {
	ui.stars = nil
	ui.ratingLabel = nil
	ui.backButton = nil
	ui.commentEntry = nil
	ui.submitButton = nil
	ui.reviewButton = nil
	ui.copyButtons = nil
	ui.againButton = nil
}

// onSwipe treats a swipe towards the reading start as back
func (ui *RootUI) onSwipe(dir SwipeDirection) {
	back := SwipeRight
	if ui.view.Direction == model.DirectionRTL {
		back = SwipeLeft
	}
	if dir != back || !ui.view.Screen.HasRating() || ui.view.Screen.IsTerminal() {
		return
	}
	if err := ui.machine.Back(); err != nil {
		ui.log.Debug("Swipe back ignored", zap.Error(err))
	}
}

// align returns the text alignment for the reading direction
func align(view flow.ViewModel) fyne.TextAlign {
	if view.Direction == model.DirectionRTL {
		return fyne.TextAlignTrailing
	}
	return fyne.TextAlignLeading
}
