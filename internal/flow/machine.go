package flow

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/feedback-widget/internal/config"
	"github.com/ytget/feedback-widget/internal/i18n"
	"github.com/ytget/feedback-widget/internal/model"
	"github.com/ytget/feedback-widget/internal/submit"
)

// URLOpener opens a link outside the widget. fyne.App satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// ViewModel is everything the renderer needs to draw the current screen
type ViewModel struct {
	Screen     model.Screen
	Rating     model.Rating
	Language   model.Language
	Direction  model.Direction
	Dark       bool
	IsPositive bool

	RatingLabel string      // localized label of Rating, "" when unset
	Texts       i18n.Bundle // bundle for Screen
	Common      i18n.Bundle // header and footer chrome
}

// Machine drives one widget session
type Machine struct {
	settings  *config.Settings
	sink      submit.Submitter
	opener    URLOpener
	reviewURL string
	table     *i18n.Table
	log       *zap.Logger

	mu       sync.Mutex
	state    State
	language model.Language
	dark     bool

	onChange      func(ViewModel)
	callbackMutex sync.RWMutex
}

// NewMachine creates a machine in the Rating state with the stored preferences
func NewMachine(settings *config.Settings, sink submit.Submitter, opener URLOpener, reviewURL string, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		settings:  settings,
		sink:      sink,
		opener:    opener,
		reviewURL: reviewURL,
		table:     i18n.Default(),
		log:       log.Named("flow"),
		state:     Initial(),
		language:  settings.Language(),
		dark:      settings.DarkMode(),
	}
}

// SetChangeCallback sets the callback invoked after every state or preference change
func (m *Machine) SetChangeCallback(callback func(ViewModel)) {
	m.callbackMutex.Lock()
	defer m.callbackMutex.Unlock()
	m.onChange = callback
}

// State returns the current state
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// View returns a snapshot of the current screen
func (m *Machine) View() ViewModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewLocked()
}

// Rate selects n stars on the rating screen
func (m *Machine) Rate(n int) error {
	err := m.apply(Rate{N: n})
	if errors.Is(err, ErrRatingOutOfRange) {
		m.log.DPanic("Rating contract violated", zap.Int("rating", n), zap.Error(err))
	}
	return err
}

// Back returns to the rating screen and clears the rating
func (m *Machine) Back() error {
	return m.apply(Back{})
}

// Reset starts a new session from any screen
func (m *Machine) Reset() {
	_ = m.apply(Reset{})
}

// Submit sends the complaint and moves to the thank-you screen. It returns
// false and leaves the screen unchanged when the comment is blank.
func (m *Machine) Submit(comment string) bool {
	m.mu.Lock()
	next, effect, err := Transition(m.state, Submit{Comment: comment})
	if err != nil {
		m.mu.Unlock()
		m.log.Debug("Submit ignored", zap.Error(err))
		return false
	}
	m.state = next
	view := m.viewLocked()
	m.mu.Unlock()

	if e, ok := effect.(SubmitEffect); ok {
		m.deliver(e)
	}
	m.notifyChange(view)
	return true
}

// deliver hands one submission to the sink; a failing sink never undoes the transition
func (m *Machine) deliver(e SubmitEffect) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("Submission sink panicked", zap.Int("rating", int(e.Rating)), zap.Any("panic", r))
		}
	}()
	m.sink.Submit(e.Rating, e.Comment)
}

// OpenReview opens the configured review link. The screen does not change.
func (m *Machine) OpenReview() error {
	m.mu.Lock()
	_, effect, err := Transition(m.state, OpenReview{})
	m.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := effect.(OpenReviewEffect); !ok {
		return nil
	}

	u, err := url.Parse(m.reviewURL)
	if err != nil {
		m.log.Warn("Invalid review URL", zap.String("url", m.reviewURL), zap.Error(err))
		return fmt.Errorf("parse review url: %w", err)
	}
	if err := m.opener.OpenURL(u); err != nil {
		m.log.Warn("Failed to open review link", zap.String("url", m.reviewURL), zap.Error(err))
		return fmt.Errorf("open review url: %w", err)
	}
	m.log.Info("Review link opened")
	return nil
}

// SetLanguage switches and persists the display language. Unsupported
// languages are ignored.
func (m *Machine) SetLanguage(lang model.Language) {
	if !lang.IsValid() {
		m.log.Warn("Unsupported language ignored", zap.String("language", lang.String()))
		return
	}

	m.mu.Lock()
	m.language = lang
	m.settings.SetLanguage(lang)
	view := m.viewLocked()
	m.mu.Unlock()

	m.notifyChange(view)
}

// ToggleTheme flips and persists dark mode
func (m *Machine) ToggleTheme() {
	m.mu.Lock()
	m.dark = !m.dark
	m.settings.SetDarkMode(m.dark)
	view := m.viewLocked()
	m.mu.Unlock()

	m.notifyChange(view)
}

func (m *Machine) apply(event Event) error {
	m.mu.Lock()
	next, _, err := Transition(m.state, event)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.state = next
	view := m.viewLocked()
	m.mu.Unlock()

	m.log.Debug("Screen changed", zap.Stringer("screen", view.Screen), zap.Int("rating", int(view.Rating)))
	m.notifyChange(view)
	return nil
}

func (m *Machine) viewLocked() ViewModel {
	view := ViewModel{
		Screen:    m.state.Screen(),
		Rating:    m.state.Rating(),
		Language:  m.language,
		Direction: m.language.Direction(),
		Dark:      m.dark,
		Texts:     m.table.Lookup(m.language, i18n.ScreenID(m.state.Screen())),
		Common:    m.table.Lookup(m.language, i18n.ScreenCommon),
	}
	view.RatingLabel = m.table.Lookup(m.language, i18n.ScreenRating).Item(i18n.ListRatingLabels, view.Rating.LabelIndex())
	if s, ok := m.state.(ThankYouState); ok {
		view.IsPositive = s.IsPositive()
	}
	return view
}

// notifyChange calls the change callback if set
func (m *Machine) notifyChange(view ViewModel) {
	m.callbackMutex.RLock()
	callback := m.onChange
	m.callbackMutex.RUnlock()

	if callback != nil {
		callback(view)
	}
}
