package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/feedback-widget/internal/flow"
	"github.com/ytget/feedback-widget/internal/i18n"
	"github.com/ytget/feedback-widget/internal/model"
)

// Header holds the language selector and theme toggle shown on every screen
type Header struct {
	machine *flow.Machine

	languageSelect *widget.Select
	themeButton    *widget.Button
	container      *fyne.Container

	languages map[string]model.Language // display name -> language
	current   model.Language
}

// NewHeader creates the header
func NewHeader(machine *flow.Machine) *Header {
	h := &Header{
		machine:   machine,
		languages: make(map[string]model.Language),
	}
	h.createUI()
	return h
}

// Container returns the header's root object
func (h *Header) Container() fyne.CanvasObject {
	return h.container
}

func (h *Header) createUI() {
	options := make([]string, 0, len(model.Languages()))
	for _, lang := range model.Languages() {
		name := lang.DisplayName()
		options = append(options, name)
		h.languages[name] = lang
	}
	h.languageSelect = widget.NewSelect(options, h.onLanguageSelected)

	h.themeButton = widget.NewButton("", h.machine.ToggleTheme)
	h.themeButton.Importance = widget.LowImportance

	left := container.NewHBox()
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		left.Add(img)
	}

	languageRow := container.New(layout.NewGridWrapLayout(fyne.NewSize(LanguageSelectMin, MinTouchTargetSize)), h.languageSelect)
	h.container = container.NewBorder(nil, nil, left, container.NewHBox(languageRow, h.themeButton))
}

// Update shows the current language and theme
func (h *Header) Update(view flow.ViewModel) {
	h.current = view.Language
	h.languageSelect.PlaceHolder = IconLanguage + " " + view.Common.Text(i18n.KeyLanguage)
	h.languageSelect.SetSelected(view.Language.DisplayName())

	// The button names the mode it switches to
	if view.Dark {
		h.themeButton.SetText(IconSun + " " + view.Common.Text(i18n.KeyThemeLight))
	} else {
		h.themeButton.SetText(IconMoon + " " + view.Common.Text(i18n.KeyThemeDark))
	}
}

func (h *Header) onLanguageSelected(name string) {
	lang, ok := h.languages[name]
	if !ok || lang == h.current {
		return
	}
	h.machine.SetLanguage(lang)
}
