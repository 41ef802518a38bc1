package ui

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/feedback-widget/internal/flow"
	"github.com/ytget/feedback-widget/internal/i18n"
	"github.com/ytget/feedback-widget/internal/model"
)

func (ui *RootUI) ratingScreen(view flow.ViewModel) []fyne.CanvasObject {
	row := make([]fyne.CanvasObject, 0, model.RatingMax)
	for n := model.RatingMin; n <= model.RatingMax; n++ {
		n := n
		btn, target := ui.mobile.StarButton(IconStarEmpty, func() { ui.onRate(int(n)) })
		ui.stars = append(ui.stars, btn)
		row = append(row, target)
	}
	if view.Direction == model.DirectionRTL {
		reverse(row)
	}

	return []fyne.CanvasObject{
		title(view.Texts.Text(i18n.KeyTitle)),
		paragraph(view.Texts.Text(i18n.KeySubtitle), fyne.TextAlignCenter),
		ui.mobile.Spacer(),
		container.NewCenter(container.NewHBox(row...)),
	}
}

func (ui *RootUI) feedbackScreen(view flow.ViewModel) []fyne.CanvasObject {
	ui.backButton = ui.newBackButton(view)

	submitText := view.Texts.Text(i18n.KeySubmit)
	submitBtn, submitTarget := ui.mobile.ActionButton(submitText, nil)
	submitBtn.OnTapped = func() { ui.onSubmit(submitBtn, submitText, view.Texts.Text(i18n.KeySubmitting)) }
	ui.submitButton = submitBtn

	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.SetMinRowsVisible(5)
	entry.SetPlaceHolder(view.Texts.Text(i18n.KeyPlaceholder))
	entry.SetText(ui.draft)
	entry.OnChanged = func(text string) {
		ui.draft = text
		setEnabled(submitBtn, !model.IsComplaintBlank(text))
	}
	ui.commentEntry = entry
	setEnabled(submitBtn, !model.IsComplaintBlank(ui.draft))

	return []fyne.CanvasObject{
		ui.backButton,
		title(view.Texts.Text(i18n.KeyTitle)),
		ui.newRatingSummary(view),
		entry,
		submitTarget,
	}
}

func (ui *RootUI) reviewScreen(view flow.ViewModel) []fyne.CanvasObject {
	ui.backButton = ui.newBackButton(view)

	reviewBtn, reviewTarget := ui.mobile.ActionButton(view.Texts.Text(i18n.KeyReviewButton), func() {
		ui.onOpenReview(view)
	})
	ui.reviewButton = reviewBtn

	objects := []fyne.CanvasObject{
		ui.backButton,
		ui.newRatingSummary(view),
		title(view.Texts.Text(i18n.KeyTitle)),
		paragraph(view.Texts.Text(i18n.KeySubtitle), fyne.TextAlignCenter),
		reviewTarget,
		ui.mobile.Spacer(),
		paragraph(view.Texts.Text(i18n.KeySuggestions), align(view)),
	}

	copyText := IconCopy + " " + view.Texts.Text(i18n.KeyCopyButton)
	copiedText := IconCheck + " " + view.Texts.Text(i18n.KeyCopied)
	for _, comment := range view.Texts.List(i18n.ListComments) {
		comment := comment
		label := paragraph(comment, align(view))

		var btn *widget.Button
		btn = widget.NewButton(copyText, func() { ui.onCopy(btn, comment, copyText, copiedText) })
		btn.Importance = widget.LowImportance
		ui.copyButtons = append(ui.copyButtons, btn)

		if view.Direction == model.DirectionRTL {
			objects = append(objects, container.NewBorder(nil, nil, btn, nil, label))
		} else {
			objects = append(objects, container.NewBorder(nil, nil, nil, btn, label))
		}
	}
	return objects
}

func (ui *RootUI) thankYouScreen(view flow.ViewModel) []fyne.CanvasObject {
	heading, message := i18n.KeyNegativeTitle, i18n.KeyNegativeMessage
	if view.IsPositive {
		heading, message = i18n.KeyPositiveTitle, i18n.KeyPositiveMessage
	}

	againBtn, againTarget := ui.mobile.ActionButton(view.Texts.Text(i18n.KeyAgain), ui.machine.Reset)
	ui.againButton = againBtn

	return []fyne.CanvasObject{
		ui.mobile.Spacer(),
		title(view.Texts.Text(heading)),
		paragraph(view.Texts.Text(message), fyne.TextAlignCenter),
		ui.mobile.Spacer(),
		againTarget,
	}
}

func (ui *RootUI) newBackButton(view flow.ViewModel) *widget.Button {
	icon := IconBack
	if view.Direction == model.DirectionRTL {
		icon = IconForward
	}
	btn := widget.NewButton(icon+" "+view.Common.Text(i18n.KeyBack), func() {
		if err := ui.machine.Back(); err != nil {
			ui.log.Debug("Back ignored", zap.Error(err))
		}
	})
	btn.Importance = widget.LowImportance
	btn.Alignment = widget.ButtonAlignLeading
	return btn
}

// newRatingSummary shows the chosen stars and their label
func (ui *RootUI) newRatingSummary(view flow.ViewModel) fyne.CanvasObject {
	filled := int(view.Rating)
	stars := canvas.NewText(
		strings.Repeat(IconStarFilled, filled)+strings.Repeat(IconStarEmpty, int(model.RatingMax)-filled),
		theme.Color(ColorNameStar),
	)
	stars.TextSize = theme.Size(theme.SizeNameHeadingText)
	stars.Alignment = fyne.TextAlignCenter

	ui.ratingLabel = widget.NewLabel(view.RatingLabel)
	ui.ratingLabel.Alignment = fyne.TextAlignCenter

	return container.NewVBox(stars, ui.ratingLabel)
}

func (ui *RootUI) onRate(n int) {
	if err := ui.machine.Rate(n); err != nil {
		ui.log.Warn("Rating rejected", zap.Int("rating", n), zap.Error(err))
	}
}

// onSubmit hands the draft to the machine; on success the screen is already
// replaced when Submit returns
func (ui *RootUI) onSubmit(btn *widget.Button, idleText, busyText string) {
	btn.SetText(busyText)
	btn.Disable()

	if !ui.machine.Submit(ui.draft) {
		btn.SetText(idleText)
		setEnabled(btn, !model.IsComplaintBlank(ui.draft))
	}
}

func (ui *RootUI) onOpenReview(view flow.ViewModel) {
	if err := ui.machine.OpenReview(); err != nil {
		dialog.ShowInformation(view.Common.Text(i18n.KeyAppTitle), view.Texts.Text(i18n.KeyOpenFailed), ui.window)
	}
}

// onCopy copies a suggested comment and shows a self-clearing confirmation
func (ui *RootUI) onCopy(btn *widget.Button, comment, copyText, copiedText string) {
	ui.app.Clipboard().SetContent(comment)
	btn.SetText(copiedText)

	time.AfterFunc(ui.copiedTimeout, func() {
		fyne.Do(func() { btn.SetText(copyText) })
	})
}

func title(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.SizeName = theme.SizeNameHeadingText
	return label
}

func paragraph(text string, alignment fyne.TextAlign) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.Alignment = alignment
	return label
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

func reverse(objects []fyne.CanvasObject) {
	for i, j := 0, len(objects)-1; i < j; i, j = i+1, j-1 {
		objects[i], objects[j] = objects[j], objects[i]
	}
}
