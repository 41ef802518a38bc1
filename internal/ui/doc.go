// Package ui contains the Fyne user interface of the feedback widget.
// RootUI renders whatever screen the flow.Machine reports and forwards taps,
// text input, language and theme changes back to it. All strings come from the
// i18n bundles carried by the view model.
package ui
