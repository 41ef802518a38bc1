package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SwipeDirection is the horizontal direction of a finished drag
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
)

// SwipeDetector accumulates drag deltas and classifies them on release
type SwipeDetector struct {
	threshold float32
	dx, dy    float32
}

// NewSwipeDetector creates a detector with the given horizontal threshold
func NewSwipeDetector(threshold float32) *SwipeDetector {
	return &SwipeDetector{threshold: threshold}
}

// Move records one drag step
func (d *SwipeDetector) Move(delta fyne.Delta) {
	d.dx += delta.DX
	d.dy += delta.DY
}

// End classifies the gesture and resets the detector. Mostly vertical drags
// are scrolls, not swipes.
func (d *SwipeDetector) End() SwipeDirection {
	dx, dy := d.dx, d.dy
	d.dx, d.dy = 0, 0

	if abs(dx) < d.threshold || abs(dy) > abs(dx) {
		return SwipeNone
	}
	if dx > 0 {
		return SwipeRight
	}
	return SwipeLeft
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// swipeArea wraps screen content and reports horizontal swipes
type swipeArea struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	detector *SwipeDetector
	onSwipe  func(SwipeDirection)
}

func newSwipeArea(content fyne.CanvasObject, onSwipe func(SwipeDirection)) *swipeArea {
	s := &swipeArea{
		content:  content,
		detector: NewSwipeDetector(SwipeThreshold),
		onSwipe:  onSwipe,
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// Dragged implements fyne.Draggable
func (s *swipeArea) Dragged(e *fyne.DragEvent) {
	s.detector.Move(e.Dragged)
}

// DragEnd implements fyne.Draggable
func (s *swipeArea) DragEnd() {
	if dir := s.detector.End(); dir != SwipeNone && s.onSwipe != nil {
		s.onSwipe(dir)
	}
}
