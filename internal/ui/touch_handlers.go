package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"github.com/sirupsen/logrus"
)

var _ mobile.Touchable = (*TableView)(nil)

// TouchDown implements mobile.Touchable
func (t *TableView) TouchDown(event *mobile.TouchEvent) {
	t.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (t *TableView) TouchUp(event *mobile.TouchEvent) {
	t.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (t *TableView) TouchCancel(event *mobile.TouchEvent) {
	t.gestures.TouchCancel(event)
}

// onGesture treats a vertical swipe over the list as the start of a scroll drag
func (t *TableView) onGesture(gesture GestureType) {
	t.log.WithFields(logrus.Fields{"gesture": gesture}).Debug("Gesture")
	if t.ds == nil || !gesture.IsVerticalSwipe() {
		return
	}
	t.ds.WillBeginDragging()
	t.ds.DidScroll()
}
