package ui

import (
	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/model"
)

// KeyboardEstimator posts keyboard notifications when a text entry gains or loses
// focus. Fyne drivers do not report the size of the on-screen keyboard, so the
// frame is estimated from the canvas size.
type KeyboardEstimator struct {
	center  *former.KeyboardCenter
	canvas  fyne.Canvas
	mobile  *MobileUI
	enabled bool
	shown   bool
	log     *logrus.Entry
}

// NewKeyboardEstimator creates an estimator posting to center. It is enabled on
// mobile devices only.
func NewKeyboardEstimator(center *former.KeyboardCenter, c fyne.Canvas, mobile *MobileUI, log *logrus.Entry) *KeyboardEstimator {
	return &KeyboardEstimator{
		center:  center,
		canvas:  c,
		mobile:  mobile,
		enabled: mobile.IsMobileDevice(),
		log:     log,
	}
}

// SetEnabled turns posting on or off
func (k *KeyboardEstimator) SetEnabled(enabled bool) {
	k.enabled = enabled
}

// FocusChanged posts a will-show notification when focus is gained and a
// will-hide notification when it is lost
func (k *KeyboardEstimator) FocusChanged(focused bool) {
	if !k.enabled || k.center == nil || k.canvas == nil {
		return
	}
	n := former.KeyboardNotification{
		Duration: model.DefaultKeyboardAnimationDuration,
		Curve:    model.AnimationCurveEaseInOut,
	}
	if focused {
		n.EndFrame = k.mobile.KeyboardFrame(k.canvas.Size())
		k.shown = true
		k.log.WithFields(logrus.Fields{"height": n.EndFrame.Height}).Debug("Keyboard will show")
		k.center.PostWillShow(n)
		return
	}
	if !k.shown {
		return
	}
	k.shown = false
	n.EndFrame = model.NewRect(0, k.canvas.Size().Height, k.canvas.Size().Width, 0)
	k.log.Debug("Keyboard will hide")
	k.center.PostWillHide(n)
}
