package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func TestGestureHandler(t *testing.T) {
	tests := []struct {
		name     string
		from, to fyne.Position
		held     time.Duration
		want     GestureType
	}{
		{"tap", fyne.NewPos(10, 10), fyne.NewPos(12, 11), 100 * time.Millisecond, GestureTap},
		{"long press", fyne.NewPos(10, 10), fyne.NewPos(10, 10), DefaultLongPressDuration, GestureLongPress},
		{"swipe down", fyne.NewPos(100, 100), fyne.NewPos(105, 200), 200 * time.Millisecond, GestureSwipeDown},
		{"swipe up", fyne.NewPos(100, 200), fyne.NewPos(95, 100), 200 * time.Millisecond, GestureSwipeUp},
		{"swipe left", fyne.NewPos(200, 100), fyne.NewPos(100, 110), 200 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", fyne.NewPos(100, 100), fyne.NewPos(200, 90), 200 * time.Millisecond, GestureSwipeRight},
		{"slow swipe", fyne.NewPos(100, 100), fyne.NewPos(100, 300), time.Second, GestureSwipeDown},
		{"short drag", fyne.NewPos(100, 100), fyne.NewPos(130, 130), 100 * time.Millisecond, GestureTap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []GestureType
			gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
			start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			gh.now = func() time.Time { return start }
			gh.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: tt.from}})
			gh.now = func() time.Time { return start.Add(tt.held) }
			gh.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: tt.to}})

			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("gestures = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestGestureHandlerCancel(t *testing.T) {
	calls := 0
	gh := NewGestureHandler(func(GestureType) { calls++ })
	gh.TouchDown(&mobile.TouchEvent{})
	gh.TouchCancel(&mobile.TouchEvent{})
	gh.TouchUp(&mobile.TouchEvent{})

	if calls != 0 {
		t.Errorf("expected no gesture after cancel, got %d", calls)
	}
}

func TestGestureTypeString(t *testing.T) {
	if GestureSwipeDown.String() != "swipe-down" {
		t.Errorf("unexpected name %q", GestureSwipeDown.String())
	}
	if GestureType(99).String() != "unknown" {
		t.Errorf("unexpected name %q", GestureType(99).String())
	}
	if !GestureSwipeUp.IsVerticalSwipe() || GestureSwipeLeft.IsVerticalSwipe() {
		t.Error("IsVerticalSwipe mismatch")
	}
}
