package model

import "time"

// RowAnimation is the transition style applied by a host when rows or sections
// are inserted, deleted or reloaded
type RowAnimation string

const (
	// RowAnimationNone applies the change without a transition
	RowAnimationNone RowAnimation = "none"

	// RowAnimationFade cross-fades the affected rows
	RowAnimationFade RowAnimation = "fade"

	// RowAnimationRight slides rows in from (or out to) the right
	RowAnimationRight RowAnimation = "right"

	// RowAnimationLeft slides rows in from (or out to) the left
	RowAnimationLeft RowAnimation = "left"

	// RowAnimationTop slides rows from above
	RowAnimationTop RowAnimation = "top"

	// RowAnimationBottom slides rows from below
	RowAnimationBottom RowAnimation = "bottom"

	// RowAnimationMiddle keeps the row centered while it grows or shrinks
	RowAnimationMiddle RowAnimation = "middle"

	// RowAnimationAutomatic lets the host pick a style
	RowAnimationAutomatic RowAnimation = "automatic"
)

// String returns the string representation of RowAnimation
func (a RowAnimation) String() string {
	return string(a)
}

// IsAnimated returns true if the host should run a transition
func (a RowAnimation) IsAnimated() bool {
	return a != RowAnimationNone && a != ""
}

// IsValid returns true if a is one of the known animation styles
func (a RowAnimation) IsValid() bool {
	for _, known := range RowAnimations() {
		if a == known {
			return true
		}
	}
	return false
}

// RowAnimations returns every known animation style in declaration order
func RowAnimations() []RowAnimation {
	return []RowAnimation{
		RowAnimationNone,
		RowAnimationFade,
		RowAnimationRight,
		RowAnimationLeft,
		RowAnimationTop,
		RowAnimationBottom,
		RowAnimationMiddle,
		RowAnimationAutomatic,
	}
}

// ParseRowAnimation converts a settings value into a RowAnimation, falling back
// to fallback for unknown values
func ParseRowAnimation(value string, fallback RowAnimation) RowAnimation {
	a := RowAnimation(value)
	if a.IsValid() {
		return a
	}
	return fallback
}

// ScrollPosition tells the host where a scrolled-to row should end up
type ScrollPosition int

const (
	// ScrollPositionNone scrolls the minimum distance needed to make the row visible
	ScrollPositionNone ScrollPosition = iota
	ScrollPositionTop
	ScrollPositionMiddle
	ScrollPositionBottom
)

// String returns the string representation of ScrollPosition
func (p ScrollPosition) String() string {
	switch p {
	case ScrollPositionNone:
		return "none"
	case ScrollPositionTop:
		return "top"
	case ScrollPositionMiddle:
		return "middle"
	case ScrollPositionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// AnimationCurve is the timing curve of an inset animation
type AnimationCurve int

const (
	AnimationCurveEaseInOut AnimationCurve = iota
	AnimationCurveEaseIn
	AnimationCurveEaseOut
	AnimationCurveLinear
)

// String returns the string representation of AnimationCurve
func (c AnimationCurve) String() string {
	switch c {
	case AnimationCurveEaseInOut:
		return "ease-in-out"
	case AnimationCurveEaseIn:
		return "ease-in"
	case AnimationCurveEaseOut:
		return "ease-out"
	case AnimationCurveLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Default durations used when a host has no platform-provided value
const (
	DefaultKeyboardAnimationDuration = 250 * time.Millisecond
	DefaultRowAnimationDuration      = 300 * time.Millisecond
)
