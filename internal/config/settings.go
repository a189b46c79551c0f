package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/model"
)

// Host selects the list control that renders forms
type Host string

const (
	HostFyne Host = "fyne"
	HostTUI  Host = "tui"
)

// String returns the string representation of Host
func (h Host) String() string {
	return string(h)
}

// IsValid returns true if h is a known host
func (h Host) IsValid() bool {
	return h == HostFyne || h == HostTUI
}

// Settings keys
const (
	KeyRowAnimation      = "row_animation"
	KeyInlineAnimation   = "inline_animation"
	KeyKeyboardAvoidance = "keyboard_avoidance"
	KeyDefaultCellHeight = "default_cell_height"
	KeyDebugLogging      = "debug_logging"
	KeyHost              = "host"
)

// Default values
const (
	DefaultRowAnimation      = model.RowAnimationFade
	DefaultInlineAnimation   = model.RowAnimationMiddle
	DefaultKeyboardAvoidance = true
	DefaultCellHeight        = 44
	DefaultDebugLogging      = false
	DefaultHost              = HostFyne
)

// Cell height bounds
const (
	MinCellHeight = 24
	MaxCellHeight = 200
)

// Store is the key/value backend of Settings. fyne.Preferences satisfies it, as
// does FileStore.
type Store interface {
	String(key string) string
	SetString(key string, value string)
	Int(key string) int
	SetInt(key string, value int)
	BoolWithFallback(key string, fallback bool) bool
	SetBool(key string, value bool)
}

var _ Store = (fyne.Preferences)(nil)

// Settings manages engine and host configuration
type Settings struct {
	store Store
}

// NewSettings creates a settings manager over store
func NewSettings(store Store) *Settings {
	return &Settings{store: store}
}

// NewAppSettings creates a settings manager over the fyne app preferences
func NewAppSettings(app fyne.App) *Settings {
	return NewSettings(app.Preferences())
}

// Store returns the backing store
func (s *Settings) Store() Store {
	return s.store
}

// GetRowAnimation returns the animation used for structural form updates
func (s *Settings) GetRowAnimation() model.RowAnimation {
	value := s.store.String(KeyRowAnimation)
	if value == "" {
		s.SetRowAnimation(DefaultRowAnimation)
		return DefaultRowAnimation
	}
	return model.ParseRowAnimation(value, DefaultRowAnimation)
}

// SetRowAnimation sets the row animation; unknown values are replaced by the default
func (s *Settings) SetRowAnimation(animation model.RowAnimation) {
	if !animation.IsValid() {
		animation = DefaultRowAnimation
	}
	s.store.SetString(KeyRowAnimation, animation.String())
}

// GetInlineAnimation returns the animation used for inline companions
func (s *Settings) GetInlineAnimation() model.RowAnimation {
	value := s.store.String(KeyInlineAnimation)
	if value == "" {
		s.SetInlineAnimation(DefaultInlineAnimation)
		return DefaultInlineAnimation
	}
	return model.ParseRowAnimation(value, DefaultInlineAnimation)
}

// SetInlineAnimation sets the inline animation; unknown values are replaced by the default
func (s *Settings) SetInlineAnimation(animation model.RowAnimation) {
	if !animation.IsValid() {
		animation = DefaultInlineAnimation
	}
	s.store.SetString(KeyInlineAnimation, animation.String())
}

// GetKeyboardAvoidance returns whether the engine insets the table for the keyboard
func (s *Settings) GetKeyboardAvoidance() bool {
	return s.store.BoolWithFallback(KeyKeyboardAvoidance, DefaultKeyboardAvoidance)
}

// SetKeyboardAvoidance sets whether the engine insets the table for the keyboard
func (s *Settings) SetKeyboardAvoidance(enabled bool) {
	s.store.SetBool(KeyKeyboardAvoidance, enabled)
}

// GetDefaultCellHeight returns the height of rows that do not set their own
func (s *Settings) GetDefaultCellHeight() int {
	value := s.store.Int(KeyDefaultCellHeight)
	if value <= 0 {
		s.SetDefaultCellHeight(DefaultCellHeight)
		return DefaultCellHeight
	}
	return value
}

// SetDefaultCellHeight sets the default row height, clamped to [MinCellHeight, MaxCellHeight]
func (s *Settings) SetDefaultCellHeight(height int) {
	if height < MinCellHeight {
		height = MinCellHeight
	}
	if height > MaxCellHeight {
		height = MaxCellHeight
	}
	s.store.SetInt(KeyDefaultCellHeight, height)
}

// GetDebugLogging returns whether debug logging is enabled
func (s *Settings) GetDebugLogging() bool {
	return s.store.BoolWithFallback(KeyDebugLogging, DefaultDebugLogging)
}

// SetDebugLogging sets whether debug logging is enabled
func (s *Settings) SetDebugLogging(enabled bool) {
	s.store.SetBool(KeyDebugLogging, enabled)
}

// GetHost returns the configured host
func (s *Settings) GetHost() Host {
	host := Host(s.store.String(KeyHost))
	if host == "" {
		s.SetHost(DefaultHost)
		return DefaultHost
	}
	if !host.IsValid() {
		return DefaultHost
	}
	return host
}

// SetHost sets the host
func (s *Settings) SetHost(host Host) {
	s.store.SetString(KeyHost, host.String())
}

// GetHostOptions returns the available hosts
func (s *Settings) GetHostOptions() []Host {
	return []Host{HostFyne, HostTUI}
}

// GetAnimationOptions returns the selectable animation styles
func (s *Settings) GetAnimationOptions() []model.RowAnimation {
	return model.RowAnimations()
}

// FormerOptions converts the settings into engine options. keyboard may be nil.
func (s *Settings) FormerOptions(keyboard *former.KeyboardCenter) []former.Option {
	opts := []former.Option{
		former.WithRowAnimation(s.GetRowAnimation()),
		former.WithInlineAnimation(s.GetInlineAnimation()),
		former.WithKeyboardAvoidance(s.GetKeyboardAvoidance()),
	}
	if keyboard != nil {
		opts = append(opts, former.WithKeyboard(keyboard))
	}
	return opts
}
