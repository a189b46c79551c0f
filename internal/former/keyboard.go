package former

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/model"
)

// KeyboardNotification describes an on-screen keyboard (or input panel) transition
type KeyboardNotification struct {
	// EndFrame is the keyboard frame in window coordinates once the transition ends
	EndFrame model.Rect
	Duration time.Duration
	Curve    model.AnimationCurve
}

// KeyboardHandler receives keyboard notifications
type KeyboardHandler func(n KeyboardNotification)

// KeyboardCenter delivers keyboard show/hide events to subscribers. Hosts post to
// it; each Former subscribes for its own lifetime.
type KeyboardCenter struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]keyboardSubscription
}

type keyboardSubscription struct {
	willShow KeyboardHandler
	willHide KeyboardHandler
}

// NewKeyboardCenter creates an empty event hub
func NewKeyboardCenter() *KeyboardCenter {
	return &KeyboardCenter{subs: make(map[int]keyboardSubscription)}
}

// Subscribe registers handlers and returns a function that removes them.
// Either handler may be nil.
func (c *KeyboardCenter) Subscribe(willShow, willHide KeyboardHandler) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs[id] = keyboardSubscription{willShow: willShow, willHide: willHide}
	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Subscribers returns the number of active subscriptions
func (c *KeyboardCenter) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// PostWillShow notifies subscribers that the keyboard is about to appear
func (c *KeyboardCenter) PostWillShow(n KeyboardNotification) {
	for _, s := range c.snapshot() {
		if s.willShow != nil {
			s.willShow(n)
		}
	}
}

// PostWillHide notifies subscribers that the keyboard is about to disappear
func (c *KeyboardCenter) PostWillHide(n KeyboardNotification) {
	for _, s := range c.snapshot() {
		if s.willHide != nil {
			s.willHide(n)
		}
	}
}

// snapshot copies subscribers in subscription order so handlers run without the lock held
func (c *KeyboardCenter) snapshot() []keyboardSubscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]keyboardSubscription, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.subs[id])
	}
	return out
}

// keyboardWillShow insets the table so the cell holding the focused view stays visible
func (f *Former) keyboardWillShow(n KeyboardNotification) {
	table := f.table
	if table == nil {
		return
	}
	responder := findFirstResponder(table)
	if responder == nil {
		return
	}
	cell := enclosingCell(responder)
	if cell == nil {
		return
	}

	keyboard := table.ConvertRectFromWindow(n.EndFrame)
	overlap := table.Frame().MaxY() - keyboard.MinY()
	if overlap <= 0 {
		return
	}

	if f.oldBottomInset == nil {
		bottom := table.ContentInset().Bottom
		f.oldBottomInset = &bottom
	}

	path, ok := table.IndexPathForCell(cell)
	if !ok {
		return
	}

	f.log.WithFields(logrus.Fields{
		"section": path.Section,
		"row":     path.Row,
		"overlap": overlap,
	}).Debug("Keyboard will show")

	table.Animate(n.Duration, n.Curve, func() {
		table.SetContentInset(table.ContentInset().WithBottom(overlap))
		table.SetScrollIndicatorInsets(table.ScrollIndicatorInsets().WithBottom(overlap))
		table.ScrollToRow(path, model.ScrollPositionNone, false)
	})
}

// keyboardWillHide restores the bottom inset saved by keyboardWillShow
func (f *Former) keyboardWillHide(n KeyboardNotification) {
	table := f.table
	if table == nil || f.oldBottomInset == nil {
		return
	}
	bottom := *f.oldBottomInset
	f.log.WithField("inset", bottom).Debug("Keyboard will hide")
	table.Animate(n.Duration, n.Curve, func() {
		table.SetContentInset(table.ContentInset().WithBottom(bottom))
		table.SetScrollIndicatorInsets(table.ScrollIndicatorInsets().WithBottom(bottom))
	})
	f.oldBottomInset = nil
}

// findFirstResponder returns the first focused view in a depth-first walk from root
func findFirstResponder(root View) View {
	if root == nil {
		return nil
	}
	if root.IsFirstResponder() {
		return root
	}
	for _, sub := range root.Subviews() {
		if found := findFirstResponder(sub); found != nil {
			return found
		}
	}
	return nil
}

// enclosingCell walks up from v to the nearest Cell
func enclosingCell(v View) Cell {
	for v != nil {
		if cell, ok := v.(Cell); ok {
			return cell
		}
		v = v.Superview()
	}
	return nil
}
