package tui

import (
	"github.com/ytget/former/internal/former"
)

// BundleName is the layout bundle the terminal cells are registered in
const BundleName = "tui"

// Layout names in the terminal bundle
const (
	LayoutLabel    = "LabelCell"
	LayoutText     = "TextCell"
	LayoutSelector = "SelectorCell"
	LayoutPicker   = "PickerCell"
)

// CellKind tells the table how to draw a cell
type CellKind string

const (
	CellLabel    CellKind = "label"
	CellText     CellKind = "text"
	CellSelector CellKind = "selector"
	CellPicker   CellKind = "picker"
)

// Layouts holds the terminal cell layouts
var Layouts = newLayouts()

func newLayouts() *former.Bundle {
	b := former.NewBundle(BundleName)
	b.Register(LayoutLabel, func() former.Cell { return &Cell{Kind: CellLabel} })
	b.Register(LayoutText, func() former.Cell { return &Cell{Kind: CellText} })
	b.Register(LayoutSelector, func() former.Cell { return &Cell{Kind: CellSelector} })
	b.Register(LayoutPicker, func() former.Cell { return &Cell{Kind: CellPicker} })
	return b
}

// Cell is the state a row pushes in CellConfigure; the table draws it as one line
type Cell struct {
	Kind CellKind

	Title       string
	Detail      string
	Placeholder bool
	Disabled    bool
	Invalid     bool
	Editing     bool

	// Options and Selected are used by picker cells; Selected is -1 without a choice
	Options  []string
	Selected int

	row       former.RowFormer
	superview former.View
}

type focusable interface {
	IsFocused() bool
}

// IsFirstResponder implements former.View
func (c *Cell) IsFirstResponder() bool {
	f, ok := c.row.(focusable)
	return ok && f.IsFocused()
}

// Subviews implements former.View
func (c *Cell) Subviews() []former.View { return nil }

// Superview implements former.View
func (c *Cell) Superview() former.View { return c.superview }

// SetRowFormer implements former.Cell
func (c *Cell) SetRowFormer(row former.RowFormer) {
	c.row = row
}

// RowFormer returns the row bound to the cell
func (c *Cell) RowFormer() former.RowFormer {
	return c.row
}

// HeaderView is a section header or footer line
type HeaderView struct {
	Text   string
	Footer bool

	former    former.ViewFormer
	superview former.View
}

// IsFirstResponder implements former.View
func (v *HeaderView) IsFirstResponder() bool { return false }

// Subviews implements former.View
func (v *HeaderView) Subviews() []former.View { return nil }

// Superview implements former.View
func (v *HeaderView) Superview() former.View { return v.superview }

// SetViewFormer implements former.HeaderFooterView
func (v *HeaderView) SetViewFormer(vf former.ViewFormer) {
	v.former = vf
}
