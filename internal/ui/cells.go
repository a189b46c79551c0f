package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/former/internal/former"
)

// FormCell is a former.Cell drawn by Fyne
type FormCell interface {
	former.Cell
	fyne.CanvasObject
}

type superviewSetter interface {
	setSuperview(v former.View)
}

// cellBase implements the view hierarchy part of a cell
type cellBase struct {
	superview former.View
	row       former.RowFormer
}

func (c *cellBase) IsFirstResponder() bool { return false }
func (c *cellBase) Subviews() []former.View { return nil }
func (c *cellBase) Superview() former.View { return c.superview }
func (c *cellBase) setSuperview(v former.View) { c.superview = v }
func (c *cellBase) SetRowFormer(row former.RowFormer) { c.row = row }

// RowFormer returns the row the cell is bound to
func (c *cellBase) RowFormer() former.RowFormer { return c.row }

// LabelCell shows a title and a trailing detail text
type LabelCell struct {
	widget.BaseWidget
	cellBase

	Title  *widget.Label
	Detail *widget.Label
}

// NewLabelCell creates an empty label cell
func NewLabelCell() *LabelCell {
	c := &LabelCell{
		Title:  widget.NewLabel(""),
		Detail: widget.NewLabel(""),
	}
	c.Detail.Alignment = fyne.TextAlignTrailing
	c.Detail.Importance = widget.LowImportance
	c.Detail.Truncation = fyne.TextTruncateEllipsis
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *LabelCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, c.Title, nil, c.Detail))
}

// FormEntry is the text entry of a TextFieldCell. It reports focus changes,
// which widget.Entry does not.
type FormEntry struct {
	widget.Entry

	cell    *TextFieldCell
	focused bool

	OnFocusGained func()
	OnFocusLost   func()
}

func newFormEntry(cell *TextFieldCell) *FormEntry {
	e := &FormEntry{cell: cell}
	e.ExtendBaseWidget(e)
	return e
}

// FocusGained implements fyne.Focusable
func (e *FormEntry) FocusGained() {
	e.focused = true
	e.Entry.FocusGained()
	if e.OnFocusGained != nil {
		e.OnFocusGained()
	}
}

// FocusLost implements fyne.Focusable
func (e *FormEntry) FocusLost() {
	e.focused = false
	e.Entry.FocusLost()
	if e.OnFocusLost != nil {
		e.OnFocusLost()
	}
}

// IsFirstResponder implements former.View
func (e *FormEntry) IsFirstResponder() bool { return e.focused }

// Subviews implements former.View
func (e *FormEntry) Subviews() []former.View { return nil }

// Superview implements former.View
func (e *FormEntry) Superview() former.View {
	if e.cell == nil {
		return nil
	}
	return e.cell
}

// TextFieldCell shows a title and a single-line entry
type TextFieldCell struct {
	widget.BaseWidget
	cellBase

	Title *widget.Label
	Entry *FormEntry
}

// NewTextFieldCell creates an empty text field cell
func NewTextFieldCell() *TextFieldCell {
	c := &TextFieldCell{Title: widget.NewLabel("")}
	c.Entry = newFormEntry(c)
	c.ExtendBaseWidget(c)
	return c
}

// Subviews implements former.View
func (c *TextFieldCell) Subviews() []former.View {
	return []former.View{c.Entry}
}

// CreateRenderer implements fyne.Widget
func (c *TextFieldCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, c.Title, nil, c.Entry))
}

// SelectorCell shows a title, the selected value and a disclosure icon
type SelectorCell struct {
	widget.BaseWidget
	cellBase

	Title      *widget.Label
	Value      *widget.Label
	Disclosure *widget.Icon
}

// NewSelectorCell creates an empty selector cell
func NewSelectorCell() *SelectorCell {
	c := &SelectorCell{
		Title:      widget.NewLabel(""),
		Value:      widget.NewLabel(""),
		Disclosure: widget.NewIcon(theme.MenuDropDownIcon()),
	}
	c.Value.Alignment = fyne.TextAlignTrailing
	c.ExtendBaseWidget(c)
	return c
}

// SetRowFormer hides the disclosure icon for rows that do not want it
func (c *SelectorCell) SetRowFormer(row former.RowFormer) {
	c.cellBase.SetRowFormer(row)
	if s, ok := row.(*InlineSelectorRowFormer); ok && !s.ShowsDisclosure {
		c.Disclosure.Hide()
		return
	}
	c.Disclosure.Show()
}

// CreateRenderer implements fyne.Widget
func (c *SelectorCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, c.Title, c.Disclosure, c.Value))
}

// PickerCell lists the options of an inline selector
type PickerCell struct {
	widget.BaseWidget
	cellBase

	Options *widget.RadioGroup
}

// NewPickerCell creates an empty picker cell
func NewPickerCell() *PickerCell {
	c := &PickerCell{Options: widget.NewRadioGroup(nil, nil)}
	c.Options.Horizontal = true
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *PickerCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHScroll(c.Options))
}

// HeaderView renders a section header or footer text
type HeaderView struct {
	widget.BaseWidget

	Label     *widget.Label
	former    former.ViewFormer
	superview former.View
}

// NewHeaderView creates an empty header view
func NewHeaderView() *HeaderView {
	v := &HeaderView{Label: widget.NewLabel("")}
	v.Label.Importance = widget.LowImportance
	v.ExtendBaseWidget(v)
	return v
}

// SetViewFormer implements former.HeaderFooterView
func (v *HeaderView) SetViewFormer(vf former.ViewFormer) { v.former = vf }

// IsFirstResponder implements former.View
func (v *HeaderView) IsFirstResponder() bool { return false }

// Subviews implements former.View
func (v *HeaderView) Subviews() []former.View { return nil }

// Superview implements former.View
func (v *HeaderView) Superview() former.View { return v.superview }

func (v *HeaderView) setSuperview(sv former.View) { v.superview = sv }

// CreateRenderer implements fyne.Widget
func (v *HeaderView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.Label)
}
