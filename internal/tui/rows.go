package tui

import (
	"strings"

	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/model"
)

// LineHeight is the height of every row, header and footer in the terminal
const LineHeight float32 = 1

func useLayout(base *former.BaseRowFormer, name string) {
	base.SetInstantiateType(model.Nib(name, BundleName), nil)
	base.SetCellHeight(LineHeight)
}

// LabelRow shows a title and a read-only detail
type LabelRow struct {
	former.BaseRowFormer

	Title  string
	Detail string
}

// NewLabelRow creates a label row
func NewLabelRow(title, detail string) *LabelRow {
	r := &LabelRow{Title: title, Detail: detail}
	r.ExtendRowFormer(r)
	useLayout(&r.BaseRowFormer, LayoutLabel)
	return r
}

// CellConfigure implements former.RowFormer
func (r *LabelRow) CellConfigure() {
	cell, ok := r.Cell().(*Cell)
	if !ok {
		return
	}
	cell.Title = r.Title
	cell.Detail = r.Detail
	cell.Disabled = !r.Enabled()
}

// TextRow is edited in the input panel of the program
type TextRow struct {
	former.BaseRowFormer

	Title       string
	Placeholder string
	Required    bool

	// OnFocus asks the host to start editing the row
	OnFocus func(r *TextRow)

	text    string
	focused bool
	invalid bool
}

// NewTextRow creates a text row
func NewTextRow(title, placeholder string) *TextRow {
	r := &TextRow{Title: title, Placeholder: placeholder}
	r.ExtendRowFormer(r)
	useLayout(&r.BaseRowFormer, LayoutText)
	return r
}

// CanBecomeEditing implements former.RowFormer
func (r *TextRow) CanBecomeEditing() bool {
	return r.Enabled()
}

// Text returns the current text
func (r *TextRow) Text() string {
	return r.text
}

// SetText replaces the text. A non-blank text clears the invalid mark.
func (r *TextRow) SetText(text string) {
	r.text = text
	if r.invalid && strings.TrimSpace(text) != "" {
		r.invalid = false
	}
	r.Update()
}

// Value implements formspec.ValueRow
func (r *TextRow) Value() string {
	return r.text
}

// IsFocused reports whether the row is being edited
func (r *TextRow) IsFocused() bool {
	return r.focused
}

func (r *TextRow) setFocused(focused bool) {
	r.focused = focused
	r.Update()
}

// IsInvalid reports whether the last validation failed
func (r *TextRow) IsInvalid() bool {
	return r.invalid
}

// AsValidatable implements former.RowFormer
func (r *TextRow) AsValidatable() former.Validatable {
	if !r.Required {
		return nil
	}
	return r
}

// Validate fails for a blank required text
func (r *TextRow) Validate() bool {
	ok := strings.TrimSpace(r.text) != ""
	r.invalid = !ok
	r.Update()
	return ok
}

// CellConfigure implements former.RowFormer
func (r *TextRow) CellConfigure() {
	cell, ok := r.Cell().(*Cell)
	if !ok {
		return
	}
	cell.Title = r.Title
	cell.Detail = r.text
	cell.Placeholder = r.text == ""
	if cell.Placeholder {
		cell.Detail = r.Placeholder
	}
	cell.Disabled = !r.Enabled()
	cell.Invalid = r.invalid
	cell.Editing = r.focused
}

// CellSelected starts editing
func (r *TextRow) CellSelected(path model.IndexPath) {
	r.BaseRowFormer.CellSelected(path)
	if r.Enabled() && r.OnFocus != nil {
		r.OnFocus(r)
	}
}

// SelectorRow shows its value and expands a picker row beneath it while selected
type SelectorRow struct {
	former.BaseRowFormer

	Title   string
	Options []string

	OnValueChanged func(value string)

	value   string
	editing bool
	picker  *PickerRow
}

// NewSelectorRow creates a selector row with its picker companion
func NewSelectorRow(title string, options []string, value string) *SelectorRow {
	r := &SelectorRow{Title: title, Options: options, value: value}
	r.ExtendRowFormer(r)
	useLayout(&r.BaseRowFormer, LayoutSelector)
	r.picker = newPickerRow(r)
	return r
}

// AsInline implements former.RowFormer
func (r *SelectorRow) AsInline() former.InlineRow {
	return r
}

// InlineRowFormer implements former.InlineRow
func (r *SelectorRow) InlineRowFormer() former.RowFormer {
	if len(r.Options) == 0 {
		return nil
	}
	return r.picker
}

// Picker returns the companion row
func (r *SelectorRow) Picker() *PickerRow {
	return r.picker
}

// EditingDidBegin implements former.InlineRow
func (r *SelectorRow) EditingDidBegin() {
	r.editing = true
	r.Update()
}

// EditingDidEnd implements former.InlineRow
func (r *SelectorRow) EditingDidEnd() {
	r.editing = false
	r.Update()
}

// IsEditing reports whether the picker is shown
func (r *SelectorRow) IsEditing() bool {
	return r.editing
}

// Value implements formspec.ValueRow
func (r *SelectorRow) Value() string {
	return r.value
}

// SetValue selects value and reloads the row
func (r *SelectorRow) SetValue(value string) {
	if value == r.value {
		return
	}
	r.value = value
	r.picker.Update()
	if f := r.Former(); f != nil {
		f.ReloadRowFormer(r, model.RowAnimationNone)
	} else {
		r.Update()
	}
	if r.OnValueChanged != nil {
		r.OnValueChanged(value)
	}
}

func (r *SelectorRow) index() int {
	for i, option := range r.Options {
		if option == r.value {
			return i
		}
	}
	return -1
}

// CellConfigure implements former.RowFormer
func (r *SelectorRow) CellConfigure() {
	cell, ok := r.Cell().(*Cell)
	if !ok {
		return
	}
	cell.Title = r.Title
	cell.Detail = r.value
	cell.Placeholder = r.value == ""
	if cell.Placeholder {
		cell.Detail = "-"
	}
	cell.Disabled = !r.Enabled()
	cell.Editing = r.editing
}

// PickerRow lists the options of its owner
type PickerRow struct {
	former.BaseRowFormer

	owner *SelectorRow
}

func newPickerRow(owner *SelectorRow) *PickerRow {
	p := &PickerRow{owner: owner}
	p.ExtendRowFormer(p)
	useLayout(&p.BaseRowFormer, LayoutPicker)
	return p
}

// Owner returns the selector the picker belongs to
func (p *PickerRow) Owner() *SelectorRow {
	return p.owner
}

// Cycle moves the owner's value by delta options, wrapping around
func (p *PickerRow) Cycle(delta int) {
	n := len(p.owner.Options)
	if n == 0 {
		return
	}
	i := p.owner.index()
	if i < 0 {
		if delta < 0 {
			i = 0
		} else {
			i = -1
		}
	}
	i = ((i+delta)%n + n) % n
	p.owner.SetValue(p.owner.Options[i])
}

// CellConfigure implements former.RowFormer
func (p *PickerRow) CellConfigure() {
	cell, ok := p.Cell().(*Cell)
	if !ok {
		return
	}
	cell.Options = p.owner.Options
	cell.Selected = p.owner.index()
}

// HeaderViewFormer describes a section header or footer line
type HeaderViewFormer struct {
	former.BaseViewFormer

	Text   string
	footer bool
}

// NewHeaderViewFormer creates a section header
func NewHeaderViewFormer(text string) *HeaderViewFormer {
	return newHeaderViewFormer(text, false)
}

// NewFooterViewFormer creates a section footer
func NewFooterViewFormer(text string) *HeaderViewFormer {
	return newHeaderViewFormer(text, true)
}

func newHeaderViewFormer(text string, footer bool) *HeaderViewFormer {
	v := &HeaderViewFormer{Text: text, footer: footer}
	v.ExtendViewFormer(v, func() former.HeaderFooterView { return &HeaderView{} })
	v.SetViewHeight(LineHeight)
	return v
}

// ViewConfigure implements former.ViewFormer
func (v *HeaderViewFormer) ViewConfigure() {
	view, ok := v.View().(*HeaderView)
	if !ok {
		return
	}
	view.Footer = v.footer
	view.Text = v.Text
	if !v.footer {
		view.Text = strings.ToUpper(v.Text)
	}
}
