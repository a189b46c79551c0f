package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/model"
)

// LabelRowFormer shows a title and a read-only detail text
type LabelRowFormer struct {
	former.BaseRowFormer

	Title  string
	Detail string
}

// NewLabelRowFormer creates a label row
func NewLabelRowFormer(title, detail string) *LabelRowFormer {
	r := &LabelRowFormer{Title: title, Detail: detail}
	r.ExtendRowFormer(r)
	r.SetCellFactory(func() former.Cell { return NewLabelCell() })
	return r
}

// CellConfigure implements former.RowFormer
func (r *LabelRowFormer) CellConfigure() {
	cell, ok := r.Cell().(*LabelCell)
	if !ok {
		return
	}
	cell.Title.SetText(r.Title)
	cell.Detail.SetText(r.Detail)
	setTitleEnabled(cell.Title, r.Enabled())
}

// TextFieldRowFormer is an editable single-line text row. It is validatable when
// Required is set.
type TextFieldRowFormer struct {
	former.BaseRowFormer

	Title       string
	Placeholder string
	Required    bool

	OnTextChanged  func(text string)
	OnFocusChanged func(focused bool)

	text    string
	invalid bool
}

// NewTextFieldRowFormer creates a text field row
func NewTextFieldRowFormer(title, placeholder string) *TextFieldRowFormer {
	r := &TextFieldRowFormer{Title: title, Placeholder: placeholder}
	r.ExtendRowFormer(r)
	r.SetCellFactory(func() former.Cell { return NewTextFieldCell() })
	return r
}

// CanBecomeEditing implements former.RowFormer
func (r *TextFieldRowFormer) CanBecomeEditing() bool {
	return r.Enabled()
}

// Text returns the current text
func (r *TextFieldRowFormer) Text() string {
	return r.text
}

// SetText replaces the text
func (r *TextFieldRowFormer) SetText(text string) {
	r.text = text
	r.Update()
}

// Value implements formspec.ValueRow
func (r *TextFieldRowFormer) Value() string {
	return r.text
}

// IsInvalid reports whether the last validation failed
func (r *TextFieldRowFormer) IsInvalid() bool {
	return r.invalid
}

// AsValidatable implements former.RowFormer
func (r *TextFieldRowFormer) AsValidatable() former.Validatable {
	if !r.Required {
		return nil
	}
	return r
}

// Validate marks the row invalid when the required text is blank
func (r *TextFieldRowFormer) Validate() bool {
	ok := strings.TrimSpace(r.text) != ""
	r.invalid = !ok
	r.Update()
	return ok
}

// CellConfigure implements former.RowFormer
func (r *TextFieldRowFormer) CellConfigure() {
	cell, ok := r.Cell().(*TextFieldCell)
	if !ok {
		return
	}
	cell.Title.SetText(r.Title)
	if r.invalid {
		cell.Title.Importance = widget.DangerImportance
		cell.Title.Refresh()
	} else {
		setTitleEnabled(cell.Title, r.Enabled())
	}

	entry := cell.Entry
	entry.OnChanged = nil
	entry.SetPlaceHolder(r.Placeholder)
	if entry.Text != r.text {
		entry.SetText(r.text)
	}
	entry.OnChanged = r.textChanged
	entry.OnFocusGained = func() { r.focusChanged(true) }
	entry.OnFocusLost = func() { r.focusChanged(false) }
	if r.Enabled() {
		entry.Enable()
	} else {
		entry.Disable()
	}
}

// CellSelected focuses the entry
func (r *TextFieldRowFormer) CellSelected(path model.IndexPath) {
	r.BaseRowFormer.CellSelected(path)
	cell, ok := r.Cell().(*TextFieldCell)
	if !ok {
		return
	}
	if c := canvasFor(cell.Entry); c != nil {
		c.Focus(cell.Entry)
	}
}

func (r *TextFieldRowFormer) textChanged(text string) {
	r.text = text
	if r.invalid && strings.TrimSpace(text) != "" {
		r.invalid = false
		r.Update()
	}
	if r.OnTextChanged != nil {
		r.OnTextChanged(text)
	}
}

func (r *TextFieldRowFormer) focusChanged(focused bool) {
	if r.OnFocusChanged != nil {
		r.OnFocusChanged(focused)
	}
}

// InlineSelectorRowFormer shows its value and expands a picker row beneath it
// while selected
type InlineSelectorRowFormer struct {
	former.BaseRowFormer

	Title           string
	Options         []string
	ShowsDisclosure bool

	OnValueChanged func(value string)

	value   string
	editing bool
	picker  *PickerRowFormer
}

// NewInlineSelectorRowFormer creates a selector row with its picker companion
func NewInlineSelectorRowFormer(title string, options []string, value string) *InlineSelectorRowFormer {
	r := &InlineSelectorRowFormer{
		Title:           title,
		Options:         options,
		ShowsDisclosure: true,
		value:           value,
	}
	r.ExtendRowFormer(r)
	r.SetCellFactory(func() former.Cell { return NewSelectorCell() })
	r.picker = newPickerRowFormer(r)
	return r
}

// AsInline implements former.RowFormer
func (r *InlineSelectorRowFormer) AsInline() former.InlineRow {
	return r
}

// InlineRowFormer implements former.InlineRow. There is no picker without options.
func (r *InlineSelectorRowFormer) InlineRowFormer() former.RowFormer {
	if len(r.Options) == 0 {
		return nil
	}
	return r.picker
}

// Picker returns the companion row
func (r *InlineSelectorRowFormer) Picker() *PickerRowFormer {
	return r.picker
}

// EditingDidBegin implements former.InlineRow
func (r *InlineSelectorRowFormer) EditingDidBegin() {
	r.editing = true
	r.Update()
}

// EditingDidEnd implements former.InlineRow
func (r *InlineSelectorRowFormer) EditingDidEnd() {
	r.editing = false
	r.Update()
}

// IsEditing reports whether the picker is shown
func (r *InlineSelectorRowFormer) IsEditing() bool {
	return r.editing
}

// Value implements formspec.ValueRow
func (r *InlineSelectorRowFormer) Value() string {
	return r.value
}

// SetValue selects value and reloads the row
func (r *InlineSelectorRowFormer) SetValue(value string) {
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

// CellConfigure implements former.RowFormer
func (r *InlineSelectorRowFormer) CellConfigure() {
	cell, ok := r.Cell().(*SelectorCell)
	if !ok {
		return
	}
	cell.Title.SetText(r.Title)
	setTitleEnabled(cell.Title, r.Enabled())

	value := r.value
	if value == "" {
		value = DashPlaceholder
	}
	cell.Value.Importance = widget.MediumImportance
	if r.editing {
		cell.Value.Importance = widget.HighImportance
	}
	cell.Value.SetText(value)
}

// PickerRowFormer is the inline companion of an InlineSelectorRowFormer
type PickerRowFormer struct {
	former.BaseRowFormer

	owner *InlineSelectorRowFormer
}

func newPickerRowFormer(owner *InlineSelectorRowFormer) *PickerRowFormer {
	p := &PickerRowFormer{owner: owner}
	p.ExtendRowFormer(p)
	p.SetCellFactory(func() former.Cell { return NewPickerCell() })
	p.SetCellHeight(PickerCellHeight)
	return p
}

// Owner returns the selector row the picker belongs to
func (p *PickerRowFormer) Owner() *InlineSelectorRowFormer {
	return p.owner
}

// CellConfigure implements former.RowFormer
func (p *PickerRowFormer) CellConfigure() {
	cell, ok := p.Cell().(*PickerCell)
	if !ok {
		return
	}
	group := cell.Options
	group.OnChanged = nil
	group.Options = p.owner.Options
	group.Selected = p.owner.value
	group.Refresh()
	group.OnChanged = p.pick
}

// Pick selects value on the owner
func (p *PickerRowFormer) Pick(value string) {
	p.pick(value)
}

func (p *PickerRowFormer) pick(value string) {
	if value == "" {
		return
	}
	p.owner.SetValue(value)
}

// HeaderViewFormer describes a section header or footer text
type HeaderViewFormer struct {
	former.BaseViewFormer

	Text   string
	footer bool
}

// NewHeaderViewFormer creates a section header
func NewHeaderViewFormer(text string) *HeaderViewFormer {
	v := &HeaderViewFormer{Text: text}
	v.ExtendViewFormer(v, func() former.HeaderFooterView { return NewHeaderView() })
	v.SetViewHeight(HeaderHeight)
	return v
}

// NewFooterViewFormer creates a section footer
func NewFooterViewFormer(text string) *HeaderViewFormer {
	v := &HeaderViewFormer{Text: text, footer: true}
	v.ExtendViewFormer(v, func() former.HeaderFooterView { return NewHeaderView() })
	v.SetViewHeight(FooterHeight)
	return v
}

// ViewConfigure implements former.ViewFormer
func (v *HeaderViewFormer) ViewConfigure() {
	view, ok := v.View().(*HeaderView)
	if !ok {
		return
	}
	if v.footer {
		view.Label.TextStyle = fyne.TextStyle{Italic: true}
		view.Label.SetText(v.Text)
		return
	}
	view.Label.TextStyle = fyne.TextStyle{Bold: true}
	view.Label.SetText(strings.ToUpper(v.Text))
}

func setTitleEnabled(label *widget.Label, enabled bool) {
	label.Importance = widget.MediumImportance
	if !enabled {
		label.Importance = widget.LowImportance
	}
	label.Refresh()
}

func canvasFor(obj fyne.CanvasObject) fyne.Canvas {
	app := fyne.CurrentApp()
	if app == nil {
		return nil
	}
	return app.Driver().CanvasForObject(obj)
}
