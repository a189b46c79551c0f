package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelRowFormerConfiguresCell(t *testing.T) {
	test.NewApp()
	r := NewLabelRowFormer("Version", "1.0")
	cell, ok := r.Cell().(*LabelCell)
	require.True(t, ok)

	r.CellConfigure()
	assert.Equal(t, "Version", cell.Title.Text)
	assert.Equal(t, "1.0", cell.Detail.Text)
	assert.Equal(t, widget.MediumImportance, cell.Title.Importance)

	r.SetEnabled(false)
	assert.Equal(t, widget.LowImportance, cell.Title.Importance)
}

func TestTextFieldRowFormer(t *testing.T) {
	test.NewApp()
	r := NewTextFieldRowFormer("Name", "Your name")
	cell := r.Cell().(*TextFieldCell)
	r.CellConfigure()

	assert.True(t, r.CanBecomeEditing())
	assert.Nil(t, r.AsValidatable())
	assert.Equal(t, "Your name", cell.Entry.PlaceHolder)

	var changed []string
	r.OnTextChanged = func(text string) { changed = append(changed, text) }
	test.Type(cell.Entry, "Ada")
	assert.Equal(t, "Ada", r.Text())
	assert.Equal(t, "Ada", r.Value())
	assert.Equal(t, "Ada", changed[len(changed)-1])

	r.SetText("Grace")
	assert.Equal(t, "Grace", cell.Entry.Text)
	assert.Len(t, changed, 3, "SetText does not report a change")

	r.SetEnabled(false)
	assert.False(t, r.CanBecomeEditing())
	assert.True(t, cell.Entry.Disabled())
}

func TestTextFieldRowFormerValidation(t *testing.T) {
	test.NewApp()
	r := NewTextFieldRowFormer("Name", "")
	r.Required = true
	cell := r.Cell().(*TextFieldCell)
	r.CellConfigure()

	v := r.AsValidatable()
	require.NotNil(t, v)

	r.SetText("   ")
	assert.False(t, v.Validate())
	assert.True(t, r.IsInvalid())
	assert.Equal(t, widget.DangerImportance, cell.Title.Importance)

	// typing clears the mark
	test.Type(cell.Entry, "x")
	assert.False(t, r.IsInvalid())
	assert.Equal(t, widget.MediumImportance, cell.Title.Importance)
	assert.True(t, v.Validate())
}

func TestTextFieldRowFormerFocusCallbacks(t *testing.T) {
	test.NewApp()
	r := NewTextFieldRowFormer("Name", "")
	cell := r.Cell().(*TextFieldCell)
	r.CellConfigure()

	var focus []bool
	r.OnFocusChanged = func(focused bool) { focus = append(focus, focused) }
	cell.Entry.FocusGained()
	assert.True(t, cell.Entry.IsFirstResponder())
	cell.Entry.FocusLost()
	assert.False(t, cell.Entry.IsFirstResponder())
	assert.Equal(t, []bool{true, false}, focus)
	assert.Same(t, cell, cell.Entry.Superview())
	assert.Len(t, cell.Subviews(), 1)
}

func TestInlineSelectorRowFormer(t *testing.T) {
	test.NewApp()
	r := NewInlineSelectorRowFormer("Country", []string{"Norway", "Japan"}, "")
	cell := r.Cell().(*SelectorCell)
	r.CellConfigure()

	assert.Equal(t, "Country", cell.Title.Text)
	assert.Equal(t, DashPlaceholder, cell.Value.Text)
	require.NotNil(t, r.AsInline())
	assert.Same(t, r.Picker(), r.InlineRowFormer())
	assert.Same(t, r, r.Picker().Owner())
	assert.True(t, cell.Disclosure.Visible())

	r.EditingDidBegin()
	assert.True(t, r.IsEditing())
	assert.Equal(t, widget.HighImportance, cell.Value.Importance)
	r.EditingDidEnd()
	assert.Equal(t, widget.MediumImportance, cell.Value.Importance)

	var changed []string
	r.OnValueChanged = func(v string) { changed = append(changed, v) }
	r.SetValue("Norway")
	r.SetValue("Norway")
	assert.Equal(t, "Norway", r.Value())
	assert.Equal(t, "Norway", cell.Value.Text)
	assert.Equal(t, []string{"Norway"}, changed)

	r.Picker().Pick("")
	assert.Equal(t, "Norway", r.Value())
}

func TestInlineSelectorWithoutOptions(t *testing.T) {
	r := NewInlineSelectorRowFormer("Empty", nil, "")
	assert.Nil(t, r.InlineRowFormer())
}

func TestSelectorCellDisclosure(t *testing.T) {
	test.NewApp()
	r := NewInlineSelectorRowFormer("Country", []string{"Norway"}, "")
	r.ShowsDisclosure = false
	cell := r.Cell().(*SelectorCell)
	assert.False(t, cell.Disclosure.Visible())
	assert.Same(t, r, cell.RowFormer())
}

func TestPickerRowFormerConfiguresOptions(t *testing.T) {
	test.NewApp()
	r := NewInlineSelectorRowFormer("Country", []string{"Norway", "Japan"}, "Japan")
	picker := r.Picker()
	assert.Equal(t, PickerCellHeight, picker.CellHeight())

	cell := picker.Cell().(*PickerCell)
	picker.CellConfigure()
	assert.Equal(t, []string{"Norway", "Japan"}, cell.Options.Options)
	assert.Equal(t, "Japan", cell.Options.Selected)

	cell.Options.OnChanged("Norway")
	assert.Equal(t, "Norway", r.Value())
}

func TestHeaderViewFormer(t *testing.T) {
	test.NewApp()
	header := NewHeaderViewFormer("Profile")
	footer := NewFooterViewFormer("Read only")

	assert.Equal(t, HeaderHeight, header.ViewHeight())
	assert.Equal(t, FooterHeight, footer.ViewHeight())

	header.ViewConfigure()
	footer.ViewConfigure()
	hv := header.View().(*HeaderView)
	fv := footer.View().(*HeaderView)
	assert.Equal(t, "PROFILE", hv.Label.Text)
	assert.Equal(t, fyne.TextStyle{Bold: true}, hv.Label.TextStyle)
	assert.Equal(t, "Read only", fv.Label.Text)
	assert.Equal(t, fyne.TextStyle{Italic: true}, fv.Label.TextStyle)
	assert.Same(t, header, hv.former)
}
