package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/former/internal/formspec"
)

func TestRowFactoryBuildsDocument(t *testing.T) {
	test.NewApp()
	doc := &formspec.Document{
		Sections: []formspec.Section{
			{
				Header: "Profile",
				Rows: []formspec.Row{
					{Kind: formspec.KindText, Key: "full_name", Placeholder: "Your name", Value: "Ada", Required: true},
					{Kind: formspec.KindSelector, Key: "country", Options: []string{"Norway", "Japan"}, Value: "Japan", Height: 60},
				},
			},
			{
				Footer: "Read only",
				Rows: []formspec.Row{
					{Kind: formspec.KindLabel, Key: "build", Value: "abc123", Disabled: true},
				},
			},
		},
	}

	var focus []bool
	factory := NewRowFactory(48)
	factory.OnFocusChanged = func(focused bool) { focus = append(focus, focused) }
	form, err := formspec.Build(doc, factory)
	require.NoError(t, err)

	name, ok := form.Sections[0].Row(0).(*TextFieldRowFormer)
	require.True(t, ok)
	assert.Equal(t, "Full Name", name.Title)
	assert.Equal(t, "Your name", name.Placeholder)
	assert.Equal(t, "Ada", name.Text())
	assert.True(t, name.Required)
	assert.Equal(t, float32(48), name.CellHeight())

	country, ok := form.Sections[0].Row(1).(*InlineSelectorRowFormer)
	require.True(t, ok)
	assert.Equal(t, "Japan", country.Value())
	assert.Equal(t, float32(60), country.CellHeight())

	build, ok := form.Sections[1].Row(0).(*LabelRowFormer)
	require.True(t, ok)
	assert.Equal(t, "abc123", build.Detail)
	assert.False(t, build.Enabled())

	assert.IsType(t, &HeaderViewFormer{}, form.Sections[0].Header())
	assert.Nil(t, form.Sections[1].Header())
	assert.NotNil(t, form.Sections[1].Footer())
	assert.Equal(t, map[string]string{"full_name": "Ada", "country": "Japan"}, form.Values())

	name.Cell()
	name.CellConfigure()
	cell := name.Cell().(*TextFieldCell)
	cell.Entry.FocusGained()
	cell.Entry.FocusLost()
	assert.Equal(t, []bool{true, false}, focus)
}
