package former

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/former/internal/model"
)

func TestBaseRowFormerDefaults(t *testing.T) {
	row := newTestRow("A", &recorder{})

	assert.True(t, row.Enabled())
	assert.False(t, row.BaseRowFormer.CanBecomeEditing())
	assert.Equal(t, DefaultCellHeight, row.CellHeight())
	assert.Nil(t, row.BaseRowFormer.AsInline())
	assert.Nil(t, row.BaseRowFormer.AsValidatable())
	assert.Nil(t, row.Former())
	assert.False(t, row.HasCell())
	assert.Equal(t, model.InstantiateClass, row.InstantiateType().Kind)

	row.SetCellHeight(-5)
	assert.Equal(t, DefaultCellHeight, row.CellHeight())
}

func TestRowIDIsStable(t *testing.T) {
	a, b := newTestRow("A", &recorder{}), newTestRow("B", &recorder{})

	id := a.ID()
	assert.True(t, strings.HasPrefix(id, RowIDPrefix), id)
	assert.Equal(t, id, a.ID())
	assert.NotEqual(t, id, b.ID())
}

func TestUpdateConfiguresBoundCellOnly(t *testing.T) {
	row := newTestRow("A", &recorder{})

	row.SetEnabled(false)
	assert.False(t, row.Enabled())
	assert.Zero(t, row.configured)

	require.NotNil(t, row.Cell())
	row.SetEnabled(true)
	assert.True(t, row.Enabled())
	assert.Equal(t, 1, row.configured)
}

func TestCellWithoutFactory(t *testing.T) {
	row := &testRow{name: "bare"}
	row.ExtendRowFormer(row)
	assert.Nil(t, row.Cell())
	assert.False(t, row.HasCell())
}

func TestCellFromBundle(t *testing.T) {
	bundle := NewBundle("row-test")
	bundle.Register("LabelCell", func() Cell { return newFakeCell("from-layout") })

	tests := []struct {
		name     string
		it       model.InstantiateType
		wantCell string
	}{
		{name: "named bundle", it: model.Nib("LabelCell", "row-test"), wantCell: "from-layout"},
		{name: "missing layout", it: model.Nib("Missing", "row-test")},
		{name: "class", it: model.Class(), wantCell: "factory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := &testRow{name: tt.name}
			row.ExtendRowFormer(row)
			row.SetInstantiateType(tt.it, func() Cell { return newFakeCell("factory") })

			cell := row.Cell()
			if tt.wantCell == "" {
				assert.Nil(t, cell)
				return
			}
			require.NotNil(t, cell)
			fc := cell.(*fakeCell)
			assert.Equal(t, tt.wantCell, fc.name)
			assert.Same(t, row, fc.row)
			assert.Same(t, cell, row.Cell())
			assert.Equal(t, 1, fc.attached)
		})
	}
}

func TestLookupBundle(t *testing.T) {
	named := NewBundle("lookup-test")

	assert.Same(t, MainBundle, LookupBundle(""))
	assert.Same(t, MainBundle, LookupBundle("no-such-bundle"))
	assert.Same(t, named, LookupBundle("lookup-test"))
	assert.Equal(t, MainBundleName, MainBundle.Name())

	_, err := named.Cell("Nope")
	assert.True(t, errors.Is(err, ErrLayoutNotFound))
	assert.Contains(t, err.Error(), "lookup-test")
}

func TestViewFormerDefaults(t *testing.T) {
	var vf BaseViewFormer
	assert.Equal(t, DefaultHeaderFooterHeight, vf.ViewHeight())
	assert.Nil(t, vf.View())

	h := newTestHeader(12)
	assert.Equal(t, float32(12), h.ViewHeight())
	view := h.View()
	require.NotNil(t, view)
	assert.Same(t, view, h.View())
}
