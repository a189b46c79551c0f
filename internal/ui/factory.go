package ui

import (
	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/formspec"
)

// RowFactory builds Fyne rows for form documents
type RowFactory struct {
	cellHeight float32

	// OnFocusChanged is installed on every text row
	OnFocusChanged func(focused bool)
}

var _ formspec.RowFactory = (*RowFactory)(nil)

// NewRowFactory creates a factory giving rows cellHeight unless the document
// sets a height
func NewRowFactory(cellHeight float32) *RowFactory {
	return &RowFactory{cellHeight: cellHeight}
}

// Label implements formspec.RowFactory
func (f *RowFactory) Label(row formspec.Row) former.RowFormer {
	detail := row.Detail
	if detail == "" {
		detail = row.Value
	}
	r := NewLabelRowFormer(row.DisplayTitle(), detail)
	f.apply(&r.BaseRowFormer, row)
	return r
}

// Text implements formspec.RowFactory
func (f *RowFactory) Text(row formspec.Row) former.RowFormer {
	r := NewTextFieldRowFormer(row.DisplayTitle(), row.Placeholder)
	r.Required = row.Required
	r.SetText(row.Value)
	r.OnFocusChanged = func(focused bool) {
		if f.OnFocusChanged != nil {
			f.OnFocusChanged(focused)
		}
	}
	f.apply(&r.BaseRowFormer, row)
	return r
}

// Selector implements formspec.RowFactory
func (f *RowFactory) Selector(row formspec.Row) former.RowFormer {
	r := NewInlineSelectorRowFormer(row.DisplayTitle(), row.Options, row.Value)
	f.apply(&r.BaseRowFormer, row)
	return r
}

// Header implements formspec.RowFactory
func (f *RowFactory) Header(text string) former.ViewFormer {
	return NewHeaderViewFormer(text)
}

// Footer implements formspec.RowFactory
func (f *RowFactory) Footer(text string) former.ViewFormer {
	return NewFooterViewFormer(text)
}

func (f *RowFactory) apply(base *former.BaseRowFormer, row formspec.Row) {
	height := f.cellHeight
	if row.Height > 0 {
		height = float32(row.Height)
	}
	base.SetCellHeight(height)
	base.SetEnabled(!row.Disabled)
}
