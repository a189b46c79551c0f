package tui

import (
	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/formspec"
)

// RowFactory builds terminal rows for form documents. Document heights are
// ignored: every row is one line.
type RowFactory struct {
	// OnFocus is installed on every text row
	OnFocus func(r *TextRow)
}

var _ formspec.RowFactory = (*RowFactory)(nil)

// Label implements formspec.RowFactory
func (f *RowFactory) Label(row formspec.Row) former.RowFormer {
	detail := row.Detail
	if detail == "" {
		detail = row.Value
	}
	r := NewLabelRow(row.DisplayTitle(), detail)
	r.SetEnabled(!row.Disabled)
	return r
}

// Text implements formspec.RowFactory
func (f *RowFactory) Text(row formspec.Row) former.RowFormer {
	r := NewTextRow(row.DisplayTitle(), row.Placeholder)
	r.Required = row.Required
	r.SetText(row.Value)
	r.SetEnabled(!row.Disabled)
	r.OnFocus = func(r *TextRow) {
		if f.OnFocus != nil {
			f.OnFocus(r)
		}
	}
	return r
}

// Selector implements formspec.RowFactory
func (f *RowFactory) Selector(row formspec.Row) former.RowFormer {
	r := NewSelectorRow(row.DisplayTitle(), row.Options, row.Value)
	r.SetEnabled(!row.Disabled)
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
