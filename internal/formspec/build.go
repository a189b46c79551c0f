package formspec

import (
	"fmt"

	"github.com/ytget/former/internal/former"
)

// RowFactory creates host-specific rows and header/footer descriptors
type RowFactory interface {
	Label(row Row) former.RowFormer
	Text(row Row) former.RowFormer
	Selector(row Row) former.RowFormer
	// Header returns nil if the host shows no headers
	Header(text string) former.ViewFormer
	// Footer returns nil if the host shows no footers
	Footer(text string) former.ViewFormer
}

// ValueRow is implemented by rows that capture a value
type ValueRow interface {
	Value() string
}

// Form is a document turned into sections
type Form struct {
	Title    string
	Sections []*former.SectionFormer

	keys []string
	rows map[string]former.RowFormer
}

// Build validates doc and creates its sections with factory
func Build(doc *Document, factory RowFactory) (*Form, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	form := &Form{Title: doc.Title, rows: make(map[string]former.RowFormer)}
	for _, section := range doc.Sections {
		sf := former.NewSectionFormer()
		for _, row := range section.Rows {
			rf, err := buildRow(row, factory)
			if err != nil {
				return nil, err
			}
			sf.Add(rf)
			form.keys = append(form.keys, row.Key)
			form.rows[row.Key] = rf
		}
		if section.Header != "" {
			sf.SetHeader(factory.Header(section.Header))
		}
		if section.Footer != "" {
			sf.SetFooter(factory.Footer(section.Footer))
		}
		form.Sections = append(form.Sections, sf)
	}
	return form, nil
}

func buildRow(row Row, factory RowFactory) (former.RowFormer, error) {
	var rf former.RowFormer
	switch row.Kind {
	case KindLabel:
		rf = factory.Label(row)
	case KindText:
		rf = factory.Text(row)
	case KindSelector:
		rf = factory.Selector(row)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, row.Kind)
	}
	if rf == nil {
		return nil, fmt.Errorf("factory returned no row for %q", row.Key)
	}
	return rf, nil
}

// Row returns the row built for key
func (f *Form) Row(key string) (former.RowFormer, bool) {
	rf, ok := f.rows[key]
	return rf, ok
}

// Keys returns the row keys in document order
func (f *Form) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Key returns the document key of row, or ""
func (f *Form) Key(row former.RowFormer) string {
	for key, rf := range f.rows {
		if rf == row {
			return key
		}
	}
	return ""
}

// Values returns the current value of every row that captures one
func (f *Form) Values() map[string]string {
	values := make(map[string]string)
	for _, key := range f.keys {
		if v, ok := f.rows[key].(ValueRow); ok {
			values[key] = v.Value()
		}
	}
	return values
}
