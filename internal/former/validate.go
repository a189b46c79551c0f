package former

import "github.com/ytget/former/internal/model"

// Validate returns the row's validation result, or true if the row cannot validate
func (f *Former) Validate(row RowFormer) bool {
	if row == nil {
		return true
	}
	if v := row.AsValidatable(); v != nil {
		return v.Validate()
	}
	return true
}

// ValidateAt validates the row at path. Addresses outside the form pass.
func (f *Former) ValidateAt(path model.IndexPath) bool {
	return f.Validate(f.RowFormer(path))
}

// ValidateAll returns the rows that failed validation in tree order, or nil when
// every row passed
func (f *Former) ValidateAll() []RowFormer {
	var invalid []RowFormer
	for _, row := range f.RowFormers() {
		if !f.Validate(row) {
			invalid = append(invalid, row)
		}
	}
	return invalid
}
