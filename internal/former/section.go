package former

// SectionFormer is an ordered list of rows with an optional header and footer.
// A row must not be added to more than one section.
type SectionFormer struct {
	rows   []RowFormer
	header ViewFormer
	footer ViewFormer
}

// NewSectionFormer creates a section holding rows in order
func NewSectionFormer(rows ...RowFormer) *SectionFormer {
	return &SectionFormer{rows: append([]RowFormer(nil), rows...)}
}

// RowFormers returns a copy of the section's rows
func (s *SectionFormer) RowFormers() []RowFormer {
	return append([]RowFormer(nil), s.rows...)
}

// NumberOfRows returns the number of rows in the section
func (s *SectionFormer) NumberOfRows() int {
	return len(s.rows)
}

// Row returns the row at index, or nil when index is out of range
func (s *SectionFormer) Row(index int) RowFormer {
	if index < 0 || index >= len(s.rows) {
		return nil
	}
	return s.rows[index]
}

// Index returns the position of row in the section, or -1
func (s *SectionFormer) Index(row RowFormer) int {
	for i, r := range s.rows {
		if r == row {
			return i
		}
	}
	return -1
}

// Add appends rows
func (s *SectionFormer) Add(rows ...RowFormer) *SectionFormer {
	s.rows = append(s.rows, rows...)
	return s
}

// Insert places rows at toIndex. toIndex >= NumberOfRows appends, toIndex <= 0 prepends.
func (s *SectionFormer) Insert(rows []RowFormer, toIndex int) *SectionFormer {
	switch {
	case toIndex >= len(s.rows):
		return s.Add(rows...)
	case toIndex <= 0:
		s.rows = append(append([]RowFormer(nil), rows...), s.rows...)
	default:
		merged := make([]RowFormer, 0, len(s.rows)+len(rows))
		merged = append(merged, s.rows[:toIndex]...)
		merged = append(merged, rows...)
		merged = append(merged, s.rows[toIndex:]...)
		s.rows = merged
	}
	return s
}

// Remove deletes the given rows and returns the pre-removal positions of the rows
// that were found
func (s *SectionFormer) Remove(rows ...RowFormer) []int {
	var removed []int
	kept := make([]RowFormer, 0, len(s.rows))
	for i, r := range s.rows {
		if containsRow(rows, r) {
			removed = append(removed, i)
			continue
		}
		kept = append(kept, r)
	}
	s.rows = kept
	return removed
}

// RemoveAt deletes the row at index. Out-of-range indices are ignored.
func (s *SectionFormer) RemoveAt(index int) RowFormer {
	if index < 0 || index >= len(s.rows) {
		return nil
	}
	row := s.rows[index]
	s.rows = append(s.rows[:index:index], s.rows[index+1:]...)
	return row
}

// Header returns the header descriptor, or nil
func (s *SectionFormer) Header() ViewFormer {
	return s.header
}

// SetHeader sets the header descriptor
func (s *SectionFormer) SetHeader(vf ViewFormer) *SectionFormer {
	s.header = vf
	return s
}

// Footer returns the footer descriptor, or nil
func (s *SectionFormer) Footer() ViewFormer {
	return s.footer
}

// SetFooter sets the footer descriptor
func (s *SectionFormer) SetFooter(vf ViewFormer) *SectionFormer {
	s.footer = vf
	return s
}

func containsRow(rows []RowFormer, row RowFormer) bool {
	for _, r := range rows {
		if r == row {
			return true
		}
	}
	return false
}
