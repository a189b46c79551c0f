package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// IndexPath addresses one row of a sectioned list. Both components are positions
// and stop being meaningful as soon as the list is mutated.
type IndexPath struct {
	Section int
	Row     int
}

// NewIndexPath creates an IndexPath for row in section
func NewIndexPath(row, section int) IndexPath {
	return IndexPath{Section: section, Row: row}
}

// String returns the path formatted as "section:row"
func (ip IndexPath) String() string {
	return fmt.Sprintf("%d:%d", ip.Section, ip.Row)
}

// Less orders paths by section, then row
func (ip IndexPath) Less(other IndexPath) bool {
	if ip.Section != other.Section {
		return ip.Section < other.Section
	}
	return ip.Row < other.Row
}

// Next returns the path of the following row in the same section
func (ip IndexPath) Next() IndexPath {
	return IndexPath{Section: ip.Section, Row: ip.Row + 1}
}

// FormatIndexPaths joins paths with commas, used in logs and traces
func FormatIndexPaths(paths []IndexPath) string {
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ",")
}

// IndexSet is a sorted set of unique non-negative indices
type IndexSet struct {
	indices []int
}

// NewIndexSet creates a set holding the given indices
func NewIndexSet(indices ...int) IndexSet {
	var s IndexSet
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// IndexSetInRange creates the set [start, start+count)
func IndexSetInRange(start, count int) IndexSet {
	var s IndexSet
	for i := 0; i < count; i++ {
		s.indices = append(s.indices, start+i)
	}
	return s
}

// Add inserts index, keeping the set sorted. Negative indices are ignored.
func (s *IndexSet) Add(index int) {
	if index < 0 {
		return
	}
	pos := sort.SearchInts(s.indices, index)
	if pos < len(s.indices) && s.indices[pos] == index {
		return
	}
	s.indices = append(s.indices, 0)
	copy(s.indices[pos+1:], s.indices[pos:])
	s.indices[pos] = index
}

// Contains returns true if index is in the set
func (s IndexSet) Contains(index int) bool {
	pos := sort.SearchInts(s.indices, index)
	return pos < len(s.indices) && s.indices[pos] == index
}

// Len returns the number of indices in the set
func (s IndexSet) Len() int {
	return len(s.indices)
}

// IsEmpty returns true if the set holds no index
func (s IndexSet) IsEmpty() bool {
	return len(s.indices) == 0
}

// Indices returns a copy of the indices in ascending order
func (s IndexSet) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// String returns the indices joined with commas
func (s IndexSet) String() string {
	parts := make([]string, 0, len(s.indices))
	for _, i := range s.indices {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, ",")
}
