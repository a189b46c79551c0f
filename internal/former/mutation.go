package former

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/model"
)

// Add appends sections without updating the table
func (f *Former) Add(sections ...*SectionFormer) *Former {
	sections = compactSections(sections)
	f.sections = append(f.sections, sections...)
	f.adoptSections(sections)
	return f
}

// AddAndUpdate appends sections and inserts them into the table
func (f *Former) AddAndUpdate(animation model.RowAnimation, sections ...*SectionFormer) *Former {
	sections = compactSections(sections)
	if len(sections) == 0 {
		return f
	}
	f.removeCurrentInlineRowAndUpdate()
	start := len(f.sections)
	f.beginUpdates()
	f.Add(sections...)
	f.insertSections(model.IndexSetInRange(start, len(sections)), animation)
	f.endUpdates()
	return f
}

// Insert places sections at toSection without updating the table.
// toSection >= NumberOfSections appends and toSection <= 0 prepends.
func (f *Former) Insert(sections []*SectionFormer, toSection int) *Former {
	sections = compactSections(sections)
	switch {
	case toSection >= len(f.sections):
		return f.Add(sections...)
	case toSection <= 0:
		f.sections = append(append([]*SectionFormer(nil), sections...), f.sections...)
	default:
		merged := make([]*SectionFormer, 0, len(f.sections)+len(sections))
		merged = append(merged, f.sections[:toSection]...)
		merged = append(merged, sections...)
		merged = append(merged, f.sections[toSection:]...)
		f.sections = merged
	}
	f.adoptSections(sections)
	f.syncSelection()
	return f
}

// InsertAndUpdate inserts sections at toSection and into the table
func (f *Former) InsertAndUpdate(sections []*SectionFormer, toSection int, animation model.RowAnimation) *Former {
	sections = compactSections(sections)
	if len(sections) == 0 {
		return f
	}
	f.removeCurrentInlineRowAndUpdate()
	at := clamp(toSection, 0, len(f.sections))
	f.beginUpdates()
	f.Insert(sections, at)
	f.insertSections(model.IndexSetInRange(at, len(sections)), animation)
	f.endUpdates()
	return f
}

// InsertRows places rows at toIndexPath without updating the table. An unknown
// section is ignored.
func (f *Former) InsertRows(rows []RowFormer, toIndexPath model.IndexPath) *Former {
	section := f.Section(toIndexPath.Section)
	if section == nil || len(rows) == 0 {
		return f
	}
	section.Insert(rows, toIndexPath.Row)
	for _, row := range rows {
		f.adopt(row)
	}
	f.syncSelection()
	return f
}

// InsertRowsAndUpdate inserts rows at toIndexPath and into the table
func (f *Former) InsertRowsAndUpdate(rows []RowFormer, toIndexPath model.IndexPath, animation model.RowAnimation) *Former {
	f.removeCurrentInlineRowAndUpdate()
	section := f.Section(toIndexPath.Section)
	if section == nil || len(rows) == 0 {
		return f
	}
	at := clamp(toIndexPath.Row, 0, section.NumberOfRows())
	paths := make([]model.IndexPath, 0, len(rows))
	for i := range rows {
		paths = append(paths, model.NewIndexPath(at+i, toIndexPath.Section))
	}
	f.beginUpdates()
	f.InsertRows(rows, model.NewIndexPath(at, toIndexPath.Section))
	f.insertRows(paths, animation)
	f.endUpdates()
	return f
}

// RemoveAll removes every section without updating the table
func (f *Former) RemoveAll() *Former {
	if f.inlineRow != nil {
		f.endExpansion()
	}
	f.sections = nil
	f.clearSelection()
	return f
}

// RemoveAllAndUpdate removes every section and deletes them from the table
func (f *Former) RemoveAllAndUpdate(animation model.RowAnimation) *Former {
	f.removeCurrentInlineRowAndUpdate()
	count := len(f.sections)
	if count == 0 {
		return f
	}
	f.beginUpdates()
	f.RemoveAll()
	f.deleteSections(model.IndexSetInRange(0, count), animation)
	f.endUpdates()
	return f
}

// RemoveSection removes the section at index without updating the table
func (f *Former) RemoveSection(index int) *Former {
	if index < 0 || index >= len(f.sections) {
		return f
	}
	f.endExpansionIn(f.sections[index])
	f.sections = append(f.sections[:index:index], f.sections[index+1:]...)
	f.syncSelection()
	return f
}

// RemoveSectionAndUpdate removes the section at index and deletes it from the table
func (f *Former) RemoveSectionAndUpdate(index int, animation model.RowAnimation) *Former {
	f.removeCurrentInlineRowAndUpdate()
	if index < 0 || index >= len(f.sections) {
		return f
	}
	f.beginUpdates()
	f.RemoveSection(index)
	f.deleteSections(model.NewIndexSet(index), animation)
	f.endUpdates()
	return f
}

// RemoveSections removes the given sections without updating the table and
// returns their positions before removal
func (f *Former) RemoveSections(sections ...*SectionFormer) model.IndexSet {
	var removed model.IndexSet
	requested := countDistinctSections(sections)
	if requested == 0 {
		return removed
	}
	kept := make([]*SectionFormer, 0, len(f.sections))
	for i, s := range f.sections {
		if removed.Len() < requested && containsSection(sections, s) {
			removed.Add(i)
			f.endExpansionIn(s)
			continue
		}
		kept = append(kept, s)
	}
	f.sections = kept
	f.syncSelection()
	return removed
}

// RemoveSectionsAndUpdate removes the given sections and deletes them from the table
func (f *Former) RemoveSectionsAndUpdate(animation model.RowAnimation, sections ...*SectionFormer) *Former {
	f.removeCurrentInlineRowAndUpdate()
	f.beginUpdates()
	removed := f.RemoveSections(sections...)
	if !removed.IsEmpty() {
		f.deleteSections(removed, animation)
	}
	f.endUpdates()
	return f
}

// RemoveRows removes the given rows without updating the table and returns their
// addresses before removal in tree order. Removing the expanded row also removes
// its companion, whose address directly follows the owner's.
func (f *Former) RemoveRows(rows ...RowFormer) []model.IndexPath {
	requested := countDistinctRows(rows)
	if requested == 0 {
		return nil
	}
	owner := f.inlineRow
	companion := f.expandedCompanion()
	collapse := false

	var paths []model.IndexPath
	seen := make(map[model.IndexPath]bool)
	found := 0
scan:
	for s, section := range f.sections {
		for r, row := range section.rows {
			if !containsRow(rows, row) {
				continue
			}
			path := model.NewIndexPath(r, s)
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
			switch row {
			case owner:
				if companion != nil && section.Row(r+1) == companion {
					next := path.Next()
					if !seen[next] {
						seen[next] = true
						paths = append(paths, next)
					}
				}
				collapse = true
			case companion:
				collapse = owner != nil
			}
			found++
			if found >= requested {
				break scan
			}
		}
	}

	f.removePaths(paths)
	if collapse {
		f.endExpansion()
	}
	f.syncSelection()
	return paths
}

// RemoveRowsAndUpdate removes the given rows and deletes them from the table
func (f *Former) RemoveRowsAndUpdate(animation model.RowAnimation, rows ...RowFormer) *Former {
	f.removeCurrentInlineRowAndUpdate()
	f.beginUpdates()
	paths := f.RemoveRows(rows...)
	if len(paths) > 0 {
		f.deleteRows(paths, animation)
	}
	f.endUpdates()
	return f
}

// ReloadFormer collapses the expanded row and reloads the whole table
func (f *Former) ReloadFormer() *Former {
	f.removeCurrentInlineRowAndUpdate()
	if f.table != nil {
		f.log.Debug("Reloading table")
		f.table.ReloadData()
	}
	return f
}

// ReloadSections reloads the given sections. Indices outside the form are dropped.
func (f *Former) ReloadSections(sections model.IndexSet, animation model.RowAnimation) *Former {
	var valid model.IndexSet
	for _, i := range sections.Indices() {
		if i < len(f.sections) {
			valid.Add(i)
		}
	}
	if valid.IsEmpty() || f.table == nil {
		return f
	}
	f.beginUpdates()
	f.log.WithFields(logrus.Fields{
		"sections":  valid.String(),
		"animation": animation,
	}).Debug("Reloading sections")
	f.table.ReloadSections(valid, animation)
	f.endUpdates()
	return f
}

// ReloadSectionFormer reloads the first occurrence of section
func (f *Former) ReloadSectionFormer(section *SectionFormer, animation model.RowAnimation) *Former {
	if i := f.SectionIndex(section); i >= 0 {
		return f.ReloadSections(model.NewIndexSet(i), animation)
	}
	return f
}

// ReloadRows reloads the rows at paths. Addresses outside the form are dropped.
func (f *Former) ReloadRows(paths []model.IndexPath, animation model.RowAnimation) *Former {
	valid := make([]model.IndexPath, 0, len(paths))
	for _, p := range paths {
		if f.RowFormer(p) != nil {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 || f.table == nil {
		return f
	}
	f.beginUpdates()
	f.log.WithFields(logrus.Fields{
		"rows":      model.FormatIndexPaths(valid),
		"animation": animation,
	}).Debug("Reloading rows")
	f.table.ReloadRows(valid, animation)
	f.endUpdates()
	return f
}

// ReloadRowFormer reloads the first occurrence of row
func (f *Former) ReloadRowFormer(row RowFormer, animation model.RowAnimation) *Former {
	if path, ok := f.IndexPathOf(row); ok {
		return f.ReloadRows([]model.IndexPath{path}, animation)
	}
	return f
}

// endExpansion fires EditingDidEnd on the expanded row and forgets it
func (f *Former) endExpansion() {
	owner := f.inlineRow
	f.inlineRow = nil
	if owner == nil {
		return
	}
	if inline := owner.AsInline(); inline != nil {
		inline.EditingDidEnd()
	}
}

// endExpansionIn ends the expansion if its owner lives in section
func (f *Former) endExpansionIn(section *SectionFormer) {
	if f.inlineRow != nil && section.Index(f.inlineRow) >= 0 {
		f.endExpansion()
	}
}

// removePaths removes rows by address, highest address first
func (f *Former) removePaths(paths []model.IndexPath) {
	sorted := append([]model.IndexPath(nil), paths...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[j].Less(sorted[i]) })
	for _, p := range sorted {
		if s := f.Section(p.Section); s != nil {
			s.RemoveAt(p.Row)
		}
	}
}

func (f *Former) beginUpdates() {
	if f.table != nil {
		f.table.BeginUpdates()
	}
}

func (f *Former) endUpdates() {
	if f.table != nil {
		f.table.EndUpdates()
	}
}

func (f *Former) insertSections(sections model.IndexSet, animation model.RowAnimation) {
	if f.table == nil {
		return
	}
	f.log.WithFields(logrus.Fields{
		"sections":  sections.String(),
		"count":     sections.Len(),
		"animation": animation,
	}).Debug("Inserting sections")
	f.table.InsertSections(sections, animation)
}

func (f *Former) deleteSections(sections model.IndexSet, animation model.RowAnimation) {
	if f.table == nil {
		return
	}
	f.log.WithFields(logrus.Fields{
		"sections":  sections.String(),
		"count":     sections.Len(),
		"animation": animation,
	}).Debug("Deleting sections")
	f.table.DeleteSections(sections, animation)
}

func (f *Former) insertRows(paths []model.IndexPath, animation model.RowAnimation) {
	if f.table == nil {
		return
	}
	f.log.WithFields(logrus.Fields{
		"rows":      model.FormatIndexPaths(paths),
		"count":     len(paths),
		"animation": animation,
	}).Debug("Inserting rows")
	f.table.InsertRows(paths, animation)
}

func (f *Former) deleteRows(paths []model.IndexPath, animation model.RowAnimation) {
	if f.table == nil {
		return
	}
	f.log.WithFields(logrus.Fields{
		"rows":      model.FormatIndexPaths(paths),
		"count":     len(paths),
		"animation": animation,
	}).Debug("Deleting rows")
	f.table.DeleteRows(paths, animation)
}

func compactSections(sections []*SectionFormer) []*SectionFormer {
	out := make([]*SectionFormer, 0, len(sections))
	for _, s := range sections {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func containsSection(sections []*SectionFormer, section *SectionFormer) bool {
	for _, s := range sections {
		if s == section {
			return true
		}
	}
	return false
}

func countDistinctSections(sections []*SectionFormer) int {
	seen := make(map[*SectionFormer]bool, len(sections))
	for _, s := range sections {
		if s != nil {
			seen[s] = true
		}
	}
	return len(seen)
}

func countDistinctRows(rows []RowFormer) int {
	seen := make(map[RowFormer]bool, len(rows))
	for _, r := range rows {
		if r != nil {
			seen[r] = true
		}
	}
	return len(seen)
}
