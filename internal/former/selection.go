package former

import (
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/model"
)

// WillSelectRow implements DataSource. It ends editing, clears the visual selection
// and records path as the selected row. Selection is never vetoed.
func (f *Former) WillSelectRow(path model.IndexPath) model.IndexPath {
	f.EndEditing()
	f.Deselect(false)
	if row := f.RowFormer(path); row != nil {
		f.selected = path
		f.selectedRow = row
		f.hasSelected = true
	}
	return path
}

// DidSelectRow implements DataSource. Disabled rows are ignored; otherwise the row is
// activated and its inline companion is shown or hidden.
func (f *Former) DidSelectRow(path model.IndexPath) {
	row := f.RowFormer(path)
	if row == nil || !row.Enabled() {
		return
	}

	row.CellSelected(path)
	if f.OnCellSelected != nil {
		f.OnCellSelected(path)
	}

	inline := row.AsInline()
	var companion RowFormer
	if inline != nil {
		companion = inline.InlineRowFormer()
	}

	if f.inlineRow != nil {
		if companion != nil && row != f.inlineRow {
			f.switchInlineRow(row, path, companion)
		} else {
			f.removeCurrentInlineRowAndUpdate()
		}
		return
	}

	if companion != nil {
		f.log.WithFields(logrus.Fields{
			"section": path.Section,
			"row":     path.Row,
			"owner":   row.ID(),
		}).Debug("Expanding inline row")
		f.InsertRowsAndUpdate([]RowFormer{companion}, path.Next(), f.inlineAnimation)
		f.inlineRow = row
		inline.EditingDidBegin()
	}
}

// Select selects the row at path in the table and runs the selection callbacks as
// if the user had tapped it
func (f *Former) Select(path model.IndexPath, animated bool, position model.ScrollPosition) *Former {
	if f.table == nil || f.RowFormer(path) == nil {
		return f
	}
	f.table.SelectRow(path, animated, position)
	f.WillSelectRow(path)
	f.DidSelectRow(path)
	return f
}

// SelectRowFormer selects the first occurrence of row
func (f *Former) SelectRowFormer(row RowFormer, animated bool, position model.ScrollPosition) *Former {
	if path, ok := f.IndexPathOf(row); ok {
		return f.Select(path, animated, position)
	}
	return f
}

// Deselect clears the table's visual selection. The engine keeps the selected
// address for editing traversal.
func (f *Former) Deselect(animated bool) *Former {
	if f.table != nil && f.hasSelected {
		f.table.DeselectRow(f.selected, animated)
	}
	return f
}

// CanBecomeEditingPrevious returns true if the row before the selection accepts editing
func (f *Former) CanBecomeEditingPrevious() bool {
	path, ok := f.previousPath()
	return ok && f.RowFormer(path).CanBecomeEditing()
}

// CanBecomeEditingNext returns true if the row after the selection accepts editing
func (f *Former) CanBecomeEditingNext() bool {
	path, ok := f.nextPath()
	return ok && f.RowFormer(path).CanBecomeEditing()
}

// BecomeEditingPrevious selects the previous row if it accepts editing
func (f *Former) BecomeEditingPrevious() bool {
	if f.table == nil || !f.CanBecomeEditingPrevious() {
		return false
	}
	path, _ := f.previousPath()
	f.becomeEditing(path)
	return true
}

// BecomeEditingNext selects the next row if it accepts editing
func (f *Former) BecomeEditingNext() bool {
	if f.table == nil || !f.CanBecomeEditingNext() {
		return false
	}
	path, _ := f.nextPath()
	f.becomeEditing(path)
	return true
}

// becomeEditing selects path and scrolls to it. When the row now shows its inline
// companion the table is scrolled to the row after it.
func (f *Former) becomeEditing(path model.IndexPath) {
	row := f.RowFormer(path)
	f.Select(path, false, model.ScrollPositionNone)
	target := path
	if current, ok := f.IndexPathOf(row); ok {
		target = current
	}
	if row == f.inlineRow {
		target = target.Next()
	}
	f.table.ScrollToRow(target, model.ScrollPositionNone, false)
}

// previousPath returns the row before the selection, crossing section boundaries.
// Without a selection it returns the first row of the form.
func (f *Former) previousPath() (model.IndexPath, bool) {
	if !f.hasSelected {
		return f.firstPath()
	}
	section, row := f.selected.Section, f.selected.Row-1
	if section >= len(f.sections) {
		return model.IndexPath{}, false
	}
	for row < 0 {
		section--
		if section < 0 {
			return model.IndexPath{}, false
		}
		row = f.sections[section].NumberOfRows() - 1
	}
	return model.NewIndexPath(row, section), true
}

// nextPath returns the row after the selection, crossing section boundaries.
// Without a selection it returns the first row of the form.
func (f *Former) nextPath() (model.IndexPath, bool) {
	if !f.hasSelected {
		return f.firstPath()
	}
	section, row := f.selected.Section, f.selected.Row+1
	if section >= len(f.sections) {
		return model.IndexPath{}, false
	}
	for row >= f.sections[section].NumberOfRows() {
		section++
		if section >= len(f.sections) {
			return model.IndexPath{}, false
		}
		row = 0
	}
	return model.NewIndexPath(row, section), true
}

func (f *Former) firstPath() (model.IndexPath, bool) {
	for s, section := range f.sections {
		if section.NumberOfRows() > 0 {
			return model.NewIndexPath(0, s), true
		}
	}
	return model.IndexPath{}, false
}

// expandedCompanion returns the companion of the expanded row, or nil
func (f *Former) expandedCompanion() RowFormer {
	if f.inlineRow == nil {
		return nil
	}
	inline := f.inlineRow.AsInline()
	if inline == nil {
		return nil
	}
	return inline.InlineRowFormer()
}

// switchInlineRow moves the expansion from the current owner to row in one batch
func (f *Former) switchInlineRow(row RowFormer, path model.IndexPath, companion RowFormer) {
	old := f.inlineRow
	oldCompanion := f.expandedCompanion()

	f.beginUpdates()
	insertAt := path.Next()
	if removed, ok := f.IndexPathOf(oldCompanion); ok {
		f.sections[removed.Section].RemoveAt(removed.Row)
		if removed.Section == path.Section && removed.Row < path.Row {
			insertAt = path
		}
		f.InsertRows([]RowFormer{companion}, insertAt)
		if f.table != nil {
			f.table.DeleteRows([]model.IndexPath{removed}, f.inlineAnimation)
			f.table.InsertRows([]model.IndexPath{insertAt}, f.inlineAnimation)
		}
		f.log.WithFields(logrus.Fields{
			"removed":  removed.String(),
			"inserted": insertAt.String(),
		}).Debug("Moving inline row")
	} else {
		f.InsertRows([]RowFormer{companion}, insertAt)
		if f.table != nil {
			f.table.InsertRows([]model.IndexPath{insertAt}, f.inlineAnimation)
		}
	}
	f.endUpdates()

	if inline := old.AsInline(); inline != nil {
		inline.EditingDidEnd()
	}
	f.inlineRow = row
	row.AsInline().EditingDidBegin()
}

// removeCurrentInlineRow takes the expanded companion out of the tree and ends
// the owner's editing. It returns the companion's former address.
func (f *Former) removeCurrentInlineRow() (model.IndexPath, bool) {
	owner := f.inlineRow
	if owner == nil {
		return model.IndexPath{}, false
	}
	companion := f.expandedCompanion()
	path, ok := f.IndexPathOf(companion)
	if ok {
		f.sections[path.Section].RemoveAt(path.Row)
		f.syncSelection()
	}
	f.inlineRow = nil
	if inline := owner.AsInline(); inline != nil {
		inline.EditingDidEnd()
	}
	return path, ok
}

// removeCurrentInlineRowAndUpdate collapses the expanded row in its own batch
func (f *Former) removeCurrentInlineRowAndUpdate() {
	if f.inlineRow == nil {
		return
	}
	if _, ok := f.IndexPathOf(f.expandedCompanion()); !ok || f.table == nil {
		f.removeCurrentInlineRow()
		return
	}
	f.table.BeginUpdates()
	path, _ := f.removeCurrentInlineRow()
	f.log.WithFields(logrus.Fields{
		"section": path.Section,
		"row":     path.Row,
	}).Debug("Collapsing inline row")
	f.table.DeleteRows([]model.IndexPath{path}, f.inlineAnimation)
	f.table.EndUpdates()
}

// syncSelection re-derives the selected address from the selected row after a
// mutation and drops the selection when the row is gone
func (f *Former) syncSelection() {
	if !f.hasSelected {
		return
	}
	path, ok := f.IndexPathOf(f.selectedRow)
	if !ok {
		f.clearSelection()
		return
	}
	f.selected = path
}

func (f *Former) clearSelection() {
	f.selected = model.IndexPath{}
	f.selectedRow = nil
	f.hasSelected = false
}
