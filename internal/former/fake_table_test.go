package former

import (
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/ytget/former/internal/model"
)

// recorder collects a trace of table operations and row hooks
type recorder struct {
	lines []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() {
	r.lines = nil
}

func (r *recorder) bytes() []byte {
	return []byte(strings.Join(r.lines, "\n") + "\n")
}

type fakeView struct {
	name      string
	focused   bool
	subviews  []View
	superview View
}

func (v *fakeView) IsFirstResponder() bool { return v.focused }
func (v *fakeView) Subviews() []View       { return v.subviews }
func (v *fakeView) Superview() View        { return v.superview }

func addSubview(parent interface {
	View
	appendSubview(View)
}, child *fakeView) {
	child.superview = parent
	parent.appendSubview(child)
}

func (v *fakeView) appendSubview(child View) { v.subviews = append(v.subviews, child) }

type fakeCell struct {
	fakeView
	row      RowFormer
	attached int
}

func newFakeCell(name string) *fakeCell {
	return &fakeCell{fakeView: fakeView{name: name}}
}

func (c *fakeCell) SetRowFormer(row RowFormer) {
	c.row = row
	c.attached++
}

type fakeHeaderView struct {
	fakeView
	former ViewFormer
}

func (h *fakeHeaderView) SetViewFormer(vf ViewFormer) { h.former = vf }

// fakeTable is a recording TableView. It mirrors the row counts the host would
// display and checks them against the data source when a batch ends.
type fakeTable struct {
	fakeView
	t     *testing.T
	trace *recorder

	ds     DataSource
	counts []int
	depth  int

	pendingDeletedSections  []int
	pendingInsertedSections []int
	pendingDeletedRows      []model.IndexPath
	pendingInsertedRows     []model.IndexPath

	frame     model.Rect
	window    model.Rect
	content   model.Insets
	indicator model.Insets
	cells     map[Cell]model.IndexPath
}

func newFakeTable(t *testing.T, trace *recorder) *fakeTable {
	return &fakeTable{
		fakeView: fakeView{name: "table"},
		t:        t,
		trace:    trace,
		frame:    model.NewRect(0, 0, 320, 480),
		cells:    make(map[Cell]model.IndexPath),
	}
}

func (ft *fakeTable) appendSubview(child View) { ft.subviews = append(ft.subviews, child) }

// mount asks the data source for the cell at path and places it in the view tree
func (ft *fakeTable) mount(path model.IndexPath) Cell {
	cell := ft.ds.CellForRow(path)
	if fc, ok := cell.(*fakeCell); ok {
		fc.superview = ft
		ft.subviews = append(ft.subviews, fc)
	}
	ft.cells[cell] = path
	return cell
}

func (ft *fakeTable) snapshot() []int {
	if ft.ds == nil {
		return nil
	}
	counts := make([]int, ft.ds.SectionCount())
	for s := range counts {
		counts[s] = ft.ds.RowCount(s)
	}
	return counts
}

func (ft *fakeTable) SetDataSource(ds DataSource) {
	ft.ds = ds
	ft.counts = ft.snapshot()
}

func (ft *fakeTable) ReloadData() {
	ft.trace.add("reload-data")
	ft.counts = ft.snapshot()
}

func (ft *fakeTable) BeginUpdates() {
	ft.trace.add("begin")
	ft.depth++
}

func (ft *fakeTable) EndUpdates() {
	ft.trace.add("end")
	ft.depth--
	if ft.depth == 0 {
		ft.apply()
	}
}

// apply replays the pending batch on the mirrored counts: deletions use addresses
// from before the batch, insertions addresses from after it
func (ft *fakeTable) apply() {
	counts := append([]int(nil), ft.counts...)
	for _, p := range ft.pendingDeletedRows {
		if p.Section >= len(counts) || counts[p.Section] <= p.Row {
			ft.t.Errorf("delete of missing row %s", p)
			continue
		}
		counts[p.Section]--
	}
	deleted := append([]int(nil), ft.pendingDeletedSections...)
	sort.Sort(sort.Reverse(sort.IntSlice(deleted)))
	for _, s := range deleted {
		if s >= len(counts) {
			ft.t.Errorf("delete of missing section %d", s)
			continue
		}
		counts = append(counts[:s:s], counts[s+1:]...)
	}
	inserted := append([]int(nil), ft.pendingInsertedSections...)
	sort.Ints(inserted)
	for _, s := range inserted {
		if s > len(counts) {
			ft.t.Errorf("insert of section %d beyond %d", s, len(counts))
			continue
		}
		counts = append(counts[:s:s], append([]int{ft.ds.RowCount(s)}, counts[s:]...)...)
	}
	for _, p := range ft.pendingInsertedRows {
		if p.Section >= len(counts) {
			ft.t.Errorf("insert into missing section %s", p)
			continue
		}
		counts[p.Section]++
	}
	ft.pendingDeletedRows = nil
	ft.pendingDeletedSections = nil
	ft.pendingInsertedRows = nil
	ft.pendingInsertedSections = nil

	if want := ft.snapshot(); fmt.Sprint(want) != fmt.Sprint(counts) {
		ft.t.Errorf("table shows %v after batch, data source has %v", counts, want)
	}
	ft.counts = counts
}

func (ft *fakeTable) immediate() {
	if ft.depth == 0 {
		ft.apply()
	}
}

func (ft *fakeTable) InsertSections(sections model.IndexSet, animation model.RowAnimation) {
	ft.trace.add("insert-sections [%s] %s", sections, animation)
	ft.pendingInsertedSections = append(ft.pendingInsertedSections, sections.Indices()...)
	ft.immediate()
}

func (ft *fakeTable) DeleteSections(sections model.IndexSet, animation model.RowAnimation) {
	ft.trace.add("delete-sections [%s] %s", sections, animation)
	ft.pendingDeletedSections = append(ft.pendingDeletedSections, sections.Indices()...)
	ft.immediate()
}

func (ft *fakeTable) ReloadSections(sections model.IndexSet, animation model.RowAnimation) {
	ft.trace.add("reload-sections [%s] %s", sections, animation)
}

func (ft *fakeTable) InsertRows(paths []model.IndexPath, animation model.RowAnimation) {
	ft.trace.add("insert-rows [%s] %s", model.FormatIndexPaths(paths), animation)
	ft.pendingInsertedRows = append(ft.pendingInsertedRows, paths...)
	ft.immediate()
}

func (ft *fakeTable) DeleteRows(paths []model.IndexPath, animation model.RowAnimation) {
	ft.trace.add("delete-rows [%s] %s", model.FormatIndexPaths(paths), animation)
	ft.pendingDeletedRows = append(ft.pendingDeletedRows, paths...)
	ft.immediate()
}

func (ft *fakeTable) ReloadRows(paths []model.IndexPath, animation model.RowAnimation) {
	ft.trace.add("reload-rows [%s] %s", model.FormatIndexPaths(paths), animation)
}

func (ft *fakeTable) SelectRow(path model.IndexPath, animated bool, position model.ScrollPosition) {
	ft.trace.add("select %s animated=%t position=%s", path, animated, position)
}

func (ft *fakeTable) DeselectRow(path model.IndexPath, animated bool) {
	ft.trace.add("deselect %s animated=%t", path, animated)
}

func (ft *fakeTable) ScrollToRow(path model.IndexPath, position model.ScrollPosition, animated bool) {
	ft.trace.add("scroll %s position=%s animated=%t", path, position, animated)
}

func (ft *fakeTable) IndexPathForCell(cell Cell) (model.IndexPath, bool) {
	path, ok := ft.cells[cell]
	return path, ok
}

func (ft *fakeTable) EndEditing() {
	ft.trace.add("end-editing")
}

func (ft *fakeTable) Frame() model.Rect { return ft.frame }

// ConvertRectFromWindow treats the window as offset by ft.window's origin
func (ft *fakeTable) ConvertRectFromWindow(r model.Rect) model.Rect {
	return r.Offset(-ft.window.X, -ft.window.Y)
}

func (ft *fakeTable) ContentInset() model.Insets { return ft.content }

func (ft *fakeTable) SetContentInset(insets model.Insets) {
	ft.trace.add("content-inset bottom=%g", insets.Bottom)
	ft.content = insets
}

func (ft *fakeTable) ScrollIndicatorInsets() model.Insets { return ft.indicator }

func (ft *fakeTable) SetScrollIndicatorInsets(insets model.Insets) {
	ft.trace.add("indicator-inset bottom=%g", insets.Bottom)
	ft.indicator = insets
}

func (ft *fakeTable) Animate(duration time.Duration, curve model.AnimationCurve, changes func()) {
	ft.trace.add("animate %s %s", duration, curve)
	changes()
}

// testRow is a configurable row used across the engine tests
type testRow struct {
	BaseRowFormer
	name       string
	trace      *recorder
	editable   bool
	companion  RowFormer
	valid      *bool
	configured int
}

func newTestRow(name string, trace *recorder) *testRow {
	r := &testRow{name: name, trace: trace}
	r.ExtendRowFormer(r)
	r.SetCellFactory(func() Cell { return newFakeCell(name) })
	r.SetOnSelected(func(path model.IndexPath) {
		trace.add("selected %s %s", name, path)
	})
	return r
}

func (r *testRow) CanBecomeEditing() bool { return r.editable }

func (r *testRow) CellConfigure() { r.configured++ }

func (r *testRow) AsInline() InlineRow {
	if r.companion == nil {
		return nil
	}
	return r
}

func (r *testRow) InlineRowFormer() RowFormer { return r.companion }

func (r *testRow) EditingDidBegin() { r.trace.add("editing-began %s", r.name) }

func (r *testRow) EditingDidEnd() { r.trace.add("editing-ended %s", r.name) }

func (r *testRow) AsValidatable() Validatable {
	if r.valid == nil {
		return nil
	}
	return r
}

func (r *testRow) Validate() bool { return *r.valid }

// names lists the rows of each section, used to compare tree shapes
func names(f *Former) [][]string {
	out := make([][]string, 0, f.NumberOfSections())
	for _, s := range f.SectionFormers() {
		section := []string{}
		for _, row := range s.RowFormers() {
			section = append(section, row.(*testRow).name)
		}
		out = append(out, section)
	}
	return out
}
