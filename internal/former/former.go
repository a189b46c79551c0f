package former

import (
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/model"
)

// Former owns the section tree of one form and keeps a TableView in sync with it.
// All methods must be called from the host's UI goroutine.
type Former struct {
	sections []*SectionFormer
	table    TableView

	// inlineRow is the row currently showing its companion. Not owned.
	inlineRow   RowFormer
	selected    model.IndexPath
	selectedRow RowFormer
	hasSelected bool

	oldBottomInset *float32

	// OnCellSelected is called after an enabled row was activated
	OnCellSelected func(path model.IndexPath)
	// OnScroll is called whenever the table scrolls
	OnScroll func()
	// OnBeginDragging is called when the user starts dragging the table
	OnBeginDragging func()

	log               *logrus.Entry
	keyboard          *KeyboardCenter
	keyboardAvoidance bool
	inlineAnimation   model.RowAnimation
	rowAnimation      model.RowAnimation
	cancels           []func()
}

// Option configures a Former
type Option func(f *Former)

// WithLogger sets the log entry used by the engine
func WithLogger(entry *logrus.Entry) Option {
	return func(f *Former) {
		if entry != nil {
			f.log = entry
		}
	}
}

// WithKeyboard subscribes the engine to keyboard events posted to center
func WithKeyboard(center *KeyboardCenter) Option {
	return func(f *Former) {
		f.keyboard = center
	}
}

// WithKeyboardAvoidance enables or disables the keyboard inset adjustment
func WithKeyboardAvoidance(enabled bool) Option {
	return func(f *Former) {
		f.keyboardAvoidance = enabled
	}
}

// WithInlineAnimation sets the animation used to show and hide inline companions
func WithInlineAnimation(animation model.RowAnimation) Option {
	return func(f *Former) {
		if animation.IsValid() {
			f.inlineAnimation = animation
		}
	}
}

// WithRowAnimation sets the animation returned by RowAnimation, for callers that
// want one application-wide style for their mutations
func WithRowAnimation(animation model.RowAnimation) Option {
	return func(f *Former) {
		if animation.IsValid() {
			f.rowAnimation = animation
		}
	}
}

// New creates an engine driving table and installs it as the table's data source
func New(table TableView, opts ...Option) *Former {
	f := &Former{
		table:             table,
		log:               defaultLogger(),
		keyboardAvoidance: true,
		inlineAnimation:   model.RowAnimationMiddle,
		rowAnimation:      model.RowAnimationNone,
	}
	for _, opt := range opts {
		opt(f)
	}
	if table != nil {
		table.SetDataSource(f)
	}
	if f.keyboard != nil && f.keyboardAvoidance {
		f.cancels = append(f.cancels, f.keyboard.Subscribe(f.keyboardWillShow, f.keyboardWillHide))
	}
	return f
}

// Dispose detaches the engine from its table and keyboard events
func (f *Former) Dispose() {
	for _, cancel := range f.cancels {
		cancel()
	}
	f.cancels = nil
	if f.table != nil {
		f.table.SetDataSource(nil)
	}
	f.table = nil
	f.inlineRow = nil
	f.clearSelection()
}

// RowAnimation returns the configured default mutation animation
func (f *Former) RowAnimation() model.RowAnimation {
	return f.rowAnimation
}

// InlineAnimation returns the animation used for inline companions
func (f *Former) InlineAnimation() model.RowAnimation {
	return f.inlineAnimation
}

// Logger returns the engine's log entry
func (f *Former) Logger() *logrus.Entry {
	return f.log
}

// Section returns the section at index, or nil
func (f *Former) Section(index int) *SectionFormer {
	if index < 0 || index >= len(f.sections) {
		return nil
	}
	return f.sections[index]
}

// Sections returns the sections in [lo, hi), clamped to the available range
func (f *Former) Sections(lo, hi int) []*SectionFormer {
	lo = clamp(lo, 0, len(f.sections))
	hi = clamp(hi, lo, len(f.sections))
	return append([]*SectionFormer(nil), f.sections[lo:hi]...)
}

// SectionFormers returns a copy of all sections
func (f *Former) SectionFormers() []*SectionFormer {
	return append([]*SectionFormer(nil), f.sections...)
}

// RowFormers returns every row of the form in tree order
func (f *Former) RowFormers() []RowFormer {
	var rows []RowFormer
	for _, s := range f.sections {
		rows = append(rows, s.rows...)
	}
	return rows
}

// NumberOfSections returns the number of sections
func (f *Former) NumberOfSections() int {
	return len(f.sections)
}

// NumberOfRows returns the number of rows across all sections
func (f *Former) NumberOfRows() int {
	n := 0
	for _, s := range f.sections {
		n += len(s.rows)
	}
	return n
}

// RowFormer returns the row at path, or nil
func (f *Former) RowFormer(path model.IndexPath) RowFormer {
	s := f.Section(path.Section)
	if s == nil {
		return nil
	}
	return s.Row(path.Row)
}

// IndexPathOf returns the address of the first occurrence of row
func (f *Former) IndexPathOf(row RowFormer) (model.IndexPath, bool) {
	if row == nil {
		return model.IndexPath{}, false
	}
	for s, section := range f.sections {
		if r := section.Index(row); r >= 0 {
			return model.NewIndexPath(r, s), true
		}
	}
	return model.IndexPath{}, false
}

// SectionIndex returns the position of section, or -1
func (f *Former) SectionIndex(section *SectionFormer) int {
	for i, s := range f.sections {
		if s == section {
			return i
		}
	}
	return -1
}

// SelectedIndexPath returns the current selection
func (f *Former) SelectedIndexPath() (model.IndexPath, bool) {
	return f.selected, f.hasSelected
}

// ExpandedRow returns the row whose inline companion is shown, or nil
func (f *Former) ExpandedRow() RowFormer {
	return f.inlineRow
}

// SectionCount implements DataSource
func (f *Former) SectionCount() int {
	return len(f.sections)
}

// RowCount implements DataSource
func (f *Former) RowCount(section int) int {
	s := f.Section(section)
	if s == nil {
		return 0
	}
	return s.NumberOfRows()
}

// RowHeight implements DataSource
func (f *Former) RowHeight(path model.IndexPath) float32 {
	row := f.RowFormer(path)
	if row == nil {
		return 0
	}
	return row.CellHeight()
}

// CellForRow implements DataSource. The row's cell is created once and reused
// across reloads; CellConfigure runs on every call.
func (f *Former) CellForRow(path model.IndexPath) Cell {
	row := f.RowFormer(path)
	if row == nil {
		return nil
	}
	base := f.adopt(row)
	if base.former == nil {
		base.former = f
	}
	cell := row.Cell()
	row.CellConfigure()
	return cell
}

// HeaderHeight implements DataSource
func (f *Former) HeaderHeight(section int) float32 {
	if s := f.Section(section); s != nil && s.header != nil {
		return s.header.ViewHeight()
	}
	return 0
}

// FooterHeight implements DataSource
func (f *Former) FooterHeight(section int) float32 {
	if s := f.Section(section); s != nil && s.footer != nil {
		return s.footer.ViewHeight()
	}
	return 0
}

// HeaderView implements DataSource
func (f *Former) HeaderView(section int) HeaderFooterView {
	s := f.Section(section)
	if s == nil {
		return nil
	}
	return configuredView(s.header)
}

// FooterView implements DataSource
func (f *Former) FooterView(section int) HeaderFooterView {
	s := f.Section(section)
	if s == nil {
		return nil
	}
	return configuredView(s.footer)
}

// CanEditRow implements DataSource. Rows are never editable in the list sense.
func (f *Former) CanEditRow(model.IndexPath) bool {
	return false
}

// CanMoveRow implements DataSource. Reordering is not supported.
func (f *Former) CanMoveRow(model.IndexPath) bool {
	return false
}

// WillBeginDragging implements DataSource
func (f *Former) WillBeginDragging() {
	f.EndEditing()
	if f.OnBeginDragging != nil {
		f.OnBeginDragging()
	}
}

// DidScroll implements DataSource
func (f *Former) DidScroll() {
	if f.OnScroll != nil {
		f.OnScroll()
	}
}

// EndEditing resigns text input focus inside the table
func (f *Former) EndEditing() *Former {
	if f.table != nil {
		f.table.EndEditing()
	}
	return f
}

func configuredView(vf ViewFormer) HeaderFooterView {
	if vf == nil {
		return nil
	}
	view := vf.View()
	vf.ViewConfigure()
	return view
}

// adopt makes sure the row's base knows its concrete row
func (f *Former) adopt(row RowFormer) *BaseRowFormer {
	base := row.rowBase()
	if base.self == nil {
		base.self = row
	}
	return base
}

func (f *Former) adoptSections(sections []*SectionFormer) {
	for _, s := range sections {
		if s == nil {
			continue
		}
		for _, row := range s.rows {
			f.adopt(row)
		}
	}
}

func defaultLogger() *logrus.Entry {
	return logrus.StandardLogger().WithField("component", "former")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
