package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/model"
)

const (
	cursorMarker = "› "
	noMarker     = "  "
)

type itemKind int

const (
	itemRow itemKind = iota
	itemHeader
	itemFooter
)

// lineItem is a row, header or footer with the line it starts on
type lineItem struct {
	kind   itemKind
	path   model.IndexPath
	start  int
	height int
	cell   former.Cell
}

// Table implements former.TableView in a terminal. Every row is drawn; the
// viewport shows the part above the bottom content inset. Frames are in terminal
// cells, with Y counted from the top of the screen.
type Table struct {
	ds    former.DataSource
	items []lineItem
	cells map[former.Cell]model.IndexPath
	depth int
	lines int

	viewport      viewport.Model
	top           int
	width, height int

	contentInset   model.Insets
	indicatorInset model.Insets

	// the cursor follows its cell across reloads
	cursor     model.IndexPath
	cursorCell former.Cell
	hasCursor  bool

	styles       Styles
	onEndEditing func()
	log          *logrus.Entry
}

var _ former.TableView = (*Table)(nil)

// NewTable creates an empty table drawn with styles
func NewTable(styles Styles, log *logrus.Entry) *Table {
	if log == nil {
		log = logrus.StandardLogger().WithField("component", "table")
	}
	return &Table{
		cells:    make(map[former.Cell]model.IndexPath),
		viewport: viewport.New(0, 0),
		styles:   styles,
		log:      log,
	}
}

// SetBounds places the table at line top with the given size
func (t *Table) SetBounds(top, width, height int) {
	t.top = top
	t.width = width
	t.height = height
	t.layout()
}

// SetOnEndEditing sets the callback run by EndEditing
func (t *Table) SetOnEndEditing(fn func()) {
	t.onEndEditing = fn
}

// VisibleHeight returns the number of lines the viewport shows
func (t *Table) VisibleHeight() int {
	return t.viewport.Height
}

// Offset returns the first visible line
func (t *Table) Offset() int {
	return t.viewport.YOffset
}

// LineCount returns the number of lines of the whole form
func (t *Table) LineCount() int {
	return t.lines
}

// SetDataSource implements former.TableView
func (t *Table) SetDataSource(ds former.DataSource) {
	t.ds = ds
	t.reload()
}

// ReloadData implements former.TableView
func (t *Table) ReloadData() {
	t.reload()
}

// BeginUpdates implements former.TableView
func (t *Table) BeginUpdates() {
	t.depth++
}

// EndUpdates implements former.TableView
func (t *Table) EndUpdates() {
	if t.depth > 0 {
		t.depth--
	}
	if t.depth == 0 {
		t.reload()
	}
}

// InsertSections implements former.TableView
func (t *Table) InsertSections(sections model.IndexSet, animation model.RowAnimation) {
	t.changed("insert-sections", sections.String(), animation)
}

// DeleteSections implements former.TableView
func (t *Table) DeleteSections(sections model.IndexSet, animation model.RowAnimation) {
	t.changed("delete-sections", sections.String(), animation)
}

// ReloadSections implements former.TableView
func (t *Table) ReloadSections(sections model.IndexSet, animation model.RowAnimation) {
	t.changed("reload-sections", sections.String(), animation)
}

// InsertRows implements former.TableView
func (t *Table) InsertRows(paths []model.IndexPath, animation model.RowAnimation) {
	t.changed("insert-rows", model.FormatIndexPaths(paths), animation)
}

// DeleteRows implements former.TableView
func (t *Table) DeleteRows(paths []model.IndexPath, animation model.RowAnimation) {
	t.changed("delete-rows", model.FormatIndexPaths(paths), animation)
}

// ReloadRows implements former.TableView
func (t *Table) ReloadRows(paths []model.IndexPath, animation model.RowAnimation) {
	t.changed("reload-rows", model.FormatIndexPaths(paths), animation)
}

// SelectRow implements former.TableView. The cursor moves to the selected row.
func (t *Table) SelectRow(path model.IndexPath, animated bool, position model.ScrollPosition) {
	t.setCursor(path)
	if position != model.ScrollPositionNone {
		t.ScrollToRow(path, position, animated)
	}
}

// DeselectRow implements former.TableView. The cursor stays where it is.
func (t *Table) DeselectRow(path model.IndexPath, animated bool) {}

// ScrollToRow implements former.TableView
func (t *Table) ScrollToRow(path model.IndexPath, position model.ScrollPosition, animated bool) {
	item, ok := t.item(path)
	if !ok {
		return
	}
	t.refresh()
	h := t.viewport.Height
	end := item.start + item.height - 1
	switch position {
	case model.ScrollPositionTop:
		t.viewport.SetYOffset(item.start)
	case model.ScrollPositionMiddle:
		t.viewport.SetYOffset(item.start - (h-item.height)/2)
	case model.ScrollPositionBottom:
		t.viewport.SetYOffset(end - h + 1)
	default:
		if item.start < t.viewport.YOffset {
			t.viewport.SetYOffset(item.start)
		} else if end >= t.viewport.YOffset+h {
			t.viewport.SetYOffset(end - h + 1)
		}
	}
}

// IndexPathForCell implements former.TableView
func (t *Table) IndexPathForCell(cell former.Cell) (model.IndexPath, bool) {
	path, ok := t.cells[cell]
	return path, ok
}

// EndEditing implements former.TableView
func (t *Table) EndEditing() {
	if t.onEndEditing != nil {
		t.onEndEditing()
	}
}

// IsFirstResponder implements former.View
func (t *Table) IsFirstResponder() bool {
	return false
}

// Subviews implements former.View
func (t *Table) Subviews() []former.View {
	views := make([]former.View, 0, len(t.cells))
	for _, item := range t.items {
		if item.cell != nil {
			views = append(views, item.cell)
		}
	}
	return views
}

// Superview implements former.View
func (t *Table) Superview() former.View {
	return nil
}

// Frame implements former.Viewport
func (t *Table) Frame() model.Rect {
	return model.NewRect(0, float32(t.top), float32(t.width), float32(t.height))
}

// ConvertRectFromWindow implements former.Viewport. The table spans the screen
// width, so screen and parent coordinates are the same.
func (t *Table) ConvertRectFromWindow(r model.Rect) model.Rect {
	return r
}

// ContentInset implements former.Viewport
func (t *Table) ContentInset() model.Insets {
	return t.contentInset
}

// SetContentInset implements former.Viewport. The bottom inset shortens the viewport.
func (t *Table) SetContentInset(insets model.Insets) {
	t.contentInset = insets
	t.layout()
}

// ScrollIndicatorInsets implements former.Viewport
func (t *Table) ScrollIndicatorInsets() model.Insets {
	return t.indicatorInset
}

// SetScrollIndicatorInsets implements former.Viewport
func (t *Table) SetScrollIndicatorInsets(insets model.Insets) {
	t.indicatorInset = insets
}

// Animate implements former.Viewport. A terminal redraws whole frames, so changes
// apply at once.
func (t *Table) Animate(duration time.Duration, curve model.AnimationCurve, changes func()) {
	changes()
}

// Cursor returns the row under the cursor
func (t *Table) Cursor() (model.IndexPath, bool) {
	return t.cursor, t.hasCursor
}

// MoveCursor moves the cursor delta rows, skipping headers and footers, and
// scrolls it into view
func (t *Table) MoveCursor(delta int) {
	rows := t.rowItems()
	if len(rows) == 0 {
		return
	}
	i := 0
	if t.hasCursor {
		for j, item := range rows {
			if item.path == t.cursor {
				i = j + delta
				break
			}
		}
	}
	i = max(0, min(i, len(rows)-1))
	t.setCursor(rows[i].path)
	t.ScrollToRow(rows[i].path, model.ScrollPositionNone, false)
}

// Tap selects the row under the cursor the way a click would
func (t *Table) Tap() {
	if t.ds == nil || !t.hasCursor {
		return
	}
	path := t.ds.WillSelectRow(t.cursor)
	t.ds.DidSelectRow(path)
}

// Page scrolls by pages of the visible height. Scrolling counts as a drag.
func (t *Table) Page(pages int) {
	if t.ds != nil {
		t.ds.WillBeginDragging()
	}
	t.refresh()
	t.viewport.SetYOffset(t.viewport.YOffset + pages*t.viewport.Height)
	if t.ds != nil {
		t.ds.DidScroll()
	}
}

// View renders the visible lines, padded to the visible height
func (t *Table) View() string {
	t.refresh()
	lines := strings.Split(t.viewport.View(), "\n")
	return strings.Join(fitLines(lines, t.viewport.Height), "\n")
}

func (t *Table) changed(op, target string, animation model.RowAnimation) {
	t.log.WithFields(logrus.Fields{
		"target":    target,
		"animation": animation,
		"batched":   t.depth > 0,
	}).Debug(op)
	if t.depth == 0 {
		t.reload()
	}
}

// reload lays out the data source as lines and binds every cell
func (t *Table) reload() {
	t.items = t.items[:0]
	t.cells = make(map[former.Cell]model.IndexPath)
	line := 0
	add := func(kind itemKind, path model.IndexPath, height float32, cell former.Cell) {
		n := max(1, int(height))
		t.items = append(t.items, lineItem{kind: kind, path: path, start: line, height: n, cell: cell})
		line += n
	}
	if t.ds != nil {
		for s := 0; s < t.ds.SectionCount(); s++ {
			if h := t.ds.HeaderHeight(s); h > 0 {
				add(itemHeader, model.NewIndexPath(0, s), h, nil)
			}
			for r := 0; r < t.ds.RowCount(s); r++ {
				path := model.NewIndexPath(r, s)
				cell := t.ds.CellForRow(path)
				if c, ok := cell.(*Cell); ok {
					c.superview = t
				}
				if cell != nil {
					t.cells[cell] = path
				}
				add(itemRow, path, t.ds.RowHeight(path), cell)
			}
			if h := t.ds.FooterHeight(s); h > 0 {
				add(itemFooter, model.NewIndexPath(0, s), h, nil)
			}
		}
	}
	t.lines = line
	t.restoreCursor()
	t.refresh()
}

func (t *Table) restoreCursor() {
	if !t.hasCursor {
		return
	}
	if path, ok := t.cells[t.cursorCell]; ok {
		t.cursor = path
		return
	}
	rows := t.rowItems()
	if len(rows) == 0 {
		t.hasCursor = false
		t.cursorCell = nil
		return
	}
	for _, item := range rows {
		if !item.path.Less(t.cursor) {
			t.setCursor(item.path)
			return
		}
	}
	t.setCursor(rows[len(rows)-1].path)
}

func (t *Table) setCursor(path model.IndexPath) {
	t.cursor = path
	t.hasCursor = true
	t.cursorCell = nil
	if item, ok := t.item(path); ok {
		t.cursorCell = item.cell
	}
}

func (t *Table) layout() {
	t.viewport.Width = t.width
	t.viewport.Height = max(0, t.height-int(t.contentInset.Bottom))
	t.refresh()
}

func (t *Table) refresh() {
	t.viewport.SetContent(t.render())
}

func (t *Table) item(path model.IndexPath) (lineItem, bool) {
	for _, item := range t.items {
		if item.kind == itemRow && item.path == path {
			return item, true
		}
	}
	return lineItem{}, false
}

func (t *Table) rowItems() []lineItem {
	var rows []lineItem
	for _, item := range t.items {
		if item.kind == itemRow {
			rows = append(rows, item)
		}
	}
	return rows
}

func (t *Table) render() string {
	if t.ds == nil {
		return ""
	}
	titleWidth := 0
	for _, item := range t.items {
		if c, ok := item.cell.(*Cell); ok && c.Kind != CellPicker {
			titleWidth = max(titleWidth, lipgloss.Width(c.Title))
		}
	}

	var lines []string
	for _, item := range t.items {
		var line string
		switch item.kind {
		case itemHeader:
			line = t.renderHeader(t.ds.HeaderView(item.path.Section))
		case itemFooter:
			line = t.renderHeader(t.ds.FooterView(item.path.Section))
		default:
			// CellForRow runs CellConfigure, so the line shows the row's current state
			cell, _ := t.ds.CellForRow(item.path).(*Cell)
			line = t.renderCell(cell, titleWidth, t.hasCursor && item.path == t.cursor)
		}
		if t.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(t.width).Render(line)
		}
		lines = append(lines, fitLines([]string{line}, item.height)...)
	}
	return strings.Join(lines, "\n")
}

func (t *Table) renderHeader(view former.HeaderFooterView) string {
	hv, ok := view.(*HeaderView)
	if !ok {
		return ""
	}
	if hv.Footer {
		return t.styles.Footer.Render(noMarker + hv.Text)
	}
	return t.styles.Header.Render(hv.Text)
}

func (t *Table) renderCell(c *Cell, titleWidth int, cursor bool) string {
	if c == nil {
		return ""
	}
	marker := noMarker
	if cursor {
		marker = cursorMarker
	}
	if c.Kind == CellPicker {
		return marker + renderOptions(c, t.styles)
	}

	title := c.Title + strings.Repeat(" ", titleWidth-lipgloss.Width(c.Title))
	switch {
	case c.Disabled:
		title = t.styles.Disabled.Render(title)
	case c.Invalid:
		title = t.styles.Invalid.Render(title)
	case cursor:
		title = t.styles.Cursor.Render(title)
	default:
		title = t.styles.Row.Render(title)
	}

	detail := c.Detail
	switch {
	case c.Editing:
		detail = t.styles.Editing.Render(detail)
	case c.Placeholder:
		detail = t.styles.Placeholder.Render(detail)
	default:
		detail = t.styles.Detail.Render(detail)
	}
	if detail == "" {
		return marker + title
	}
	return marker + title + "  " + detail
}

func renderOptions(c *Cell, styles Styles) string {
	parts := make([]string, len(c.Options))
	for i, option := range c.Options {
		if i == c.Selected {
			parts[i] = styles.Chosen.Render("[" + option + "]")
		} else {
			parts[i] = styles.Option.Render(" " + option + " ")
		}
	}
	return "  ‹ " + strings.Join(parts, " ") + " ›"
}

// fitLines pads or cuts lines to exactly n entries
func fitLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
