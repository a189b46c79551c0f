package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/model"
)

type itemKind int

const (
	itemRow itemKind = iota
	itemHeader
	itemFooter
)

// listItem is one entry of the flattened list: a row, or a section's header or footer
type listItem struct {
	kind   itemKind
	path   model.IndexPath
	height float32
}

// TableView implements former.TableView with a widget.List. Sections are flattened
// into list items; headers and footers become items of their own. Frames are
// reported in window coordinates.
type TableView struct {
	widget.BaseWidget

	list    *widget.List
	inset   *canvas.Rectangle
	content *fyne.Container

	ds    former.DataSource
	items []listItem
	depth int

	// cells currently shown, by list item
	mounted map[widget.ListItemID]former.Cell
	owners  map[fyne.CanvasObject]*fyne.Container
	slotIDs map[*fyne.Container]widget.ListItemID

	contentInset   model.Insets
	indicatorInset model.Insets
	deferInset     bool
	animations     bool

	gestures *GestureHandler
	log      *logrus.Entry
}

var _ former.TableView = (*TableView)(nil)

// TableOption configures a TableView
type TableOption func(t *TableView)

// WithTableLogger sets the log entry of the table
func WithTableLogger(entry *logrus.Entry) TableOption {
	return func(t *TableView) {
		if entry != nil {
			t.log = entry
		}
	}
}

// WithInsetAnimations enables or disables animated inset changes
func WithInsetAnimations(enabled bool) TableOption {
	return func(t *TableView) {
		t.animations = enabled
	}
}

// NewTableView creates an empty table. It shows nothing until a data source is set.
func NewTableView(opts ...TableOption) *TableView {
	t := &TableView{
		inset:      canvas.NewRectangle(color.Transparent),
		mounted:    make(map[widget.ListItemID]former.Cell),
		owners:     make(map[fyne.CanvasObject]*fyne.Container),
		slotIDs:    make(map[*fyne.Container]widget.ListItemID),
		animations: true,
		log:        logrus.StandardLogger().WithField("component", "table"),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.list = widget.NewList(t.length, t.createItem, t.updateItem)
	t.list.OnSelected = t.didTap
	t.content = container.NewBorder(nil, t.inset, nil, nil, t.list)
	t.gestures = NewGestureHandler(t.onGesture)
	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer implements fyne.Widget
func (t *TableView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

// List returns the underlying list widget
func (t *TableView) List() *widget.List {
	return t.list
}

// ItemCount returns the number of list items, headers and footers included
func (t *TableView) ItemCount() int {
	return len(t.items)
}

// SetDataSource implements former.TableView
func (t *TableView) SetDataSource(ds former.DataSource) {
	t.ds = ds
	t.reload()
}

// ReloadData implements former.TableView
func (t *TableView) ReloadData() {
	t.reload()
}

// BeginUpdates implements former.TableView
func (t *TableView) BeginUpdates() {
	t.depth++
}

// EndUpdates implements former.TableView. The list is rebuilt once the outermost
// batch ends.
func (t *TableView) EndUpdates() {
	if t.depth > 0 {
		t.depth--
	}
	if t.depth == 0 {
		t.reload()
	}
}

// InsertSections implements former.TableView
func (t *TableView) InsertSections(sections model.IndexSet, animation model.RowAnimation) {
	t.changed("insert-sections", sections.String(), animation)
}

// DeleteSections implements former.TableView
func (t *TableView) DeleteSections(sections model.IndexSet, animation model.RowAnimation) {
	t.changed("delete-sections", sections.String(), animation)
}

// ReloadSections implements former.TableView
func (t *TableView) ReloadSections(sections model.IndexSet, animation model.RowAnimation) {
	t.changed("reload-sections", sections.String(), animation)
}

// InsertRows implements former.TableView
func (t *TableView) InsertRows(paths []model.IndexPath, animation model.RowAnimation) {
	t.changed("insert-rows", model.FormatIndexPaths(paths), animation)
}

// DeleteRows implements former.TableView
func (t *TableView) DeleteRows(paths []model.IndexPath, animation model.RowAnimation) {
	t.changed("delete-rows", model.FormatIndexPaths(paths), animation)
}

// ReloadRows implements former.TableView
func (t *TableView) ReloadRows(paths []model.IndexPath, animation model.RowAnimation) {
	t.changed("reload-rows", model.FormatIndexPaths(paths), animation)
}

// SelectRow implements former.TableView. Fyne lists highlight a row only while it
// is tapped, so selecting scrolls to the row.
func (t *TableView) SelectRow(path model.IndexPath, animated bool, position model.ScrollPosition) {
	if position != model.ScrollPositionNone {
		t.ScrollToRow(path, position, animated)
	}
}

// DeselectRow implements former.TableView
func (t *TableView) DeselectRow(path model.IndexPath, animated bool) {
	t.list.UnselectAll()
}

// ScrollToRow implements former.TableView
func (t *TableView) ScrollToRow(path model.IndexPath, position model.ScrollPosition, animated bool) {
	id := t.itemID(path)
	if id < 0 {
		return
	}
	if id == 0 && position == model.ScrollPositionTop {
		t.list.ScrollToTop()
		return
	}
	if id == len(t.items)-1 && position == model.ScrollPositionBottom {
		t.list.ScrollToBottom()
		return
	}
	t.list.ScrollTo(id)
}

// IndexPathForCell implements former.TableView. Only cells on screen have an address.
func (t *TableView) IndexPathForCell(cell former.Cell) (model.IndexPath, bool) {
	for id, mounted := range t.mounted {
		if mounted == cell && id < len(t.items) {
			return t.items[id].path, true
		}
	}
	return model.IndexPath{}, false
}

// EndEditing implements former.TableView
func (t *TableView) EndEditing() {
	if c := canvasFor(t); c != nil {
		c.Unfocus()
	}
}

// IsFirstResponder implements former.View
func (t *TableView) IsFirstResponder() bool {
	return false
}

// Subviews implements former.View. It returns the cells on screen in list order.
func (t *TableView) Subviews() []former.View {
	views := make([]former.View, 0, len(t.mounted))
	for id := range t.items {
		if cell, ok := t.mounted[id]; ok {
			views = append(views, cell)
		}
	}
	return views
}

// Superview implements former.View
func (t *TableView) Superview() former.View {
	return nil
}

// Frame implements former.Viewport
func (t *TableView) Frame() model.Rect {
	var pos fyne.Position
	if app := fyne.CurrentApp(); app != nil {
		pos = app.Driver().AbsolutePositionForObject(t)
	}
	size := t.Size()
	return model.NewRect(pos.X, pos.Y, size.Width, size.Height)
}

// ConvertRectFromWindow implements former.Viewport. Frame is already in window
// coordinates.
func (t *TableView) ConvertRectFromWindow(r model.Rect) model.Rect {
	return r
}

// ContentInset implements former.Viewport
func (t *TableView) ContentInset() model.Insets {
	return t.contentInset
}

// SetContentInset implements former.Viewport. The bottom inset shrinks the list.
func (t *TableView) SetContentInset(insets model.Insets) {
	t.contentInset = insets
	if !t.deferInset {
		t.applyInset(insets.Bottom)
	}
}

// ScrollIndicatorInsets implements former.Viewport
func (t *TableView) ScrollIndicatorInsets() model.Insets {
	return t.indicatorInset
}

// SetScrollIndicatorInsets implements former.Viewport. The scroll bar lives inside
// the list, so the content inset already moves it.
func (t *TableView) SetScrollIndicatorInsets(insets model.Insets) {
	t.indicatorInset = insets
}

// Animate implements former.Viewport
func (t *TableView) Animate(duration time.Duration, curve model.AnimationCurve, changes func()) {
	from := t.inset.MinSize().Height
	t.deferInset = true
	changes()
	t.deferInset = false
	to := t.contentInset.Bottom

	if !t.animations || duration <= 0 || from == to {
		t.applyInset(to)
		return
	}
	anim := fyne.NewAnimation(duration, func(progress float32) {
		t.applyInset(from + (to-from)*progress)
	})
	anim.Curve = animationCurve(curve)
	anim.Start()
}

// InsetHeight returns the bottom space currently kept free below the list
func (t *TableView) InsetHeight() float32 {
	return t.inset.MinSize().Height
}

func (t *TableView) applyInset(bottom float32) {
	t.inset.SetMinSize(fyne.NewSize(0, bottom))
	t.content.Refresh()
}

func (t *TableView) changed(op, target string, animation model.RowAnimation) {
	t.log.WithFields(logrus.Fields{
		"target":    target,
		"animation": animation,
		"batched":   t.depth > 0,
	}).Debug(op)
	if t.depth == 0 {
		t.reload()
	}
}

// reload flattens the data source into list items
func (t *TableView) reload() {
	t.items = t.items[:0]
	t.mounted = make(map[widget.ListItemID]former.Cell)
	if t.ds != nil {
		for s := 0; s < t.ds.SectionCount(); s++ {
			if h := t.ds.HeaderHeight(s); h > 0 {
				t.items = append(t.items, listItem{kind: itemHeader, path: model.NewIndexPath(0, s), height: h})
			}
			for r := 0; r < t.ds.RowCount(s); r++ {
				path := model.NewIndexPath(r, s)
				t.items = append(t.items, listItem{kind: itemRow, path: path, height: t.ds.RowHeight(path)})
			}
			if h := t.ds.FooterHeight(s); h > 0 {
				t.items = append(t.items, listItem{kind: itemFooter, path: model.NewIndexPath(0, s), height: h})
			}
		}
	}
	for id, item := range t.items {
		t.list.SetItemHeight(id, item.height)
	}
	t.list.Refresh()
}

func (t *TableView) itemID(path model.IndexPath) widget.ListItemID {
	for id, item := range t.items {
		if item.kind == itemRow && item.path == path {
			return id
		}
	}
	return -1
}

func (t *TableView) length() int {
	return len(t.items)
}

func (t *TableView) createItem() fyne.CanvasObject {
	return container.NewStack()
}

func (t *TableView) updateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	slot, ok := obj.(*fyne.Container)
	if !ok {
		return
	}
	if prev, ok := t.slotIDs[slot]; ok {
		delete(t.mounted, prev)
	}
	if id < 0 || id >= len(t.items) || t.ds == nil {
		t.place(slot, id, nil)
		return
	}

	var view former.View
	var cell former.Cell
	item := t.items[id]
	switch item.kind {
	case itemHeader:
		if v := t.ds.HeaderView(item.path.Section); v != nil {
			view = v
		}
	case itemFooter:
		if v := t.ds.FooterView(item.path.Section); v != nil {
			view = v
		}
	default:
		if cell = t.ds.CellForRow(item.path); cell != nil {
			view = cell
		}
	}
	if s, ok := view.(superviewSetter); ok {
		s.setSuperview(t)
	}

	content, _ := view.(fyne.CanvasObject)
	t.place(slot, id, content)
	if cell != nil && content != nil {
		t.mounted[id] = cell
	}
}

// place shows content in slot, taking it out of the slot that showed it before
func (t *TableView) place(slot *fyne.Container, id widget.ListItemID, content fyne.CanvasObject) {
	if content == nil {
		slot.Objects = nil
		delete(t.slotIDs, slot)
		slot.Refresh()
		return
	}
	if owner, ok := t.owners[content]; ok && owner != slot {
		owner.Objects = nil
		if oid, ok := t.slotIDs[owner]; ok {
			delete(t.mounted, oid)
			delete(t.slotIDs, owner)
		}
		owner.Refresh()
	}
	slot.Objects = []fyne.CanvasObject{content}
	t.owners[content] = slot
	t.slotIDs[slot] = id
	slot.Refresh()
}

// didTap forwards a tap on a row to the data source. The list selection is
// cleared right away so tapping the same row again is reported too.
func (t *TableView) didTap(id widget.ListItemID) {
	t.list.Unselect(id)
	if t.ds == nil || id < 0 || id >= len(t.items) || t.items[id].kind != itemRow {
		return
	}
	path := t.ds.WillSelectRow(t.items[id].path)
	t.ds.DidSelectRow(path)
}

func animationCurve(curve model.AnimationCurve) fyne.AnimationCurve {
	switch curve {
	case model.AnimationCurveEaseIn:
		return fyne.AnimationEaseIn
	case model.AnimationCurveEaseOut:
		return fyne.AnimationEaseOut
	case model.AnimationCurveLinear:
		return fyne.AnimationLinear
	default:
		return fyne.AnimationEaseInOut
	}
}
