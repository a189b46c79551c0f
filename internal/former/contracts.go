package former

import (
	"time"

	"github.com/ytget/former/internal/model"
)

// View is the part of a host view hierarchy the engine walks to find the focused
// element and the cell that contains it.
type View interface {
	// IsFirstResponder reports whether this element currently owns text input focus.
	IsFirstResponder() bool
	// Subviews returns the direct children in front-to-back order.
	Subviews() []View
	// Superview returns the parent, or nil at the root.
	Superview() View
}

// Cell is the reusable rendered view bound to a row descriptor.
type Cell interface {
	View
	// SetRowFormer is called once, right after the owning row is attached, so the cell
	// can adjust its layout to the row (accessories, margins).
	SetRowFormer(row RowFormer)
}

// HeaderFooterView is the rendered view of a section header or footer.
type HeaderFooterView interface {
	View
	SetViewFormer(vf ViewFormer)
}

// Viewport exposes the geometry and inset animation of the host's scroll view.
type Viewport interface {
	// Frame returns the list control's frame in its parent's coordinate space.
	Frame() model.Rect
	// ConvertRectFromWindow converts a window-space rectangle into the parent space of the list control.
	ConvertRectFromWindow(r model.Rect) model.Rect
	ContentInset() model.Insets
	SetContentInset(insets model.Insets)
	ScrollIndicatorInsets() model.Insets
	SetScrollIndicatorInsets(insets model.Insets)
	// Animate runs changes so that inset updates made inside it transition over duration.
	Animate(duration time.Duration, curve model.AnimationCurve, changes func())
}

// TableView is the host list control driven by Former.
//
// Deletions inside a BeginUpdates/EndUpdates batch use addresses from before the
// batch, insertions use addresses from after it.
type TableView interface {
	View
	Viewport

	// SetDataSource wires (or with nil, detaches) the object answering row queries and selection callbacks.
	SetDataSource(ds DataSource)
	ReloadData()

	BeginUpdates()
	EndUpdates()

	InsertSections(sections model.IndexSet, animation model.RowAnimation)
	DeleteSections(sections model.IndexSet, animation model.RowAnimation)
	ReloadSections(sections model.IndexSet, animation model.RowAnimation)
	InsertRows(paths []model.IndexPath, animation model.RowAnimation)
	DeleteRows(paths []model.IndexPath, animation model.RowAnimation)
	ReloadRows(paths []model.IndexPath, animation model.RowAnimation)

	SelectRow(path model.IndexPath, animated bool, position model.ScrollPosition)
	DeselectRow(path model.IndexPath, animated bool)
	ScrollToRow(path model.IndexPath, position model.ScrollPosition, animated bool)
	IndexPathForCell(cell Cell) (model.IndexPath, bool)

	// EndEditing resigns text input focus anywhere inside the list control.
	EndEditing()
}

// DataSource is what a TableView pulls from. *Former implements it.
type DataSource interface {
	SectionCount() int
	RowCount(section int) int
	RowHeight(path model.IndexPath) float32
	CellForRow(path model.IndexPath) Cell
	HeaderHeight(section int) float32
	FooterHeight(section int) float32
	HeaderView(section int) HeaderFooterView
	FooterView(section int) HeaderFooterView

	CanEditRow(path model.IndexPath) bool
	CanMoveRow(path model.IndexPath) bool

	WillSelectRow(path model.IndexPath) model.IndexPath
	DidSelectRow(path model.IndexPath)
	WillBeginDragging()
	DidScroll()
}
