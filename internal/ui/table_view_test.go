package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/model"
)

type tableFixture struct {
	window   fyne.Window
	table    *TableView
	former   *former.Former
	keyboard *former.KeyboardCenter

	name     *TextFieldRowFormer
	country  *InlineSelectorRowFormer
	version  *LabelRowFormer
	sections []*former.SectionFormer
}

// newTableFixture shows
//
//	[header] name, country    (country expands a picker)
//	version [footer]
func newTableFixture(t *testing.T) *tableFixture {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	logger, _ := logrustest.NewNullLogger()
	fx := &tableFixture{keyboard: former.NewKeyboardCenter()}
	fx.table = NewTableView(WithInsetAnimations(false), WithTableLogger(logger.WithField("component", "table")))
	fx.window = test.NewWindow(fx.table)
	fx.window.SetPadded(false)
	fx.window.Resize(fyne.NewSize(400, 600))
	t.Cleanup(fx.window.Close)

	fx.former = former.New(fx.table,
		former.WithLogger(logger.WithField("component", "former")),
		former.WithKeyboard(fx.keyboard))

	fx.name = NewTextFieldRowFormer("Name", "Your name")
	fx.name.Required = true
	fx.country = NewInlineSelectorRowFormer("Country", []string{"Norway", "Japan", "Chile"}, "Japan")
	fx.version = NewLabelRowFormer("Version", "1.0")

	fx.sections = []*former.SectionFormer{
		former.NewSectionFormer(fx.name, fx.country).SetHeader(NewHeaderViewFormer("Profile")),
		former.NewSectionFormer(fx.version).SetFooter(NewFooterViewFormer("Read only")),
	}
	fx.former.Add(fx.sections...).ReloadFormer()
	return fx
}

// itemFor returns the list item showing path
func (fx *tableFixture) itemFor(t *testing.T, path model.IndexPath) int {
	t.Helper()
	id := fx.table.itemID(path)
	require.GreaterOrEqual(t, id, 0, "no list item for %s", path)
	return id
}

func TestTableViewFlattensSections(t *testing.T) {
	fx := newTableFixture(t)

	// header, name, country, version, footer
	assert.Equal(t, 5, fx.table.ItemCount())
	assert.Equal(t, 5, fx.table.List().Length())

	kinds := []itemKind{itemHeader, itemRow, itemRow, itemRow, itemFooter}
	for id, kind := range kinds {
		assert.Equal(t, kind, fx.table.items[id].kind, "item %d", id)
	}
	assert.Equal(t, model.NewIndexPath(0, 1), fx.table.items[3].path)
	assert.Equal(t, HeaderHeight, fx.table.items[0].height)
	assert.Equal(t, former.DefaultCellHeight, fx.table.items[1].height)
}

func TestTableViewTapExpandsAndCollapses(t *testing.T) {
	fx := newTableFixture(t)
	country := model.NewIndexPath(1, 0)

	fx.table.List().Select(fx.itemFor(t, country))
	assert.Same(t, fx.country, fx.former.ExpandedRow())
	assert.True(t, fx.country.IsEditing())
	assert.Equal(t, 6, fx.table.ItemCount())
	assert.Same(t, fx.country.Picker(), fx.former.RowFormer(model.NewIndexPath(2, 0)))
	assert.Equal(t, PickerCellHeight, fx.table.items[3].height)

	// the tapped item is not left selected, so a second tap is reported
	fx.table.List().Select(fx.itemFor(t, country))
	assert.Nil(t, fx.former.ExpandedRow())
	assert.False(t, fx.country.IsEditing())
	assert.Equal(t, 5, fx.table.ItemCount())
}

func TestTableViewTapOnHeaderIsIgnored(t *testing.T) {
	fx := newTableFixture(t)
	selected := 0
	fx.former.OnCellSelected = func(model.IndexPath) { selected++ }

	fx.table.List().Select(0)
	fx.table.List().Select(4)
	assert.Equal(t, 0, selected)
	_, ok := fx.former.SelectedIndexPath()
	assert.False(t, ok)
}

func TestTableViewPickerUpdatesSelector(t *testing.T) {
	fx := newTableFixture(t)
	var changed []string
	fx.country.OnValueChanged = func(v string) { changed = append(changed, v) }

	fx.table.List().Select(fx.itemFor(t, model.NewIndexPath(1, 0)))
	fx.country.Picker().Pick("Chile")

	assert.Equal(t, "Chile", fx.country.Value())
	assert.Equal(t, []string{"Chile"}, changed)
	cell := fx.country.Cell().(*SelectorCell)
	assert.Equal(t, "Chile", cell.Value.Text)
	assert.Equal(t, "Chile", fx.country.Picker().Cell().(*PickerCell).Options.Selected)
	// reloading the selector keeps the picker open
	assert.Same(t, fx.country, fx.former.ExpandedRow())
}

func TestTableViewIndexPathForCell(t *testing.T) {
	fx := newTableFixture(t)

	path, ok := fx.table.IndexPathForCell(fx.version.Cell())
	require.True(t, ok)
	assert.Equal(t, model.NewIndexPath(0, 1), path)

	_, ok = fx.table.IndexPathForCell(NewLabelCell())
	assert.False(t, ok)
}

func TestTableViewSubviewsAreMountedCells(t *testing.T) {
	fx := newTableFixture(t)

	views := fx.table.Subviews()
	require.Len(t, views, 3)
	assert.Same(t, fx.name.Cell(), views[0])
	assert.Same(t, fx.version.Cell(), views[2])
	assert.Same(t, fx.table, fx.name.Cell().Superview())
}

func TestTableViewBatchRebuildsOnce(t *testing.T) {
	fx := newTableFixture(t)

	fx.table.BeginUpdates()
	fx.former.Add(former.NewSectionFormer(NewLabelRowFormer("Extra", "")))
	fx.table.InsertSections(model.NewIndexSet(2), model.RowAnimationFade)
	assert.Equal(t, 5, fx.table.ItemCount(), "rebuilt before the batch ended")
	fx.table.EndUpdates()
	assert.Equal(t, 6, fx.table.ItemCount())

	fx.former.RemoveSectionAndUpdate(2, model.RowAnimationFade)
	assert.Equal(t, 5, fx.table.ItemCount())
}

func TestTableViewKeyboardInsets(t *testing.T) {
	fx := newTableFixture(t)

	cell := fx.name.Cell().(*TextFieldCell)
	cell.Entry.FocusGained()
	require.True(t, cell.Entry.IsFirstResponder())

	fx.keyboard.PostWillShow(former.KeyboardNotification{
		EndFrame: model.NewRect(0, 400, 400, 200),
		Duration: model.DefaultKeyboardAnimationDuration,
		Curve:    model.AnimationCurveEaseInOut,
	})
	assert.Equal(t, float32(200), fx.table.ContentInset().Bottom)
	assert.Equal(t, float32(200), fx.table.ScrollIndicatorInsets().Bottom)
	assert.Equal(t, float32(200), fx.table.InsetHeight())
	assert.Equal(t, model.NewRect(0, 0, 400, 600), fx.table.Frame())

	fx.keyboard.PostWillHide(former.KeyboardNotification{Duration: model.DefaultKeyboardAnimationDuration})
	assert.Equal(t, float32(0), fx.table.ContentInset().Bottom)
	assert.Equal(t, float32(0), fx.table.InsetHeight())
}

func TestTableViewEndEditingUnfocuses(t *testing.T) {
	fx := newTableFixture(t)
	entry := fx.name.Cell().(*TextFieldCell).Entry

	fx.window.Canvas().Focus(entry)
	require.True(t, entry.IsFirstResponder())

	fx.former.EndEditing()
	assert.False(t, entry.IsFirstResponder())
	assert.Nil(t, fx.window.Canvas().Focused())
}

func TestTableViewSwipeBeginsDragging(t *testing.T) {
	fx := newTableFixture(t)
	dragged, scrolled := 0, 0
	fx.former.OnBeginDragging = func() { dragged++ }
	fx.former.OnScroll = func() { scrolled++ }

	fx.table.onGesture(GestureSwipeDown)
	fx.table.onGesture(GestureSwipeUp)
	fx.table.onGesture(GestureTap)
	fx.table.onGesture(GestureSwipeLeft)

	assert.Equal(t, 2, dragged)
	assert.Equal(t, 2, scrolled)
}

func TestTableViewDetachedDataSource(t *testing.T) {
	fx := newTableFixture(t)

	fx.former.Dispose()
	assert.Equal(t, 0, fx.table.ItemCount())
	fx.table.onGesture(GestureSwipeDown)
	fx.table.List().Select(0)
}

func TestAnimationCurve(t *testing.T) {
	tests := []struct {
		curve model.AnimationCurve
		want  fyne.AnimationCurve
	}{
		{model.AnimationCurveEaseIn, fyne.AnimationEaseIn},
		{model.AnimationCurveEaseOut, fyne.AnimationEaseOut},
		{model.AnimationCurveLinear, fyne.AnimationLinear},
		{model.AnimationCurveEaseInOut, fyne.AnimationEaseInOut},
	}
	for _, tt := range tests {
		got := animationCurve(tt.curve)
		// curves are functions; compare by sampling
		assert.InDelta(t, tt.want(0.3), got(0.3), 0.0001, tt.curve.String())
	}
}
