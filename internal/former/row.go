package former

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/model"
)

// DefaultCellHeight is used when a row does not set its own height
const DefaultCellHeight float32 = 44

// RowIDPrefix prefixes generated row identifiers
const RowIDPrefix = "row-"

// RowFormer describes one visual row. Identity is reference identity: two
// RowFormers are the same row only if they are the same pointer.
//
// Implementations embed BaseRowFormer and call ExtendRowFormer from their constructor.
type RowFormer interface {
	// ID returns a stable identifier used in logs.
	ID() string
	Enabled() bool
	CanBecomeEditing() bool
	CellHeight() float32
	// Cell returns the row's cell, creating it on first use.
	Cell() Cell
	// CellConfigure is invoked every time the row's cell is (re)bound by the host.
	CellConfigure()
	// CellSelected is invoked when the row is activated.
	CellSelected(path model.IndexPath)
	// Former returns the engine that first displayed this row, or nil.
	Former() *Former
	// AsInline returns the inline-expansion capability, or nil if the row has none.
	AsInline() InlineRow
	// AsValidatable returns the validation capability, or nil if the row has none.
	AsValidatable() Validatable

	rowBase() *BaseRowFormer
}

// InlineRow is implemented by rows that show a companion row directly beneath them
// while they are activated.
type InlineRow interface {
	// InlineRowFormer returns the companion, or nil when there is nothing to show.
	InlineRowFormer() RowFormer
	EditingDidBegin()
	EditingDidEnd()
}

// Validatable is implemented by rows that can report whether their input is acceptable.
type Validatable interface {
	Validate() bool
}

// BaseRowFormer carries the state every row has. The zero value is an enabled row of
// DefaultCellHeight without a cell factory.
type BaseRowFormer struct {
	id          string
	self        RowFormer
	disabled    bool
	cellHeight  float32
	instantiate model.InstantiateType
	newCell     func() Cell
	cell        Cell
	bound       bool
	former      *Former
	onSelected  func(path model.IndexPath)
}

// ExtendRowFormer records the concrete row that embeds b. It must be called by the
// constructor of every concrete row so the cell can be attached to it.
func (b *BaseRowFormer) ExtendRowFormer(self RowFormer) {
	b.self = self
}

func (b *BaseRowFormer) rowBase() *BaseRowFormer {
	return b
}

// ID returns the row identifier, generating a UUID v7 on first use
func (b *BaseRowFormer) ID() string {
	if b.id == "" {
		b.id = generateRowID()
	}
	return b.id
}

// Enabled returns false if the row ignores activation
func (b *BaseRowFormer) Enabled() bool {
	return !b.disabled
}

// SetEnabled enables or disables the row and refreshes its cell
func (b *BaseRowFormer) SetEnabled(enabled bool) {
	b.disabled = !enabled
	b.Update()
}

// CanBecomeEditing returns false; editable rows override it
func (b *BaseRowFormer) CanBecomeEditing() bool {
	return false
}

// CellHeight returns the row height
func (b *BaseRowFormer) CellHeight() float32 {
	if b.cellHeight <= 0 {
		return DefaultCellHeight
	}
	return b.cellHeight
}

// SetCellHeight sets the row height; values <= 0 restore the default
func (b *BaseRowFormer) SetCellHeight(height float32) {
	b.cellHeight = height
}

// SetCellFactory selects programmatic cell creation
func (b *BaseRowFormer) SetCellFactory(newCell func() Cell) {
	b.instantiate = model.Class()
	b.newCell = newCell
}

// SetInstantiateType selects how the cell is created. For model.InstantiateNib the
// cell comes from the named layout in the bundle; newCell is then ignored.
func (b *BaseRowFormer) SetInstantiateType(it model.InstantiateType, newCell func() Cell) {
	b.instantiate = it
	b.newCell = newCell
}

// InstantiateType returns the cell creation strategy
func (b *BaseRowFormer) InstantiateType() model.InstantiateType {
	return b.instantiate
}

// Cell returns the bound cell, creating and attaching it on first use
func (b *BaseRowFormer) Cell() Cell {
	if b.cell == nil {
		b.cell = b.makeCell()
	}
	if b.cell != nil && !b.bound && b.self != nil {
		b.cell.SetRowFormer(b.self)
		b.bound = true
	}
	return b.cell
}

// HasCell returns true once the cell has been created
func (b *BaseRowFormer) HasCell() bool {
	return b.cell != nil
}

// CellConfigure does nothing; rows override it to push their data into the cell
func (b *BaseRowFormer) CellConfigure() {}

// CellSelected fires the OnSelected callback
func (b *BaseRowFormer) CellSelected(path model.IndexPath) {
	if b.onSelected != nil {
		b.onSelected(path)
	}
}

// SetOnSelected sets the callback fired when the row is activated
func (b *BaseRowFormer) SetOnSelected(fn func(path model.IndexPath)) {
	b.onSelected = fn
}

// Former returns the owning engine, or nil before the row was first displayed
func (b *BaseRowFormer) Former() *Former {
	return b.former
}

// AsInline returns nil; inline rows override it
func (b *BaseRowFormer) AsInline() InlineRow {
	return nil
}

// AsValidatable returns nil; validatable rows override it
func (b *BaseRowFormer) AsValidatable() Validatable {
	return nil
}

// Update re-runs CellConfigure if the cell already exists
func (b *BaseRowFormer) Update() {
	if b.cell != nil && b.self != nil {
		b.self.CellConfigure()
	}
}

func (b *BaseRowFormer) makeCell() Cell {
	switch b.instantiate.Kind {
	case model.InstantiateNib:
		cell, err := LookupBundle(b.instantiate.Bundle).Cell(b.instantiate.Name)
		if err != nil {
			b.logger().WithError(err).WithField("row", b.ID()).Warn("Failed to load cell layout")
			return nil
		}
		return cell
	default:
		if b.newCell == nil {
			return nil
		}
		return b.newCell()
	}
}

func (b *BaseRowFormer) logger() *logrus.Entry {
	if b.former != nil {
		return b.former.log
	}
	return defaultLogger()
}

// generateRowID generates a row ID using UUID v7 so IDs sort by creation time
func generateRowID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RowIDPrefix+"%d", time.Now().UnixNano())
	}
	return RowIDPrefix + id.String()
}
