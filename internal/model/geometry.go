package model

// Rect is an axis-aligned rectangle in host units (points for fyne, cells for terminals)
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// NewRect creates a Rect
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// MinY returns the top edge
func (r Rect) MinY() float32 {
	return r.Y
}

// MaxY returns the bottom edge
func (r Rect) MaxY() float32 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has no area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Offset returns r moved by dx, dy
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Insets are the margins a scroll view keeps free around its content
type Insets struct {
	Top    float32
	Left   float32
	Bottom float32
	Right  float32
}

// WithBottom returns a copy of i with the bottom inset replaced
func (i Insets) WithBottom(bottom float32) Insets {
	i.Bottom = bottom
	return i
}

// InstantiateKind selects how a cell or header/footer view is created
type InstantiateKind int

const (
	// InstantiateClass builds the view programmatically from a factory
	InstantiateClass InstantiateKind = iota

	// InstantiateNib builds the view from a named layout resource
	InstantiateNib
)

// String returns the string representation of InstantiateKind
func (k InstantiateKind) String() string {
	switch k {
	case InstantiateClass:
		return "class"
	case InstantiateNib:
		return "nib"
	default:
		return "unknown"
	}
}

// InstantiateType describes the creation strategy of a cell. For InstantiateNib,
// Name is the layout resource and Bundle the optional bundle it is registered in
// (empty means the main bundle).
type InstantiateType struct {
	Kind   InstantiateKind
	Name   string
	Bundle string
}

// Class returns the programmatic creation strategy
func Class() InstantiateType {
	return InstantiateType{Kind: InstantiateClass}
}

// Nib returns the named-layout creation strategy
func Nib(name, bundle string) InstantiateType {
	return InstantiateType{Kind: InstantiateNib, Name: name, Bundle: bundle}
}
