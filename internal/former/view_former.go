package former

// DefaultHeaderFooterHeight is used by header/footer descriptors without an explicit height
const DefaultHeaderFooterHeight float32 = 30

// ViewFormer describes a section header or footer.
type ViewFormer interface {
	ViewHeight() float32
	// View returns the rendered view, creating it on first use.
	View() HeaderFooterView
	// ViewConfigure is invoked every time the host asks for the view.
	ViewConfigure()
}

// BaseViewFormer is the embeddable implementation of ViewFormer. Concrete header and
// footer descriptors call ExtendViewFormer from their constructor.
type BaseViewFormer struct {
	self       ViewFormer
	viewHeight float32
	newView    func() HeaderFooterView
	view       HeaderFooterView
}

// ExtendViewFormer records the concrete descriptor that embeds b
func (b *BaseViewFormer) ExtendViewFormer(self ViewFormer, newView func() HeaderFooterView) {
	b.self = self
	b.newView = newView
}

// ViewHeight returns the header/footer height
func (b *BaseViewFormer) ViewHeight() float32 {
	if b.viewHeight <= 0 {
		return DefaultHeaderFooterHeight
	}
	return b.viewHeight
}

// SetViewHeight sets the height; values <= 0 restore the default
func (b *BaseViewFormer) SetViewHeight(height float32) {
	b.viewHeight = height
}

// View returns the view, creating it on first use
func (b *BaseViewFormer) View() HeaderFooterView {
	if b.view == nil && b.newView != nil {
		b.view = b.newView()
		if b.view != nil && b.self != nil {
			b.view.SetViewFormer(b.self)
		}
	}
	return b.view
}

// ViewConfigure does nothing; descriptors override it to push data into the view
func (b *BaseViewFormer) ViewConfigure() {}
