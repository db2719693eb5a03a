package drag

// Viewport is the horizontally scrollable window over the day grid.
type Viewport struct {
	Offset       int // first content column shown
	Width        int // visible columns
	ContentWidth int // total content columns
}

// MaxOffset returns the largest valid offset.
func (v Viewport) MaxOffset() int {
	return max(v.ContentWidth-v.Width, 0)
}

// ScrollBy moves the viewport by delta columns, clamped to the content.
// It returns the delta actually applied.
func (v *Viewport) ScrollBy(delta int) int {
	before := v.Offset
	v.Offset = clamp(v.Offset+delta, 0, v.MaxOffset())
	return v.Offset - before
}

// SetSize updates the visible and content widths and re-clamps the offset.
func (v *Viewport) SetSize(width, contentWidth int) {
	v.Width = max(width, 0)
	v.ContentWidth = max(contentWidth, 0)
	v.Offset = clamp(v.Offset, 0, v.MaxOffset())
}

// ToContent converts a column relative to the viewport's left edge to a
// content column.
func (v Viewport) ToContent(x int) int {
	return x + v.Offset
}

// AtStart reports whether the viewport is scrolled fully left.
func (v Viewport) AtStart() bool {
	return v.Offset == 0
}

// AtEnd reports whether the viewport is scrolled fully right.
func (v Viewport) AtEnd() bool {
	return v.Offset >= v.MaxOffset()
}

// Reveal scrolls the minimum amount that brings content columns
// [from, to) into view.
func (v *Viewport) Reveal(from, to int) {
	switch {
	case from < v.Offset:
		v.Offset = from
	case to > v.Offset+v.Width:
		v.Offset = to - v.Width
	}
	v.Offset = clamp(v.Offset, 0, v.MaxOffset())
}
