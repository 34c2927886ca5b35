package view

import "math"

// MinFraction is the floor for the view fraction: at most 1/0.005 = 200x
// magnification of the full alignment width.
const MinFraction = 0.005

// ZoomStep is the per-step zoom factor. Zooming in multiplies the view
// fraction by it, zooming out divides.
const ZoomStep = 0.75

// Viewport owns the scroll offset and view fraction of the detail pane and
// converts between column index, alignment fraction, and pixel space.
//
// The virtual width of the full alignment is visibleWidth / viewFraction;
// the invariant 0 <= offset <= virtualWidth - visibleWidth and
// 0 < frac <= 1 holds after every operation.
type Viewport struct {
	offset float64 // scroll offset in pixels into the virtual width
	frac   float64 // fraction of the alignment currently visible, (0,1]
	width  float64 // available pixel width of the detail pane
}

// NewViewport creates a viewport showing the whole alignment.
func NewViewport(width float64) *Viewport {
	v := &Viewport{frac: 1, width: 1}
	v.SetWidth(width)
	return v
}

// Reset returns the viewport to its default: whole alignment visible,
// scrolled to the start.
func (v *Viewport) Reset() {
	v.offset = 0
	v.frac = 1
}

// SetWidth updates the available pixel width, preserving the visible
// fraction range. Non-positive widths fall back to 1 rather than divide
// by zero downstream.
func (v *Viewport) SetWidth(width float64) {
	start := v.StartFrac()
	if width < 1 {
		width = 1
	}
	v.width = width
	v.offset = start * v.virtualWidth()
	v.clampOffset()
}

// Width returns the available pixel width.
func (v *Viewport) Width() float64 {
	return v.width
}

// Fraction returns the current view fraction.
func (v *Viewport) Fraction() float64 {
	return v.frac
}

// Offset returns the current scroll offset in pixels.
func (v *Viewport) Offset() float64 {
	return v.offset
}

// virtualWidth is the pixel width the whole alignment would occupy at the
// current zoom level.
func (v *Viewport) virtualWidth() float64 {
	return v.width / v.frac
}

// StartFrac returns the alignment fraction at the left edge of the view.
func (v *Viewport) StartFrac() float64 {
	return v.offset / v.virtualWidth()
}

// EndFrac returns the alignment fraction at the right edge of the view.
func (v *Viewport) EndFrac() float64 {
	end := v.StartFrac() + v.frac
	if end > 1 {
		end = 1
	}
	return end
}

// StartCol returns the first visible column for an alignment of length l.
func (v *Viewport) StartCol(l int) int {
	return clampInt(int(math.Floor(v.StartFrac()*float64(l))), 0, l-1)
}

// EndCol returns the last visible column for an alignment of length l.
func (v *Viewport) EndCol(l int) int {
	return clampInt(int(math.Ceil(v.EndFrac()*float64(l)))-1, 0, l-1)
}

// VisibleCols returns how many columns are visible for an alignment of
// length l, 0 when there is nothing to show.
func (v *Viewport) VisibleCols(l int) int {
	if l <= 0 {
		return 0
	}
	return v.EndCol(l) - v.StartCol(l) + 1
}

// ZoomIn narrows the view by one zoom step, anchored at the view center.
func (v *Viewport) ZoomIn() {
	v.ZoomAtPoint(v.width/2, ZoomStep)
}

// ZoomOut widens the view by one zoom step, anchored at the view center.
func (v *Viewport) ZoomOut() {
	v.ZoomAtPoint(v.width/2, 1/ZoomStep)
}

// ZoomAtPoint applies a zoom factor to the view fraction while keeping the
// alignment position currently under the given pixel offset fixed on screen.
func (v *Viewport) ZoomAtPoint(px, factor float64) {
	if px < 0 {
		px = 0
	}
	if px > v.width {
		px = v.width
	}
	at := px / v.width
	anchor := v.StartFrac() + at*v.frac
	v.frac = clampFrac(v.frac * factor)
	start := anchor - at*v.frac
	v.offset = start * v.virtualWidth()
	v.clampOffset()
}

// SetFromSelection zooms the view to the fractional range [startFrac,
// endFrac]. The resulting fraction is clamped to the MinFraction floor.
func (v *Viewport) SetFromSelection(startFrac, endFrac float64) {
	startFrac = clamp01(startFrac)
	endFrac = clamp01(endFrac)
	if endFrac < startFrac {
		startFrac, endFrac = endFrac, startFrac
	}
	v.frac = clampFrac(endFrac - startFrac)
	v.offset = startFrac * v.virtualWidth()
	v.clampOffset()
}

// Pan shifts the visible range by delta, expressed as a fraction of the
// full alignment. The delta is reduced rather than the window clipped when
// the shift would push either bound outside [0,1].
func (v *Viewport) Pan(delta float64) {
	start := v.StartFrac()
	if start+delta < 0 {
		delta = -start
	}
	if start+delta+v.frac > 1 {
		delta = 1 - v.frac - start
	}
	v.offset = (start + delta) * v.virtualWidth()
	v.clampOffset()
}

// PanTo moves the left edge of the view to the given alignment fraction,
// clamped so the window stays inside [0,1].
func (v *Viewport) PanTo(startFrac float64) {
	v.Pan(startFrac - v.StartFrac())
}

// CenterOn centers the visible window on the given alignment fraction.
func (v *Viewport) CenterOn(frac float64) {
	v.PanTo(clamp01(frac) - v.frac/2)
}

func (v *Viewport) clampOffset() {
	max := v.virtualWidth() - v.width
	if max < 0 {
		max = 0
	}
	if v.offset < 0 {
		v.offset = 0
	}
	if v.offset > max {
		v.offset = max
	}
}

func clampFrac(f float64) float64 {
	if f < MinFraction {
		return MinFraction
	}
	if f > 1 {
		return 1
	}
	return f
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func clampInt(n, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
