package view

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"msaview/align"
)

// DragKind discriminates the minimap drag gestures.
type DragKind int

const (
	DragSelect DragKind = iota
	DragResizeLeft
	DragResizeRight
	DragPan
)

// DragSession is one live pointer gesture on the minimap. It exists only
// between pointer-down and pointer-up; at most one is active at a time.
// The origin fields snapshot the pointer and viewport bounds at
// pointer-down so moves are computed against a fixed frame.
type DragSession struct {
	Kind        DragKind
	OriginFrac  float64 // pointer position at pointer-down, as a fraction of the minimap width
	OriginStart float64 // viewport start fraction at pointer-down
	OriginEnd   float64 // viewport end fraction at pointer-down
}

// Selection is the ephemeral fractional range built during a Selecting
// drag. It is cleared on commit or cancel and never touches the viewport
// until pointer-up.
type Selection struct {
	StartFrac float64
	EndFrac   float64
}

// Variant selects which minimap interactions are enabled.
type Variant int

const (
	// VariantFull enables resize handles, panning, and outside-click
	// recenter in addition to zoom-select.
	VariantFull Variant = iota
	// VariantSelectOnly treats every pointer-down as the start of a
	// new-range selection drag.
	VariantSelectOnly
)

// Minimap interaction geometry.
const (
	// handleZonePx is the grab zone around each viewport edge, in minimap
	// pixels, mapped to a fraction of the minimap width at pointer-down.
	handleZonePx = 10.0
	// collapsedFraction: at or above this view fraction the viewport is
	// effectively the whole alignment and a drag starts a new selection.
	collapsedFraction = 0.99
)

// Minimap is the fixed-size overview surface. It owns the pointer-drag
// state machine that mutates the viewport (and an ephemeral selection
// range) in response to pointer events in minimap pixel space.
type Minimap struct {
	vp      *Viewport
	width   float64
	variant Variant
	drag    *DragSession
	sel     *Selection
}

// NewMinimap creates a minimap controller driving the given viewport.
func NewMinimap(vp *Viewport, width float64, variant Variant) *Minimap {
	m := &Minimap{vp: vp, width: 1, variant: variant}
	m.SetWidth(width)
	return m
}

// SetWidth updates the minimap surface width in pixels. Pointer positions
// and the handle zone are interpreted against it.
func (m *Minimap) SetWidth(width float64) {
	if width < 1 {
		width = 1
	}
	m.width = width
}

// Dragging reports whether a drag session is live.
func (m *Minimap) Dragging() bool {
	return m.drag != nil
}

// Drag returns the live session, nil outside a gesture.
func (m *Minimap) Drag() *DragSession {
	return m.drag
}

// Selection returns the ephemeral selection range, nil outside a
// Selecting drag.
func (m *Minimap) Selection() *Selection {
	return m.sel
}

// PointerDown starts a drag session for the pointer at px. A pointer-down
// while a session is already live is ignored. Which gesture starts depends
// on where the pointer lands relative to the current viewport bounds:
// near an edge grabs a resize handle, inside the window pans, outside the
// window recenters the viewport there and continues as a pan, and a
// collapsed (fully zoomed-out) viewport always starts a new selection.
func (m *Minimap) PointerDown(px float64) {
	if m.drag != nil {
		return
	}
	pos := clamp01(px / m.width)
	s, e := m.vp.StartFrac(), m.vp.EndFrac()

	if m.variant == VariantSelectOnly {
		m.startDrag(DragSelect, pos, s, e)
		return
	}

	zone := handleZonePx / m.width
	switch {
	case math.Abs(pos-s) < zone && pos < e:
		m.startDrag(DragResizeLeft, pos, s, e)
	case math.Abs(pos-e) < zone && pos > s:
		m.startDrag(DragResizeRight, pos, s, e)
	case m.vp.Fraction() >= collapsedFraction:
		m.startDrag(DragSelect, pos, s, e)
	case pos >= s && pos <= e:
		m.startDrag(DragPan, pos, s, e)
	default:
		// Click outside the window: jump the viewport center there,
		// then continue as a pan from the new bounds.
		m.vp.CenterOn(pos)
		m.startDrag(DragPan, pos, m.vp.StartFrac(), m.vp.EndFrac())
	}
}

func (m *Minimap) startDrag(kind DragKind, pos, s, e float64) {
	m.drag = &DragSession{Kind: kind, OriginFrac: pos, OriginStart: s, OriginEnd: e}
	if kind == DragSelect {
		m.sel = &Selection{StartFrac: pos, EndFrac: pos}
	}
}

// PointerMove updates the live drag session for the pointer at px.
// Resize and pan commit directly to the viewport; a Selecting drag only
// updates the ephemeral selection range.
func (m *Minimap) PointerMove(px float64) {
	if m.drag == nil {
		return
	}
	pos := clamp01(px / m.width)

	switch m.drag.Kind {
	case DragResizeLeft:
		// The right bound stays put; the left one may not come within
		// MinFraction of it, so the window never inverts.
		e := m.drag.OriginEnd
		s := pos
		if s > e-MinFraction {
			s = e - MinFraction
		}
		if s < 0 {
			s = 0
		}
		m.vp.SetFromSelection(s, e)
	case DragResizeRight:
		s := m.drag.OriginStart
		e := pos
		if e < s+MinFraction {
			e = s + MinFraction
		}
		if e > 1 {
			e = 1
		}
		m.vp.SetFromSelection(s, e)
	case DragPan:
		m.vp.PanTo(m.drag.OriginStart + (pos - m.drag.OriginFrac))
	case DragSelect:
		lo, hi := m.drag.OriginFrac, pos
		if hi < lo {
			lo, hi = hi, lo
		}
		m.sel = &Selection{StartFrac: lo, EndFrac: hi}
	}
}

// PointerUp ends the live drag session. Resize and pan already committed
// on every move; a Selecting drag commits the selection to the viewport
// only when it is at least MinFraction wide, otherwise it is discarded as
// an accidental click. The ephemeral selection is cleared either way.
func (m *Minimap) PointerUp(px float64) {
	if m.drag == nil {
		return
	}
	m.PointerMove(px)
	if m.drag.Kind == DragSelect && m.sel != nil {
		if m.sel.EndFrac-m.sel.StartFrac >= MinFraction {
			m.vp.SetFromSelection(m.sel.StartFrac, m.sel.EndFrac)
		}
	}
	m.sel = nil
	m.drag = nil
}

// Cancel aborts any live drag session and discards the ephemeral
// selection, leaving the viewport as the last committed operation left it.
// Loading a new alignment or an explicit reset goes through here.
func (m *Minimap) Cancel() {
	m.drag = nil
	m.sel = nil
}

// Render draws the minimap strip: height rows of width cells covering the
// whole alignment. The top row shades the per-column GC fraction, the
// remaining rows show row coverage colored by the strongest overlay paint.
// The current viewport window, the ephemeral selection, and the resize
// handle edges are marked with background styles.
func (m *Minimap) Render(width, height int, block *align.Block, gc []float64, comp *Compositor, styles Styles) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	rows := make([]string, height)
	l := block.Width()
	if block.Empty() || l == 0 {
		for i := range rows {
			rows[i] = strings.Repeat(" ", width)
		}
		return rows
	}

	winStart := int(m.vp.StartFrac() * float64(width))
	winEnd := int(math.Ceil(m.vp.EndFrac()*float64(width))) - 1
	winEnd = clampInt(winEnd, 0, width-1)
	var selStart, selEnd = -1, -1
	if m.sel != nil {
		selStart = int(m.sel.StartFrac * float64(width))
		selEnd = clampInt(int(math.Ceil(m.sel.EndFrac*float64(width)))-1, 0, width-1)
	}

	// Rows below the GC strip split the alignment rows into bands.
	bands := height - 1
	if bands < 1 {
		bands = 1
	}
	perBand := (block.NumRows() + bands - 1) / bands
	if perBand < 1 {
		perBand = 1
	}

	for line := 0; line < height; line++ {
		var sb strings.Builder
		for cell := 0; cell < width; cell++ {
			c0 := cell * l / width
			c1 := (cell+1)*l/width - 1
			if c1 < c0 {
				c1 = c0
			}

			var ch string
			var style = styles.MinimapBase
			if line == 0 {
				ch = gcShade(meanGC(gc, c0, c1))
				style = styles.MinimapGC
			} else {
				r0 := (line - 1) * perBand
				r1 := r0 + perBand - 1
				ch, style = coverageCell(block, comp, r0, r1, c0, c1, styles)
			}

			switch {
			case cell >= selStart && cell <= selEnd:
				style = style.Inherit(styles.MinimapSelection)
			case cell == winStart || cell == winEnd:
				style = style.Inherit(styles.MinimapHandle)
			case cell > winStart && cell < winEnd:
				style = style.Inherit(styles.MinimapWindow)
			}
			sb.WriteString(style.Render(ch))
		}
		rows[line] = sb.String()
	}
	return rows
}

// coverageCell picks the glyph and style for one minimap cell covering
// rows [r0,r1] and columns [c0,c1].
func coverageCell(block *align.Block, comp *Compositor, r0, r1, c0, c1 int, styles Styles) (string, lipgloss.Style) {
	present := false
	best := PaintMatch
	for row := r0; row <= r1 && row < block.NumRows(); row++ {
		s, e, ok := comp.RowBounds(row)
		if !ok || e < c0 || s > c1 {
			continue
		}
		present = true
		if p := comp.StrongestIn(row, maxInt(s, c0), minInt(e, c1)); p > best {
			best = p
		}
	}
	if !present {
		return " ", styles.MinimapBase
	}
	return "▪", styles.PaintStyle(best)
}

// meanGC averages gc over the inclusive column range [c0, c1].
func meanGC(gc []float64, c0, c1 int) float64 {
	if len(gc) == 0 {
		return 0
	}
	sum, n := 0.0, 0
	for c := c0; c <= c1 && c < len(gc); c++ {
		sum += gc[c]
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// gcShade maps a GC fraction to a block shade character.
func gcShade(f float64) string {
	switch {
	case f < 0.2:
		return " "
	case f < 0.4:
		return "░"
	case f < 0.6:
		return "▒"
	case f < 0.8:
		return "▓"
	default:
		return "█"
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
