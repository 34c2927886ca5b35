package view

import "msaview/align"

// Paint is the per-cell paint decision of the overlay compositor. Higher
// values win when a cell qualifies for more than one.
type Paint uint8

const (
	PaintMatch    Paint = iota // neutral styling
	PaintMismatch              // base differs from the reference base
	PaintIndel                 // insertion relative to the reference, or internal deletion
	PaintPrimer                // inside a primer span on the reference row
)

// rowBounds caches a row's first and last non-gap columns so internal
// deletions can be told apart from leading/trailing padding.
type rowBounds struct {
	start, end int
	ok         bool
}

// Compositor resolves the paint for every cell of the alignment from the
// row set, the reference row, and the active primer spans. It holds no
// viewport state; callers ask about whatever cells they draw.
type Compositor struct {
	block   *align.Block
	ref     align.Row
	hasRef  bool
	bounds  []rowBounds
	primers []align.Span // gapped columns, reference row frame
}

// NewCompositor builds a compositor for the block, precomputing per-row
// sequence bounds in one pass.
func NewCompositor(block *align.Block) *Compositor {
	c := &Compositor{block: block}
	c.ref, c.hasRef = block.Reference()
	c.bounds = make([]rowBounds, block.NumRows())
	for i, r := range block.Rows {
		s, e, ok := r.Bounds()
		c.bounds[i] = rowBounds{start: s, end: e, ok: ok}
	}
	return c
}

// SetPrimers installs primer spans given in the reference row's raw
// coordinate space. They are mapped to gapped columns here, once, and
// consumed read-only afterwards. A no-reference block ignores the call.
func (c *Compositor) SetPrimers(spans ...align.Span) {
	c.primers = nil
	if !c.hasRef {
		return
	}
	for _, s := range spans {
		if s.Len() == 0 {
			continue
		}
		c.primers = append(c.primers, s.ToGapped(c.ref))
	}
}

// ClearPrimers removes all primer spans.
func (c *Compositor) ClearPrimers() {
	c.primers = nil
}

// HasPrimers reports whether any primer span is active.
func (c *Compositor) HasPrimers() bool {
	return len(c.primers) > 0
}

// RowBounds returns the row's first and last non-gap columns; ok is false
// for an all-gap row or an out-of-range index.
func (c *Compositor) RowBounds(row int) (start, end int, ok bool) {
	if row < 0 || row >= len(c.bounds) {
		return 0, 0, false
	}
	b := c.bounds[row]
	return b.start, b.end, b.ok
}

// PaintAt resolves the paint for one cell. Exactly one paint wins, highest
// priority first: primer, then insertion/internal deletion, then mismatch,
// then neutral match. Cells outside the block paint as match.
func (c *Compositor) PaintAt(row, col int) Paint {
	if row < 0 || row >= c.block.NumRows() {
		return PaintMatch
	}
	seq := c.block.Rows[row].Seq
	if col < 0 || col >= len(seq) {
		return PaintMatch
	}

	// Primer spans apply to the reference row only.
	if row == 0 {
		for _, p := range c.primers {
			if p.Contains(col) {
				return PaintPrimer
			}
		}
	}

	if !c.hasRef || col >= len(c.ref.Seq) {
		return PaintMatch
	}
	rowGap := align.IsGap(seq[col])
	refGap := align.IsGap(c.ref.Seq[col])

	switch {
	case refGap && !rowGap:
		// The row has a base where the reference has none: insertion.
		return PaintIndel
	case rowGap:
		// A gap inside the row's own sequence extent is an internal
		// deletion; leading/trailing pad gaps stay unpainted.
		b := c.bounds[row]
		if b.ok && col >= b.start && col <= b.end {
			return PaintIndel
		}
		return PaintMatch
	case !refGap && !baseEqual(seq[col], c.ref.Seq[col]):
		return PaintMismatch
	}
	return PaintMatch
}

// StrongestIn returns the highest-priority paint over the inclusive column
// range [startCol, endCol] of a row. Bars mode uses it to color one cell
// covering many columns.
func (c *Compositor) StrongestIn(row, startCol, endCol int) Paint {
	best := PaintMatch
	for col := startCol; col <= endCol; col++ {
		if p := c.PaintAt(row, col); p > best {
			best = p
			if best == PaintPrimer {
				break
			}
		}
	}
	return best
}

// baseEqual compares two bases case-insensitively.
func baseEqual(a, b byte) bool {
	if a >= 'a' && a <= 'z' {
		a -= 'a' - 'A'
	}
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return a == b
}
