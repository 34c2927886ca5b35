package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"msaview/align"
)

// DefaultLabelWidth is the cell width of the row-label column in the
// detail pane.
const DefaultLabelWidth = 12

// Renderer draws the scrollable, virtualized detail view. Only columns
// intersecting the viewport's visible range are ever touched; in bars mode
// one cell aggregates many columns so the per-frame cost stays bounded at
// low zoom over thousands of columns.
type Renderer struct {
	styles     Styles
	labelWidth int
}

// NewRenderer creates a detail renderer.
func NewRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles, labelWidth: DefaultLabelWidth}
}

// SetStyles updates the styles for runtime theme changes.
func (r *Renderer) SetStyles(styles Styles) {
	r.styles = styles
}

// LabelWidth returns the width reserved for row labels; only pixels right
// of it belong to the sequence area.
func (r *Renderer) LabelWidth() int {
	return r.labelWidth
}

// Render draws the visible window as height lines of width cells: a ruler
// line followed by one line per row. Rows beyond the height are clipped.
// Degenerate geometry (zero width, empty block) degrades to blank lines,
// never an error.
func (r *Renderer) Render(block *align.Block, comp *Compositor, vp *Viewport, mode Mode, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	lines := make([]string, 0, height)
	seqWidth := width - r.labelWidth
	if seqWidth < 1 {
		seqWidth = 1
	}
	l := block.Width()
	if block.Empty() || l == 0 {
		for len(lines) < height {
			lines = append(lines, strings.Repeat(" ", width))
		}
		return lines
	}

	startCol := vp.StartCol(l)
	endCol := vp.EndCol(l)

	lines = append(lines, r.rulerLine(startCol, endCol, seqWidth))
	for row := 0; row < block.NumRows() && len(lines) < height; row++ {
		label := runewidth.Truncate(block.Rows[row].Label, r.labelWidth-1, "…")
		label = runewidth.FillRight(label, r.labelWidth)
		var body string
		if mode == ModeLetters {
			body = r.lettersLine(block, comp, row, startCol, endCol, seqWidth)
		} else {
			body = r.barsLine(block, comp, row, startCol, endCol, seqWidth)
		}
		lines = append(lines, r.styles.Label.Render(label)+body)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}

// rulerLine draws column numbers for the visible range with a tick every
// ten cells. A zero-length range degrades to a blank ruler.
func (r *Renderer) rulerLine(startCol, endCol, seqWidth int) string {
	var sb strings.Builder
	n := endCol - startCol + 1
	if n <= 0 {
		return strings.Repeat(" ", r.labelWidth+seqWidth)
	}
	left := fmt.Sprintf("%d", startCol+1)
	right := fmt.Sprintf("%d", endCol+1)
	body := make([]byte, seqWidth)
	for i := range body {
		if i%10 == 0 {
			body[i] = '|'
		} else {
			body[i] = '.'
		}
	}
	copy(body, left)
	if len(right) < seqWidth-len(left) {
		copy(body[seqWidth-len(right):], right)
	}
	sb.WriteString(strings.Repeat(" ", r.labelWidth))
	sb.WriteString(string(body))
	return r.styles.Ruler.Render(sb.String())
}

// lettersLine draws one styled glyph per visible base.
func (r *Renderer) lettersLine(block *align.Block, comp *Compositor, row, startCol, endCol, seqWidth int) string {
	seq := block.Rows[row].Seq
	var sb strings.Builder
	cells := 0
	for col := startCol; col <= endCol && cells < seqWidth; col++ {
		ch := byte(align.Gap)
		if col < len(seq) {
			ch = seq[col]
		}
		sb.WriteString(r.styles.PaintStyle(comp.PaintAt(row, col)).Render(string(ch)))
		cells++
	}
	if cells < seqWidth {
		sb.WriteString(strings.Repeat(" ", seqWidth-cells))
	}
	return sb.String()
}

// barsLine draws the row's presence bar with colored cells only where the
// covered columns carry an annotation.
func (r *Renderer) barsLine(block *align.Block, comp *Compositor, row, startCol, endCol, seqWidth int) string {
	n := endCol - startCol + 1
	rowStart, rowEnd, ok := comp.RowBounds(row)
	var sb strings.Builder
	for cell := 0; cell < seqWidth; cell++ {
		c0 := startCol + cell*n/seqWidth
		c1 := startCol + (cell+1)*n/seqWidth - 1
		if c1 < c0 {
			c1 = c0
		}
		if !ok || c1 < rowStart || c0 > rowEnd {
			sb.WriteString(" ")
			continue
		}
		p := comp.StrongestIn(row, maxInt(c0, rowStart), minInt(c1, rowEnd))
		if p == PaintMatch {
			sb.WriteString(r.styles.Bar.Render("█"))
		} else {
			sb.WriteString(r.styles.PaintStyle(p).Render(" "))
		}
	}
	return sb.String()
}
