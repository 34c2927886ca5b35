package align

// ColumnGC computes the GC fraction of every alignment column: the count of
// G/C bases over the count of non-gap bases at that column, across all rows.
// Columns with no non-gap bases report 0. Single pass over rows x width,
// recomputed only when the block changes.
func ColumnGC(b *Block) []float64 {
	gc := make([]float64, b.width)
	if b.Empty() {
		return gc
	}
	for col := 0; col < b.width; col++ {
		bases := 0
		strong := 0
		for _, r := range b.Rows {
			if col >= len(r.Seq) || IsGap(r.Seq[col]) {
				continue
			}
			bases++
			switch r.Seq[col] {
			case 'G', 'C', 'g', 'c':
				strong++
			}
		}
		if bases > 0 {
			gc[col] = float64(strong) / float64(bases)
		}
	}
	return gc
}

// Counts holds per-base totals over a column range.
type Counts struct {
	A, C, G, T int
	Other      int // non-gap characters that are not A/C/G/T (N, ambiguity codes)
}

// Total returns the number of non-gap characters counted.
func (c Counts) Total() int {
	return c.A + c.C + c.G + c.T + c.Other
}

// GCPercent returns the G+C share of all counted bases as a percentage,
// 0 when nothing was counted.
func (c Counts) GCPercent() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.G+c.C) / float64(total) * 100
}

// BaseCounts tallies bases across all rows over the inclusive column range
// [startCol, endCol]. Out-of-range bounds are clamped; an empty block or an
// inverted range yields zero counts.
func BaseCounts(b *Block, startCol, endCol int) Counts {
	var c Counts
	if b.Empty() {
		return c
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol >= b.width {
		endCol = b.width - 1
	}
	for _, r := range b.Rows {
		for col := startCol; col <= endCol && col < len(r.Seq); col++ {
			switch r.Seq[col] {
			case 'A', 'a':
				c.A++
			case 'C', 'c':
				c.C++
			case 'G', 'g':
				c.G++
			case 'T', 't':
				c.T++
			case Gap:
			default:
				c.Other++
			}
		}
	}
	return c
}
