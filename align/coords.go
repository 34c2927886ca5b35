package align

// ToGapped maps an index in the row's raw (gap-free) sequence to its column
// in the shared gapped coordinate frame: the column holding the u-th non-gap
// character. If u is at or past the end of the raw sequence, the row's padded
// length is returned as an end-of-sequence sentinel. Out-of-range lookups are
// not an error.
func (r Row) ToGapped(u int) int {
	if u < 0 {
		u = 0
	}
	count := 0
	for i := 0; i < len(r.Seq); i++ {
		if IsGap(r.Seq[i]) {
			continue
		}
		if count == u {
			return i
		}
		count++
	}
	return len(r.Seq)
}

// ToUngapped is the inverse of ToGapped: the number of non-gap characters
// strictly before the given column. Columns past the end of the row count
// the whole raw sequence.
func (r Row) ToUngapped(col int) int {
	if col > len(r.Seq) {
		col = len(r.Seq)
	}
	count := 0
	for i := 0; i < col; i++ {
		if !IsGap(r.Seq[i]) {
			count++
		}
	}
	return count
}

// RawLen returns the number of non-gap characters in the row.
func (r Row) RawLen() int {
	return r.ToUngapped(len(r.Seq))
}

// Raw returns the row's sequence with all gaps removed.
func (r Row) Raw() string {
	var sb []byte
	for i := 0; i < len(r.Seq); i++ {
		if !IsGap(r.Seq[i]) {
			sb = append(sb, r.Seq[i])
		}
	}
	return string(sb)
}

// Bounds returns the first and last non-gap columns of the row, inclusive.
// ok is false for a row that is entirely gaps. Everything outside
// [start, end] is leading or trailing padding, not sequence.
func (r Row) Bounds() (start, end int, ok bool) {
	start = -1
	for i := 0; i < len(r.Seq); i++ {
		if !IsGap(r.Seq[i]) {
			if start < 0 {
				start = i
			}
			end = i
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	return start, end, true
}

// Span is a half-open [Start, End) range in a row's raw coordinate space.
type Span struct {
	Start int
	End   int
}

// ToGapped maps a raw-coordinate span to gapped columns via the row's
// coordinate frame. The end bound maps through the same rule, so a span
// reaching the end of the raw sequence maps its End to the padded length.
func (s Span) ToGapped(r Row) Span {
	return Span{Start: r.ToGapped(s.Start), End: r.ToGapped(s.End)}
}

// Contains reports whether i falls inside the half-open span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Len returns the span length, never negative.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}
