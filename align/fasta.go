package align

import (
	"strings"
)

// Gap is the padding character marking absence of a base at a column.
const Gap = '-'

// Row is a single aligned sequence: a label and its gapped sequence,
// right-padded to the block width.
type Row struct {
	Label string
	Seq   string
}

// Block is an immutable multiple sequence alignment. All rows share the
// same padded width. Row 0 is the reference row, the basis for
// mismatch/indel coloring. A Block is replaced wholesale on new input,
// never mutated.
type Block struct {
	Rows  []Row
	width int
}

// Parse parses FASTA-formatted alignment text into a Block.
// A line beginning with '>' starts a new row (label = remainder, trimmed);
// subsequent lines are trimmed and concatenated until the next marker or
// end of input. Sequences are uppercased and '.' gaps are normalized to '-'.
// Rows shorter than the widest row are right-padded with gaps.
//
// Blank input or input with no marker yields a Block with no rows. That is
// "nothing to render", not an error.
func Parse(text string) *Block {
	var rows []Row
	var label string
	var seq strings.Builder
	inRecord := false

	flush := func() {
		if inRecord {
			rows = append(rows, Row{Label: label, Seq: seq.String()})
			seq.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			flush()
			label = strings.TrimSpace(line[1:])
			inRecord = true
			continue
		}
		if !inRecord || line == "" {
			continue
		}
		seq.WriteString(normalize(line))
	}
	flush()

	// Pad every row to the widest observed length.
	width := 0
	for _, r := range rows {
		if len(r.Seq) > width {
			width = len(r.Seq)
		}
	}
	for i, r := range rows {
		if len(r.Seq) < width {
			rows[i].Seq = r.Seq + strings.Repeat(string(Gap), width-len(r.Seq))
		}
	}

	return &Block{Rows: rows, width: width}
}

// normalize uppercases sequence text and folds '.' gaps into '-'.
func normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			c = Gap
		} else if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Width returns the shared padded width of the block (L), 0 for an empty block.
func (b *Block) Width() int {
	return b.width
}

// NumRows returns the number of rows.
func (b *Block) NumRows() int {
	return len(b.Rows)
}

// Empty reports whether the block has nothing to render.
func (b *Block) Empty() bool {
	return len(b.Rows) == 0 || b.width == 0
}

// Reference returns the reference row (row 0) and whether one exists.
func (b *Block) Reference() (Row, bool) {
	if len(b.Rows) == 0 {
		return Row{}, false
	}
	return b.Rows[0], true
}

// IsGap reports whether c is the gap character.
func IsGap(c byte) bool {
	return c == Gap
}
