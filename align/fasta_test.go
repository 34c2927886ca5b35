package align

import (
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	b := Parse(">ref\nACGT-ACGT\n>r2\nACG-AACGT\n")

	if b.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", b.NumRows())
	}
	if b.Width() != 9 {
		t.Errorf("Width() = %d, want 9", b.Width())
	}
	if b.Rows[0].Label != "ref" {
		t.Errorf("Rows[0].Label = %q, want 'ref'", b.Rows[0].Label)
	}
	if b.Rows[0].Seq != "ACGT-ACGT" {
		t.Errorf("Rows[0].Seq = %q", b.Rows[0].Seq)
	}
}

func TestParseMultilineSequence(t *testing.T) {
	b := Parse(">r1\nACGT\nACGT\n\n>r2\nAC\n")

	if b.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", b.NumRows())
	}
	if b.Rows[0].Seq != "ACGTACGT" {
		t.Errorf("Rows[0].Seq = %q, want concatenated 'ACGTACGT'", b.Rows[0].Seq)
	}
}

func TestParsePadsShortRows(t *testing.T) {
	b := Parse(">long\nACGTACGT\n>short\nAC\n")

	if b.Width() != 8 {
		t.Fatalf("Width() = %d, want 8", b.Width())
	}
	if b.Rows[1].Seq != "AC------" {
		t.Errorf("short row = %q, want right-padded 'AC------'", b.Rows[1].Seq)
	}
}

func TestParseNormalizes(t *testing.T) {
	b := Parse(">r\nac.gt\n")

	if b.Rows[0].Seq != "AC-GT" {
		t.Errorf("Seq = %q, want uppercased 'AC-GT' with '.' folded to '-'", b.Rows[0].Seq)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\n", "ACGT\nACGT\n"} {
		b := Parse(input)
		if !b.Empty() {
			t.Errorf("Parse(%q).Empty() = false, want true", input)
		}
		if b.NumRows() != 0 {
			t.Errorf("Parse(%q).NumRows() = %d, want 0", input, b.NumRows())
		}
	}
}

func TestParseLabelTrimmed(t *testing.T) {
	b := Parse(">  NM_001  descr  \nACGT\n")

	if b.Rows[0].Label != "NM_001  descr" {
		t.Errorf("Label = %q, want trimmed 'NM_001  descr'", b.Rows[0].Label)
	}
}

func TestReference(t *testing.T) {
	b := Parse(">first\nAC\n>second\nGT\n")
	ref, ok := b.Reference()
	if !ok || ref.Label != "first" {
		t.Errorf("Reference() = %q, %v; want 'first', true", ref.Label, ok)
	}

	if _, ok := Parse("").Reference(); ok {
		t.Error("Reference() on empty block should report ok=false")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	text := ">ref\nACGT-ACGT\n>r2\nACG-AACGT\n"
	b := Parse(text)
	if got := Format(b); got != text {
		t.Errorf("Format() = %q, want %q", got, text)
	}
	if Format(Parse("")) != "" {
		t.Error("Format() of empty block should be empty")
	}
}

func TestFormatRaw(t *testing.T) {
	b := Parse(">r2\nACG-AACGT\n")
	got := FormatRaw(b.Rows[0])
	if got != ">r2\nACGAACGT\n" {
		t.Errorf("FormatRaw() = %q", got)
	}
	if strings.Contains(got, "-") {
		t.Error("FormatRaw() must not contain gaps")
	}
}
