package align

import "testing"

func TestToGappedGapFreeIdentity(t *testing.T) {
	r := Row{Label: "r", Seq: "ACGTACGT"}
	for i := 0; i < 8; i++ {
		if got := r.ToGapped(i); got != i {
			t.Errorf("ToGapped(%d) = %d, want %d for gap-free row", i, got, i)
		}
	}
}

func TestToGappedSkipsGaps(t *testing.T) {
	// AC-GTAC: raw ACGTAC
	r := Row{Label: "r", Seq: "AC-GTAC"}
	want := []int{0, 1, 3, 4, 5, 6}
	for u, w := range want {
		if got := r.ToGapped(u); got != w {
			t.Errorf("ToGapped(%d) = %d, want %d", u, got, w)
		}
	}
}

func TestToGappedSentinel(t *testing.T) {
	r := Row{Label: "r", Seq: "AC-GTAC"}
	if got := r.ToGapped(6); got != 7 {
		t.Errorf("ToGapped(rawLen) = %d, want padded length 7 as sentinel", got)
	}
	if got := r.ToGapped(100); got != 7 {
		t.Errorf("ToGapped(100) = %d, want padded length 7 as sentinel", got)
	}
}

func TestToGappedMonotonic(t *testing.T) {
	r := Row{Label: "r", Seq: "-A--CG-T--"}
	prev := -1
	for u := 0; u <= r.RawLen(); u++ {
		g := r.ToGapped(u)
		if g < prev {
			t.Fatalf("ToGapped not monotonic: ToGapped(%d) = %d after %d", u, g, prev)
		}
		prev = g
	}
}

func TestCoordRoundTrip(t *testing.T) {
	r := Row{Label: "r", Seq: "AC--GT-ACG--T"}
	for u := 0; u < r.RawLen(); u++ {
		g := r.ToGapped(u)
		if back := r.ToUngapped(g); back != u {
			t.Errorf("ToUngapped(ToGapped(%d)) = %d, want %d", u, back, u)
		}
	}
}

func TestToUngappedClamps(t *testing.T) {
	r := Row{Label: "r", Seq: "AC-GT"}
	if got := r.ToUngapped(100); got != 4 {
		t.Errorf("ToUngapped(100) = %d, want raw length 4", got)
	}
}

func TestRawAndRawLen(t *testing.T) {
	r := Row{Label: "r", Seq: "-AC-GT-"}
	if r.Raw() != "ACGT" {
		t.Errorf("Raw() = %q, want 'ACGT'", r.Raw())
	}
	if r.RawLen() != 4 {
		t.Errorf("RawLen() = %d, want 4", r.RawLen())
	}
}

func TestBounds(t *testing.T) {
	r := Row{Label: "r", Seq: "--AC-GT--"}
	s, e, ok := r.Bounds()
	if !ok || s != 2 || e != 6 {
		t.Errorf("Bounds() = %d, %d, %v; want 2, 6, true", s, e, ok)
	}

	if _, _, ok := (Row{Label: "g", Seq: "----"}).Bounds(); ok {
		t.Error("Bounds() of all-gap row should report ok=false")
	}
}

func TestSpanToGapped(t *testing.T) {
	// Primer span raw [2,5) on AC-GTAC maps to gapped [3,6): one gap
	// inserted before raw index 2 shifts both bounds by one.
	r := Row{Label: "ref", Seq: "AC-GTAC"}
	got := Span{Start: 2, End: 5}.ToGapped(r)
	if got.Start != 3 || got.End != 6 {
		t.Errorf("ToGapped span = [%d,%d), want [3,6)", got.Start, got.End)
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 3, End: 6}
	if s.Contains(2) || !s.Contains(3) || !s.Contains(5) || s.Contains(6) {
		t.Error("Contains() should be true exactly on [3,6)")
	}
	if (Span{Start: 5, End: 3}).Len() != 0 {
		t.Error("Len() of inverted span should be 0")
	}
}
