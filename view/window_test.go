package view

import (
	"testing"

	"msaview/align"
)

func TestCurrentWindowFullView(t *testing.T) {
	b := align.Parse(">ref\nAC-GTAC\n>q\nACAGTAC\n")
	vp := NewViewport(100)

	w := CurrentWindow(b, vp)
	if w.ReferenceLabel != "ref" {
		t.Errorf("label = %q, want ref", w.ReferenceLabel)
	}
	if w.RawSlice != "ACGTAC" {
		t.Errorf("raw slice = %q, want gaps removed", w.RawSlice)
	}
	if w.StartCol != 0 || w.EndCol != 6 {
		t.Errorf("cols = [%d,%d], want [0,6]", w.StartCol, w.EndCol)
	}
}

func TestCurrentWindowZoomed(t *testing.T) {
	b := align.Parse(">ref\nAC-GTAC\n>q\nACAGTAC\n")
	vp := NewViewport(100)
	vp.SetFromSelection(0.25, 0.75)

	// Columns floor(0.25*7)=1 .. ceil(0.75*7)-1=5: "C-GTA" minus the gap.
	w := CurrentWindow(b, vp)
	if w.StartCol != 1 || w.EndCol != 5 {
		t.Fatalf("cols = [%d,%d], want [1,5]", w.StartCol, w.EndCol)
	}
	if w.RawSlice != "CGTA" {
		t.Errorf("raw slice = %q, want CGTA", w.RawSlice)
	}
}

func TestCurrentWindowEmptyBlock(t *testing.T) {
	vp := NewViewport(100)
	w := CurrentWindow(align.Parse(""), vp)
	if w != (Window{}) {
		t.Errorf("window = %+v, want zero value for empty block", w)
	}
}

func TestNotifierPublishes(t *testing.T) {
	var n WindowNotifier
	var got []Window
	n.Subscribe(func(w Window) { got = append(got, w) })

	a := Window{ReferenceLabel: "ref", StartCol: 0, EndCol: 9}
	b := Window{ReferenceLabel: "ref", StartCol: 5, EndCol: 14}
	n.Publish(a)
	n.Publish(b)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("published %v, want [a b]", got)
	}
}

func TestNotifierDropsDuplicates(t *testing.T) {
	var n WindowNotifier
	calls := 0
	n.Subscribe(func(Window) { calls++ })

	w := Window{ReferenceLabel: "ref", EndCol: 9}
	n.Publish(w)
	n.Publish(w)
	n.Publish(w)
	if calls != 1 {
		t.Errorf("calls = %d, want consecutive duplicates dropped", calls)
	}

	n.Publish(Window{ReferenceLabel: "ref", EndCol: 5})
	n.Publish(w)
	if calls != 3 {
		t.Errorf("calls = %d, want non-consecutive repeats delivered", calls)
	}
}

func TestNotifierResetRefires(t *testing.T) {
	var n WindowNotifier
	calls := 0
	n.Subscribe(func(Window) { calls++ })

	w := Window{ReferenceLabel: "ref"}
	n.Publish(w)
	n.Reset()
	n.Publish(w)
	if calls != 2 {
		t.Errorf("calls = %d, want Publish to fire again after Reset", calls)
	}
}

func TestNotifierSubscriberOrder(t *testing.T) {
	var n WindowNotifier
	var order []int
	n.Subscribe(func(Window) { order = append(order, 1) })
	n.Subscribe(func(Window) { order = append(order, 2) })

	n.Publish(Window{ReferenceLabel: "ref"})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want registration order", order)
	}
}
