package view

import "msaview/align"

// Window describes the currently visible slice of the alignment. It is
// pushed to subscribers on every visible-window change so downstream
// computations (homology search, primer design) can scope themselves to
// exactly the visible region.
type Window struct {
	ReferenceLabel string
	RawSlice       string // visible reference bases, gaps removed
	StartCol       int
	EndCol         int
}

// CurrentWindow derives the window from the block and viewport. An empty
// block yields a zero window.
func CurrentWindow(block *align.Block, vp *Viewport) Window {
	ref, ok := block.Reference()
	if !ok || block.Width() == 0 {
		return Window{}
	}
	start := vp.StartCol(block.Width())
	end := vp.EndCol(block.Width())
	slice := ref.Seq[start:minInt(end+1, len(ref.Seq))]
	raw := make([]byte, 0, len(slice))
	for i := 0; i < len(slice); i++ {
		if !align.IsGap(slice[i]) {
			raw = append(raw, slice[i])
		}
	}
	return Window{
		ReferenceLabel: ref.Label,
		RawSlice:       string(raw),
		StartCol:       start,
		EndCol:         end,
	}
}

// WindowNotifier is a small subject for visible-window changes. Publish
// drops consecutive duplicates, so subscribers only hear real changes.
type WindowNotifier struct {
	subs []func(Window)
	last Window
	sent bool
}

// Subscribe registers a callback. Callbacks run synchronously on Publish,
// in registration order.
func (n *WindowNotifier) Subscribe(fn func(Window)) {
	n.subs = append(n.subs, fn)
}

// Publish pushes the window to all subscribers unless it equals the last
// published value.
func (n *WindowNotifier) Publish(w Window) {
	if n.sent && w == n.last {
		return
	}
	n.last = w
	n.sent = true
	for _, fn := range n.subs {
		fn(w)
	}
}

// Reset forgets the last published value so the next Publish always fires.
func (n *WindowNotifier) Reset() {
	n.sent = false
}
