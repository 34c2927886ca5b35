package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"msaview/align"
	"msaview/view"
)

// StatusBar is the bottom status line: file and reference on the left,
// visible range, mode, and selection statistics on the right, with room
// for a transient message in between.
type StatusBar struct {
	filename  string
	reference string
	startCol  int
	endCol    int
	total     int
	mode      string
	counts    align.Counts
	message   string
	width     int
	styles    view.Styles
}

// NewStatusBar creates a status bar.
func NewStatusBar(styles view.Styles) *StatusBar {
	return &StatusBar{styles: styles, width: 80}
}

// SetWidth sets the render width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetFilename sets the displayed file name.
func (s *StatusBar) SetFilename(name string) {
	s.filename = name
}

// SetReference sets the reference row label.
func (s *StatusBar) SetReference(label string) {
	s.reference = label
}

// SetRange sets the visible column range (1-indexed for display) and the
// total alignment width.
func (s *StatusBar) SetRange(start, end, total int) {
	s.startCol = start
	s.endCol = end
	s.total = total
}

// SetMode sets the display-mode name.
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// SetCounts sets the selection statistics for the visible range.
func (s *StatusBar) SetCounts(c align.Counts) {
	s.counts = c
}

// SetMessage sets a transient message, cleared by the next one.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// ClearMessage drops the transient message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
}

// Render draws the status line at the configured width.
func (s *StatusBar) Render() string {
	if s.width <= 0 {
		return ""
	}
	name := s.filename
	if name == "" {
		name = "(no alignment)"
	}
	left := " " + name
	if s.reference != "" {
		left += "  ref:" + s.reference
	}

	right := ""
	if s.total > 0 {
		right = fmt.Sprintf("%d-%d/%d  %s  GC %.1f%%  A%d C%d G%d T%d ",
			s.startCol, s.endCol, s.total, s.mode, s.counts.GCPercent(),
			s.counts.A, s.counts.C, s.counts.G, s.counts.T)
	}

	mid := ""
	if s.message != "" {
		mid = "  " + s.message
	}

	used := runewidth.StringWidth(left) + runewidth.StringWidth(mid) + runewidth.StringWidth(right)
	pad := s.width - used
	if pad < 0 {
		// Drop the message first, then truncate the left side.
		mid = ""
		pad = s.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
		if pad < 0 {
			left = runewidth.Truncate(left, maxOf(s.width-runewidth.StringWidth(right), 0), "…")
			pad = s.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
			if pad < 0 {
				pad = 0
			}
		}
	}

	line := s.styles.Status.Render(left) +
		s.styles.Message.Render(mid) +
		s.styles.Status.Render(strings.Repeat(" ", pad)) +
		s.styles.StatusAccent.Render(right)
	return line
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
