package view

// Mode selects how the detail pane draws the alignment.
type Mode int

const (
	// ModeBars draws one presence bar per row with colored cells only at
	// annotated positions. Cheap at low zoom over thousands of columns.
	ModeBars Mode = iota
	// ModeLetters draws one glyph per visible base per row.
	ModeLetters
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == ModeLetters {
		return "letters"
	}
	return "bars"
}

// Default display-mode thresholds: switch to letters below base-hysteresis
// visible bases, back to bars above base+hysteresis. The deadband keeps a
// drag hovering near the boundary from flickering between modes.
const (
	DefaultModeBase       = 100
	DefaultModeHysteresis = 15
)

// ModeController chooses bars vs letters rendering from the visible base
// count, with hysteresis. Initial mode is bars.
type ModeController struct {
	mode       Mode
	base       int
	hysteresis int
}

// NewModeController creates a controller with the given thresholds.
// Non-positive arguments fall back to the defaults.
func NewModeController(base, hysteresis int) *ModeController {
	if base <= 0 {
		base = DefaultModeBase
	}
	if hysteresis <= 0 {
		hysteresis = DefaultModeHysteresis
	}
	return &ModeController{mode: ModeBars, base: base, hysteresis: hysteresis}
}

// Mode returns the current display mode.
func (c *ModeController) Mode() Mode {
	return c.mode
}

// Update feeds the controller a new visible base count and returns the
// resulting mode. A transition happens only when the count crosses the
// threshold on the far side of the deadband.
func (c *ModeController) Update(visibleBases int) Mode {
	switch c.mode {
	case ModeBars:
		if visibleBases < c.base-c.hysteresis {
			c.mode = ModeLetters
		}
	case ModeLetters:
		if visibleBases > c.base+c.hysteresis {
			c.mode = ModeBars
		}
	}
	return c.mode
}

// Toggle flips the mode explicitly, bypassing the thresholds.
func (c *ModeController) Toggle() Mode {
	if c.mode == ModeBars {
		c.mode = ModeLetters
	} else {
		c.mode = ModeBars
	}
	return c.mode
}

// Reset returns the controller to its initial bars state.
func (c *ModeController) Reset() {
	c.mode = ModeBars
}
