package view

import "testing"

func TestModeInitialBars(t *testing.T) {
	c := NewModeController(100, 15)
	if c.Mode() != ModeBars {
		t.Errorf("initial mode = %v, want bars", c.Mode())
	}
}

func TestModeSwitchToLetters(t *testing.T) {
	c := NewModeController(100, 15)

	// Inside the deadband nothing happens.
	if c.Update(85) != ModeBars {
		t.Error("mode switched at 85, want bars until below 85")
	}
	if c.Update(84) != ModeLetters {
		t.Error("mode did not switch to letters at 84")
	}
}

func TestModeSwitchBackToBars(t *testing.T) {
	c := NewModeController(100, 15)
	c.Update(50) // letters

	if c.Update(115) != ModeLetters {
		t.Error("mode switched at 115, want letters until above 115")
	}
	if c.Update(116) != ModeBars {
		t.Error("mode did not switch back to bars at 116")
	}
}

func TestModeDeadbandPreventsOscillation(t *testing.T) {
	c := NewModeController(100, 15)
	c.Update(50) // letters

	// Hovering inside the deadband never flips the mode.
	for _, n := range []int{90, 100, 110, 115, 86, 100, 114} {
		if c.Update(n) != ModeLetters {
			t.Fatalf("mode flipped inside deadband at %d", n)
		}
	}
}

func TestModeMonotoneSequenceSwitchesOnce(t *testing.T) {
	c := NewModeController(100, 15)

	transitions := 0
	prev := c.Mode()
	for n := 200; n >= 0; n-- {
		if m := c.Update(n); m != prev {
			transitions++
			prev = m
		}
	}
	if transitions != 1 {
		t.Errorf("decreasing sweep produced %d transitions, want 1", transitions)
	}

	transitions = 0
	for n := 0; n <= 200; n++ {
		if m := c.Update(n); m != prev {
			transitions++
			prev = m
		}
	}
	if transitions != 1 {
		t.Errorf("increasing sweep produced %d transitions, want 1", transitions)
	}
}

func TestModeToggleAndReset(t *testing.T) {
	c := NewModeController(0, 0) // fall back to defaults
	if c.Toggle() != ModeLetters {
		t.Error("Toggle() from bars should yield letters")
	}
	c.Reset()
	if c.Mode() != ModeBars {
		t.Error("Reset() should return to bars")
	}
}

func TestModeString(t *testing.T) {
	if ModeBars.String() != "bars" || ModeLetters.String() != "letters" {
		t.Error("Mode.String() names wrong")
	}
}
