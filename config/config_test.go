package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Display.ModeBase != 100 || cfg.Display.ModeHysteresis != 15 {
		t.Errorf("mode thresholds = %d/%d, want 100/15",
			cfg.Display.ModeBase, cfg.Display.ModeHysteresis)
	}
	if cfg.Minimap.Interaction != "full" {
		t.Errorf("interaction = %q, want full", cfg.Minimap.Interaction)
	}
	if cfg.Minimap.Height <= 0 {
		t.Errorf("minimap height = %d, want positive", cfg.Minimap.Height)
	}
	if cfg.Theme.MismatchBg == "" || cfg.Theme.PrimerBg == "" {
		t.Error("default theme has empty colors")
	}
}

func TestPartialFileBackfilled(t *testing.T) {
	src := `
[display]
mode_base = 60

[minimap]
interaction = "select"

[theme]
mismatch_bg = "#ff0000"
`
	cfg := DefaultConfig()
	if _, err := toml.Decode(src, cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	cfg.fillDefaults()

	if cfg.Display.ModeBase != 60 {
		t.Errorf("mode_base = %d, want file value 60", cfg.Display.ModeBase)
	}
	if cfg.Display.ModeHysteresis != 15 {
		t.Errorf("mode_hysteresis = %d, want default 15", cfg.Display.ModeHysteresis)
	}
	if cfg.Minimap.Interaction != "select" {
		t.Errorf("interaction = %q, want select", cfg.Minimap.Interaction)
	}
	if cfg.Theme.MismatchBg != "#ff0000" {
		t.Errorf("mismatch_bg = %q, want file value", cfg.Theme.MismatchBg)
	}
	if cfg.Theme.IndelBg != DefaultConfig().Theme.IndelBg {
		t.Errorf("indel_bg = %q, want default backfill", cfg.Theme.IndelBg)
	}
}

func TestFillDefaultsRejectsBadValues(t *testing.T) {
	cfg := &Config{}
	cfg.Display.ModeBase = -5
	cfg.Minimap.Interaction = "wheel"
	cfg.fillDefaults()

	if cfg.Display.ModeBase != 100 {
		t.Errorf("mode_base = %d, want negative value replaced", cfg.Display.ModeBase)
	}
	if cfg.Minimap.Interaction != "full" {
		t.Errorf("interaction = %q, want unknown value replaced", cfg.Minimap.Interaction)
	}
	if cfg.Display.LabelWidth != 12 {
		t.Errorf("label_width = %d, want default 12", cfg.Display.LabelWidth)
	}
}

func TestConfigLoadError(t *testing.T) {
	inner := errors.New("near line 3")
	err := &ConfigLoadError{FilePath: "/tmp/config.toml", Err: inner}
	if !strings.Contains(err.Error(), "/tmp/config.toml") {
		t.Errorf("Error() = %q, want file path included", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("Unwrap does not expose the inner error")
	}
}
