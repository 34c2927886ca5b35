package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the viewer configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Minimap MinimapConfig `toml:"minimap"`
	Theme   ThemeConfig   `toml:"theme"`
}

// DisplayConfig holds detail-pane settings.
type DisplayConfig struct {
	// ModeBase and ModeHysteresis control the bars/letters switch: below
	// base-hysteresis visible bases the view shows letters, above
	// base+hysteresis it shows bars.
	ModeBase       int `toml:"mode_base"`
	ModeHysteresis int `toml:"mode_hysteresis"`
	LabelWidth     int `toml:"label_width"`
}

// MinimapConfig holds minimap settings.
type MinimapConfig struct {
	// Interaction selects the pointer behavior: "full" enables resize
	// handles, pan, and outside-click recenter; "select" makes every
	// drag a new-range selection.
	Interaction string `toml:"interaction"`
	// Height of the minimap strip in terminal rows.
	Height int `toml:"height"`
	// Kitty enables the inline raster minimap on terminals speaking the
	// Kitty graphics protocol.
	Kitty bool `toml:"kitty"`
}

// ThemeConfig holds the color palette. Values are ANSI palette indexes or
// #RRGGBB hex strings.
type ThemeConfig struct {
	MismatchBg  string `toml:"mismatch_bg"`
	IndelBg     string `toml:"indel_bg"`
	PrimerBg    string `toml:"primer_bg"`
	LabelFg     string `toml:"label_fg"`
	RulerFg     string `toml:"ruler_fg"`
	BarFg       string `toml:"bar_fg"`
	GCFg        string `toml:"gc_fg"`
	WindowBg    string `toml:"window_bg"`
	HandleBg    string `toml:"handle_bg"`
	SelectionBg string `toml:"selection_bg"`
	StatusBg    string `toml:"status_bg"`
	StatusFg    string `toml:"status_fg"`
	AccentFg    string `toml:"accent_fg"`
	MessageFg   string `toml:"message_fg"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ModeBase:       100,
			ModeHysteresis: 15,
			LabelWidth:     12,
		},
		Minimap: MinimapConfig{
			Interaction: "full",
			Height:      3,
			Kitty:       false,
		},
		Theme: ThemeConfig{
			MismatchBg:  "#d23b3b",
			IndelBg:     "#8a63d2",
			PrimerBg:    "#d2973b",
			LabelFg:     "250",
			RulerFg:     "244",
			BarFg:       "245",
			GCFg:        "37",
			WindowBg:    "238",
			HandleBg:    "31",
			SelectionBg: "24",
			StatusBg:    "236",
			StatusFg:    "252",
			AccentFg:    "45",
			MessageFg:   "220",
		},
	}
}

// ConfigLoadError wraps a config parse failure with the file it came from,
// so the UI can point the user at the right file.
type ConfigLoadError struct {
	FilePath string
	Err      error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("config %s: %v", e.FilePath, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// configPath returns the config file location under the user config dir.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "msaview", "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist. A malformed file returns the defaults together with a
// *ConfigLoadError so the caller can surface it without losing a working
// configuration.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return DefaultConfig(), &ConfigLoadError{FilePath: path, Err: err}
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// fillDefaults backfills zero values left by a partial config file.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Display.ModeBase <= 0 {
		c.Display.ModeBase = def.Display.ModeBase
	}
	if c.Display.ModeHysteresis <= 0 {
		c.Display.ModeHysteresis = def.Display.ModeHysteresis
	}
	if c.Display.LabelWidth <= 0 {
		c.Display.LabelWidth = def.Display.LabelWidth
	}
	if c.Minimap.Interaction != "select" && c.Minimap.Interaction != "full" {
		c.Minimap.Interaction = def.Minimap.Interaction
	}
	if c.Minimap.Height <= 0 {
		c.Minimap.Height = def.Minimap.Height
	}
	fillTheme(&c.Theme, &def.Theme)
}

func fillTheme(t, def *ThemeConfig) {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&t.MismatchBg, def.MismatchBg)
	fill(&t.IndelBg, def.IndelBg)
	fill(&t.PrimerBg, def.PrimerBg)
	fill(&t.LabelFg, def.LabelFg)
	fill(&t.RulerFg, def.RulerFg)
	fill(&t.BarFg, def.BarFg)
	fill(&t.GCFg, def.GCFg)
	fill(&t.WindowBg, def.WindowBg)
	fill(&t.HandleBg, def.HandleBg)
	fill(&t.SelectionBg, def.SelectionBg)
	fill(&t.StatusBg, def.StatusBg)
	fill(&t.StatusFg, def.StatusFg)
	fill(&t.AccentFg, def.AccentFg)
	fill(&t.MessageFg, def.MessageFg)
}
