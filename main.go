package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"msaview/app"
	"msaview/config"
)

const version = "0.1.0"

func main() {
	// Parse command line arguments
	args := os.Args[1:]
	var filename string
	selectOnly := false

	for _, arg := range args {
		switch arg {
		case "--version", "-v":
			fmt.Printf("msaview %s\n", version)
			os.Exit(0)
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--select-only":
			selectOnly = true
		default:
			if filename == "" && !isFlag(arg) {
				filename = arg
			}
		}
	}

	// Load configuration
	cfg, configErr := config.Load()

	// Command-line --select-only overrides config
	if selectOnly {
		cfg.Minimap.Interaction = "select"
	}

	m := app.New(cfg)

	// If config had parse errors, surface them in the status bar
	if configErr != nil {
		if loadErr, ok := configErr.(*config.ConfigLoadError); ok {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", loadErr)
		}
	}

	// Load alignment if provided
	if filename != "" {
		if err := m.LoadFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading alignment: %v\n", err)
			os.Exit(1)
		}
	}

	// Create and run the Bubbletea program
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

func isFlag(s string) bool {
	return len(s) > 0 && s[0] == '-'
}

func printHelp() {
	fmt.Println("Msaview - a multiple sequence alignment viewer")
	fmt.Println()
	fmt.Println("Usage: msaview [options] [alignment.fasta]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help      Show this help message")
	fmt.Println("  -v, --version   Show version information")
	fmt.Println("  --select-only   Minimap drags always select a new range")
	fmt.Println()
	fmt.Println("Keyboard Shortcuts:")
	fmt.Println("  + / -          Zoom in / out")
	fmt.Println("  Left/Right     Pan the view")
	fmt.Println("  r              Reset the view")
	fmt.Println("  b              Toggle bars/letters rendering")
	fmt.Println("  c              Copy visible reference bases")
	fmt.Println("  e              Copy full alignment as FASTA")
	fmt.Println("  w              Copy reference raw sequence")
	fmt.Println("  p              Save a PNG snapshot of the view")
	fmt.Println("  q              Quit")
	fmt.Println()
	fmt.Println("Mouse (minimap strip):")
	fmt.Println("  Drag           Select a range to zoom into")
	fmt.Println("  Drag edges     Resize the visible window")
	fmt.Println("  Drag window    Pan the visible window")
	fmt.Println("  Click outside  Recenter the window")
	fmt.Println()
	fmt.Println("Mouse (detail pane):")
	fmt.Println("  Scroll         Zoom at the cursor")
}
