// Package clipboard is the "emit text" collaborator the rendering core
// depends on: exported sequences and alignment text go out through it.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard writes text to the system clipboard, falling back to OSC52
// escape sequences over SSH where no local clipboard exists.
type Clipboard struct {
	last   string // last emitted text, kept for inspection
	isSSH  bool
	output io.Writer
}

// New creates a clipboard writing OSC52 sequences to output (typically
// os.Stdout) when needed.
func New(output io.Writer) *Clipboard {
	if output == nil {
		output = os.Stdout
	}
	return &Clipboard{isSSH: isSSHSession(), output: output}
}

func isSSHSession() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CLIENT") != "" ||
		os.Getenv("SSH_CONNECTION") != ""
}

// Copy emits the given text. Over SSH it always uses OSC52; locally it
// tries the system clipboard first and falls back to OSC52.
func (c *Clipboard) Copy(text string) error {
	c.last = text
	if c.isSSH {
		return c.copyOSC52(text)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return c.copyOSC52(text)
	}
	return nil
}

func (c *Clipboard) copyOSC52(text string) error {
	_, err := io.WriteString(c.output, osc52.New(text).String())
	return err
}

// Last returns the most recently emitted text.
func (c *Clipboard) Last() string {
	return c.last
}
