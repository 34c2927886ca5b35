// Package app wires the rendering core to terminal input: pointer events,
// key bindings, and width changes arrive here and are translated into
// operations on the viewport, minimap, and overlay state.
package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"msaview/align"
	"msaview/clipboard"
	"msaview/config"
	"msaview/view"
)

// kittyMinimapID is the fixed Kitty graphics image id for the minimap.
const kittyMinimapID = 77

// Model is the viewer's bubbletea model and the external facade of the
// rendering core. All repaints are synchronous reactions to input events;
// there is no background work.
type Model struct {
	cfg    *config.Config
	styles view.Styles

	block *align.Block
	gc    []float64
	comp  *view.Compositor

	vp       *view.Viewport
	modeCtl  *view.ModeController
	minimap  *view.Minimap
	renderer *view.Renderer
	raster   *view.Raster // nil when the bundled font failed to parse

	clip     *clipboard.Clipboard
	notifier view.WindowNotifier
	status   *StatusBar

	width    int
	height   int
	filename string

	// mouseDown mirrors the physical button so motion events can be told
	// apart from plain pointer movement.
	mouseDown bool
}

// New creates a viewer with the given configuration and an empty
// alignment.
func New(cfg *config.Config) *Model {
	styles := view.NewStyles(themeColors(cfg))
	vp := view.NewViewport(80)
	variant := view.VariantFull
	if cfg.Minimap.Interaction == "select" {
		variant = view.VariantSelectOnly
	}
	m := &Model{
		cfg:      cfg,
		styles:   styles,
		block:    align.Parse(""),
		vp:       vp,
		modeCtl:  view.NewModeController(cfg.Display.ModeBase, cfg.Display.ModeHysteresis),
		minimap:  view.NewMinimap(vp, 80, variant),
		renderer: view.NewRenderer(styles),
		clip:     clipboard.New(os.Stdout),
		status:   NewStatusBar(styles),
		width:    80,
		height:   24,
	}
	m.comp = view.NewCompositor(m.block)
	m.gc = align.ColumnGC(m.block)
	if r, err := view.NewRaster(themeColors(cfg)); err == nil {
		m.raster = r
	}
	return m
}

func themeColors(cfg *config.Config) view.ThemeColors {
	t := cfg.Theme
	return view.ThemeColors{
		MismatchBg:  t.MismatchBg,
		IndelBg:     t.IndelBg,
		PrimerBg:    t.PrimerBg,
		LabelFg:     t.LabelFg,
		RulerFg:     t.RulerFg,
		BarFg:       t.BarFg,
		GCFg:        t.GCFg,
		WindowBg:    t.WindowBg,
		HandleBg:    t.HandleBg,
		SelectionBg: t.SelectionBg,
		StatusBg:    t.StatusBg,
		StatusFg:    t.StatusFg,
		AccentFg:    t.AccentFg,
		MessageFg:   t.MessageFg,
	}
}

// SetFilename records the displayed file name.
func (m *Model) SetFilename(name string) {
	m.filename = name
	m.status.SetFilename(name)
}

// LoadFile reads and loads an alignment file.
func (m *Model) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	m.SetFilename(path)
	m.LoadAlignment(string(data))
	return nil
}

// LoadAlignment replaces the alignment wholesale. Any live minimap drag is
// aborted and the viewport and display mode return to their defaults
// before the next repaint. Primer spans belong to the old coordinate frame
// and are dropped.
func (m *Model) LoadAlignment(text string) {
	m.block = align.Parse(text)
	m.gc = align.ColumnGC(m.block)
	m.comp = view.NewCompositor(m.block)
	m.minimap.Cancel()
	m.mouseDown = false
	m.vp.Reset()
	m.modeCtl.Reset()
	m.notifier.Reset()
	m.sync()
}

// SetPrimerSpans installs the two primer spans, given in the reference
// row's raw coordinate space.
func (m *Model) SetPrimerSpans(fwd, rev align.Span) {
	m.comp.SetPrimers(fwd, rev)
}

// ClearPrimerSpans removes the primer overlay.
func (m *Model) ClearPrimerSpans() {
	m.comp.ClearPrimers()
}

// SelectionStats returns base counts and GC% over the visible column
// range.
func (m *Model) SelectionStats() align.Counts {
	if m.block.Empty() {
		return align.Counts{}
	}
	l := m.block.Width()
	return align.BaseCounts(m.block, m.vp.StartCol(l), m.vp.EndCol(l))
}

// ZoomIn narrows the view by one step.
func (m *Model) ZoomIn() { m.vp.ZoomIn(); m.sync() }

// ZoomOut widens the view by one step.
func (m *Model) ZoomOut() { m.vp.ZoomOut(); m.sync() }

// ZoomToSelection commits the minimap's ephemeral selection, if one is
// live, to the viewport.
func (m *Model) ZoomToSelection() {
	if sel := m.minimap.Selection(); sel != nil {
		m.vp.SetFromSelection(sel.StartFrac, sel.EndFrac)
		m.sync()
	}
}

// ResetZoom aborts any drag and returns the viewport to the full view.
func (m *Model) ResetZoom() {
	m.minimap.Cancel()
	m.vp.Reset()
	m.sync()
}

// ExportAlignment returns the full alignment as FASTA text.
func (m *Model) ExportAlignment() string {
	return align.Format(m.block)
}

// ExportRow returns one row's raw (gap-free) sequence as FASTA text, ""
// for an out-of-range index.
func (m *Model) ExportRow(i int) string {
	if i < 0 || i >= m.block.NumRows() {
		return ""
	}
	return align.FormatRaw(m.block.Rows[i])
}

// OnWindowChange subscribes to visible-window updates. The callback fires
// synchronously after every change to the visible region.
func (m *Model) OnWindowChange(fn func(view.Window)) {
	m.notifier.Subscribe(fn)
}

// sync recomputes derived view state after any mutation: the display mode
// follows the visible base count, and window subscribers hear about the
// new visible region.
func (m *Model) sync() {
	l := m.block.Width()
	m.modeCtl.Update(m.vp.VisibleCols(l))
	m.notifier.Publish(view.CurrentWindow(m.block, m.vp))
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// minimapHeight returns the rows the minimap strip occupies.
func (m *Model) minimapHeight() int {
	return m.cfg.Minimap.Height
}

// detailHeight returns the rows left for the detail pane after the
// minimap strip and the status bar.
func (m *Model) detailHeight() int {
	h := m.height - m.minimapHeight() - 1
	if h < 0 {
		h = 0
	}
	return h
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		seqWidth := m.width - m.renderer.LabelWidth()
		if seqWidth < 1 {
			seqWidth = 1
		}
		m.vp.SetWidth(float64(seqWidth))
		m.minimap.SetWidth(float64(m.width))
		m.status.SetWidth(m.width)
		m.sync()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "+", "=":
		m.ZoomIn()
	case "-", "_":
		m.ZoomOut()
	case "left":
		m.vp.Pan(-0.1 * m.vp.Fraction())
		m.sync()
	case "right":
		m.vp.Pan(0.1 * m.vp.Fraction())
		m.sync()
	case "r":
		m.ResetZoom()
		m.status.SetMessage("view reset")
	case "b":
		// An explicit mode toggle also resets the viewport.
		m.minimap.Cancel()
		m.modeCtl.Toggle()
		m.vp.Reset()
		m.notifier.Reset()
		m.sync()
	case "c":
		w := view.CurrentWindow(m.block, m.vp)
		if err := m.clip.Copy(w.RawSlice); err == nil {
			m.status.SetMessage(fmt.Sprintf("copied %d bases", len(w.RawSlice)))
		}
	case "e":
		if err := m.clip.Copy(m.ExportAlignment()); err == nil {
			m.status.SetMessage("alignment copied")
		}
	case "w":
		if text := m.ExportRow(0); text != "" {
			if err := m.clip.Copy(text); err == nil {
				m.status.SetMessage("reference copied")
			}
		}
	case "p":
		m.snapshotPNG()
	}
	return m, nil
}

// snapshotPNG writes the current detail view to msaview.png in the
// working directory.
func (m *Model) snapshotPNG() {
	if m.raster == nil || m.block.Empty() {
		return
	}
	img := m.raster.DetailImage(m.block, m.comp, m.vp, m.modeCtl.Mode(),
		m.width*8, (m.block.NumRows()+1)*16)
	if err := m.raster.SavePNG("msaview.png", img); err != nil {
		m.status.SetMessage("png export failed: " + err.Error())
		return
	}
	m.status.SetMessage("wrote msaview.png")
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x := float64(msg.X)
	switch msg.Button {
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Y < m.minimapHeight() {
				m.minimap.PointerDown(x)
				m.mouseDown = true
				m.sync()
			}
		case tea.MouseActionMotion:
			if m.mouseDown {
				// The session follows the pointer even when it leaves
				// the strip.
				m.minimap.PointerMove(x)
				m.sync()
			}
		case tea.MouseActionRelease:
			if m.mouseDown {
				m.minimap.PointerUp(x)
				m.mouseDown = false
				m.sync()
			}
		}

	case tea.MouseButtonWheelUp:
		if msg.Y >= m.minimapHeight() {
			m.vp.ZoomAtPoint(m.detailPx(msg.X), view.ZoomStep)
			m.sync()
		}
	case tea.MouseButtonWheelDown:
		if msg.Y >= m.minimapHeight() {
			m.vp.ZoomAtPoint(m.detailPx(msg.X), 1/view.ZoomStep)
			m.sync()
		}
	}
}

// detailPx maps a terminal column to a pixel offset inside the detail
// pane's sequence area.
func (m *Model) detailPx(x int) float64 {
	px := float64(x - m.renderer.LabelWidth())
	if px < 0 {
		px = 0
	}
	return px
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	var lines []string
	lines = append(lines, m.minimap.Render(m.width, m.minimapHeight(), m.block, m.gc, m.comp, m.styles)...)
	lines = append(lines, m.renderer.Render(m.block, m.comp, m.vp, m.modeCtl.Mode(), m.width, m.detailHeight())...)

	m.updateStatus()
	lines = append(lines, m.status.Render())

	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	if m.cfg.Minimap.Kitty && m.raster != nil && !m.block.Empty() {
		img := m.raster.MinimapImage(m.block, m.gc, m.vp, m.width*8, m.minimapHeight()*16)
		seq := view.KittySequence(img, kittyMinimapID, m.width, m.minimapHeight())
		out += "\033[s\033[1;1H" + seq + "\033[u"
	}
	return out
}

// updateStatus refreshes the status bar from the current view state.
func (m *Model) updateStatus() {
	l := m.block.Width()
	if l == 0 {
		m.status.SetRange(0, 0, 0)
	} else {
		m.status.SetRange(m.vp.StartCol(l)+1, m.vp.EndCol(l)+1, l)
	}
	ref, ok := m.block.Reference()
	if ok {
		m.status.SetReference(ref.Label)
	} else {
		m.status.SetReference("")
	}
	m.status.SetMode(m.modeCtl.Mode().String())
	m.status.SetCounts(m.SelectionStats())
}
