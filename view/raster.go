package view

import (
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"msaview/align"
)

// Raster renders the alignment to pixel surfaces: PNG snapshots of the
// detail view and an inline minimap image for terminals speaking the Kitty
// graphics protocol.
type Raster struct {
	colors ThemeColors
	ttf    *truetype.Font
}

// NewRaster creates a raster renderer using the bundled monospace font.
func NewRaster(colors ThemeColors) (*Raster, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Raster{colors: colors, ttf: ttf}, nil
}

// face builds a font face sized to fit a cell of the given dimensions.
func (r *Raster) face(cellW, cellH float64) font.Face {
	size := cellH * 0.8
	if cellW < size {
		size = cellW
	}
	if size < 1 {
		size = 1
	}
	return truetype.NewFace(r.ttf, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
}

// DetailImage draws the visible window of the alignment into a pxW x pxH
// image. Letters mode draws one glyph per base with the font size derived
// from the per-column pixel width; bars mode draws presence bars with
// colored rectangles only at annotated positions. Degenerate geometry
// falls back to one-pixel cells instead of dividing by zero.
func (r *Raster) DetailImage(block *align.Block, comp *Compositor, vp *Viewport, mode Mode, pxW, pxH int) image.Image {
	if pxW < 1 {
		pxW = 1
	}
	if pxH < 1 {
		pxH = 1
	}
	dc := gg.NewContext(pxW, pxH)
	dc.SetColor(color.RGBA{30, 30, 30, 255})
	dc.Clear()

	l := block.Width()
	if block.Empty() || l == 0 {
		return dc.Image()
	}

	startCol := vp.StartCol(l)
	endCol := vp.EndCol(l)
	cols := endCol - startCol + 1
	cellW := float64(pxW) / float64(cols)
	if cellW < 1 {
		cellW = 1
	}
	rowH := float64(pxH) / float64(block.NumRows())
	if rowH < 1 {
		rowH = 1
	}

	paintRGB := map[Paint][3]int{
		PaintMismatch: colorRGB(r.colors.MismatchBg),
		PaintIndel:    colorRGB(r.colors.IndelBg),
		PaintPrimer:   colorRGB(r.colors.PrimerBg),
	}

	var face font.Face
	if mode == ModeLetters {
		face = r.face(cellW, rowH)
		dc.SetFontFace(face)
	}

	for row := 0; row < block.NumRows(); row++ {
		y := float64(row) * rowH
		seq := block.Rows[row].Seq
		rowStart, rowEnd, ok := comp.RowBounds(row)

		if mode == ModeBars && ok {
			// Presence bar across the row's sequence extent.
			barStart := maxInt(rowStart, startCol)
			barEnd := minInt(rowEnd, endCol)
			if barStart <= barEnd {
				x0 := float64(barStart-startCol) * cellW
				x1 := float64(barEnd-startCol+1) * cellW
				dc.SetColor(color.RGBA{120, 120, 120, 255})
				dc.DrawRectangle(x0, y+rowH*0.35, x1-x0, rowH*0.3)
				dc.Fill()
			}
		}

		for col := startCol; col <= endCol; col++ {
			p := comp.PaintAt(row, col)
			x := float64(col-startCol) * cellW
			if p != PaintMatch {
				rgb := paintRGB[p]
				dc.SetColor(color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 255})
				dc.DrawRectangle(x, y, cellW, rowH)
				dc.Fill()
			}
			if mode == ModeLetters && col < len(seq) {
				dc.SetColor(color.RGBA{230, 230, 230, 255})
				dc.DrawStringAnchored(string(seq[col]), x+cellW/2, y+rowH/2, 0.5, 0.5)
			}
		}
	}
	return dc.Image()
}

// MinimapImage draws the whole-alignment overview: the GC curve as a
// filled profile with the viewport window outlined on top.
func (r *Raster) MinimapImage(block *align.Block, gc []float64, vp *Viewport, pxW, pxH int) image.Image {
	if pxW < 1 {
		pxW = 1
	}
	if pxH < 1 {
		pxH = 1
	}
	dc := gg.NewContext(pxW, pxH)
	dc.SetColor(color.RGBA{30, 30, 30, 255})
	dc.Clear()

	l := block.Width()
	if block.Empty() || l == 0 {
		return dc.Image()
	}

	rgb := colorRGB(r.colors.GCFg)
	dc.SetColor(color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 255})
	for px := 0; px < pxW; px++ {
		c0 := px * l / pxW
		c1 := (px+1)*l/pxW - 1
		if c1 < c0 {
			c1 = c0
		}
		h := meanGC(gc, c0, c1) * float64(pxH)
		if h > 0 {
			dc.DrawRectangle(float64(px), float64(pxH)-h, 1, h)
		}
	}
	dc.Fill()

	// Viewport window outline.
	x0 := vp.StartFrac() * float64(pxW)
	x1 := vp.EndFrac() * float64(pxW)
	dc.SetColor(color.RGBA{255, 255, 255, 200})
	dc.SetLineWidth(1)
	dc.DrawRectangle(x0, 0, x1-x0, float64(pxH-1))
	dc.Stroke()
	return dc.Image()
}

// SavePNG writes an image to disk as PNG.
func (r *Raster) SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// KittySequence encodes an image as a Kitty graphics protocol escape,
// displayed over cols x rows terminal cells. The payload is base64 RGBA,
// chunked per the protocol.
func KittySequence(img image.Image, id uint32, cols, rows int) string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 0, w*h*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			pixels = append(pixels, byte(cr>>8), byte(cg>>8), byte(cb>>8), byte(ca>>8))
		}
	}
	data := base64.StdEncoding.EncodeToString(pixels)

	// a=T transmit+display, f=32 RGBA, q=2 suppress responses.
	control := fmt.Sprintf("a=T,f=32,s=%d,v=%d,c=%d,r=%d,i=%d,q=2", w, h, cols, rows, id)

	const chunkSize = 4096
	var sb strings.Builder
	if len(data) <= chunkSize {
		fmt.Fprintf(&sb, "\033_G%s;%s\033\\", control, data)
		return sb.String()
	}
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		switch {
		case i == 0:
			fmt.Fprintf(&sb, "\033_G%s,m=1;%s\033\\", control, data[i:end])
		case end >= len(data):
			fmt.Fprintf(&sb, "\033_Gm=0;%s\033\\", data[i:end])
		default:
			fmt.Fprintf(&sb, "\033_Gm=1;%s\033\\", data[i:end])
		}
	}
	return sb.String()
}

// KittyClear returns the escape that deletes a previously transmitted
// image by id.
func KittyClear(id uint32) string {
	return fmt.Sprintf("\033_Ga=d,d=i,i=%d\033\\", id)
}

// colorRGB resolves a theme color string (hex or 256-color index) to RGB.
func colorRGB(s string) [3]int {
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return [3]int{r, g, b}
	}
	var idx int
	if _, err := fmt.Sscanf(s, "%d", &idx); err == nil {
		return ansi256RGB(idx)
	}
	return [3]int{200, 200, 200}
}

// ansi256RGB converts a 256-color palette index to RGB.
func ansi256RGB(idx int) [3]int {
	basic := [16][3]int{
		{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
		{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
		{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
		{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
	}
	switch {
	case idx >= 0 && idx < 16:
		return basic[idx]
	case idx < 232:
		idx -= 16
		return [3]int{(idx / 36) * 51, ((idx / 6) % 6) * 51, (idx % 6) * 51}
	case idx < 256:
		g := (idx-232)*10 + 8
		return [3]int{g, g, g}
	}
	return [3]int{200, 200, 200}
}
