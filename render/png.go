// Package render draws a filled grid to a PNG image.
package render

import (
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/domino14/crossfill/grid"
)

const (
	cellSize   = 100
	cellBorder = 2
	letterH    = 78
)

// Save writes the grid with the given assignment to a PNG file.
// Blocked cells are black, open cells white with the letter centered.
func Save(g *grid.Grid, assignment map[grid.Slot]string, filename string) error {
	letters := g.Letters(assignment)
	interior := cellSize - 2*cellBorder
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			if !g.Open(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)
			if letters[i][j] == 0 {
				continue
			}
			glyph := renderGlyph(letters[i][j])
			gw := glyph.Bounds().Dx() * letterH / glyph.Bounds().Dy()
			x0 := cell.Min.X + (interior-gw)/2
			y0 := cell.Min.Y + (interior-letterH)/2 - 10
			target := image.Rect(x0, y0, x0+gw, y0+letterH)
			xdraw.NearestNeighbor.Scale(img, target, glyph, glyph.Bounds(), xdraw.Over, nil)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	log.Debug().Str("filename", filename).Msg("wrote image")
	return nil
}

// renderGlyph draws a single letter at the basicfont's natural size;
// Save scales it up to fit the cell.
func renderGlyph(ch rune) *image.RGBA {
	face := basicfont.Face7x13
	w := font.MeasureString(face, string(ch)).Ceil()
	h := face.Metrics().Height.Ceil()
	glyph := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyph,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(string(ch))
	return glyph
}
