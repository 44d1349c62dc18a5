package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/crossfill/grid"
)

func TestSave(t *testing.T) {
	is := is.New(t)
	g, err := grid.MakeGrid([]string{
		"___",
		"#_#",
		"#_#",
	})
	is.NoErr(err)
	across := grid.Slot{Row: 0, Col: 0, Dir: grid.Across, Length: 3}
	down := grid.Slot{Row: 0, Col: 1, Dir: grid.Down, Length: 3}
	assignment := map[grid.Slot]string{across: "CAT", down: "ATE"}

	filename := filepath.Join(t.TempDir(), "out.png")
	is.NoErr(Save(g, assignment, filename))

	f, err := os.Open(filename)
	is.NoErr(err)
	defer f.Close()
	img, err := png.Decode(f)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), 300)
	is.Equal(img.Bounds().Dy(), 300)
}
