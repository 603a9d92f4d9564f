package pdf

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Pdftoppm rasterizes pages by shelling out to poppler's pdftoppm.
// Output goes to a temp dir as binary PPM which is decoded to RGBA.
type Pdftoppm struct {
	file string
	bin  string
}

// NewPdftoppm creates a rasterizer for file. bin overrides the binary
// path; empty means "pdftoppm" resolved via PATH.
func NewPdftoppm(file, bin string) *Pdftoppm {
	if bin == "" {
		bin = "pdftoppm"
	}
	return &Pdftoppm{file: file, bin: bin}
}

// RenderPage implements Rasterizer. pageIndex is zero-based.
func (p *Pdftoppm) RenderPage(ctx context.Context, pageIndex, widthPx, heightPx int) (*image.RGBA, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("pdftoppm: invalid target size %dx%d", widthPx, heightPx)
	}
	dir, err := os.MkdirTemp("", "pagegrid-raster-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	root := filepath.Join(dir, "page")
	page := strconv.Itoa(pageIndex + 1)
	cmd := exec.CommandContext(ctx, p.bin,
		"-f", page, "-l", page,
		"-scale-to-x", strconv.Itoa(widthPx),
		"-scale-to-y", strconv.Itoa(heightPx),
		p.file, root,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, out)
	}

	// pdftoppm appends the (possibly zero-padded) page number
	matches, err := filepath.Glob(root + "-*.ppm")
	if err != nil || len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm: no output for page %s", page)
	}
	f, err := os.Open(matches[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodePPM(f)
}
