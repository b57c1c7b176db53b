// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Possible renderer lookup errors.
var (
	ErrRendererUnavailable = errors.New("renderer is not available")
	ErrUnknownRenderer     = errors.New("unknown renderer")
)

// Renderer renders an SVG file into a square PNG file.
type Renderer interface {
	// Name returns the name the renderer is looked up by.
	Name() string
	// Render renders the SVG at src into a size x size PNG at dst.
	Render(ctx context.Context, src, dst string, size int) error
}

// Rasterizer is the built-in Renderer. It is always available.
type Rasterizer struct{}

// Name implements Renderer.
func (*Rasterizer) Name() string { return "oksvg" }

// Render implements Renderer. The SVG view box is scaled to fit the square
// and centered, keeping its aspect ratio. The background is transparent.
func (*Rasterizer) Render(ctx context.Context, src, dst string, size int) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	img, err := Rasterize(b, size)
	if err != nil {
		return err
	}
	return WritePNG(dst, img)
}

// Rasterize renders SVG document b into a size x size image.
func Rasterize(b []byte, size int) (*image.RGBA, error) {
	icon, outW, outH, err := fit(b, size)
	if err != nil {
		return nil, err
	}

	vb := icon.ViewBox
	scale := outW / vb.W
	offX, offY := (float64(size)-outW)/2, (float64(size)-outH)/2
	icon.SetTarget(offX, offY, outW, outH)
	// SetTarget doesn't scale the view box origin.
	icon.Transform = rasterx.Identity.Translate(offX, offY).Scale(scale, scale).Translate(-vb.X, -vb.Y)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// fit parses SVG document b and returns the dimensions its view box takes
// when scaled to fit a size x size square.
func fit(b []byte, size int) (icon *oksvg.SvgIcon, w, h float64, err error) {
	if size <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	icon, err = oksvg.ReadIconStream(bytes.NewReader(b), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("parsing SVG: %w", err)
	}

	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		icon.ViewBox.X, icon.ViewBox.Y = 0, 0
		icon.ViewBox.W, icon.ViewBox.H = float64(size), float64(size)
	}

	scale := float64(size) / max(icon.ViewBox.W, icon.ViewBox.H)
	return icon, icon.ViewBox.W * scale, icon.ViewBox.H * scale, nil
}

// External is a Renderer backed by a program that has to be installed
// separately.
type External struct {
	name    string
	command string
	install string
	// args returns the arguments that make the program render src into a
	// PNG at dst of exactly w x h pixels.
	args func(src, dst string, w, h int) []string
}

// Name implements Renderer.
func (e *External) Name() string { return e.name }

// Command returns the program e runs.
func (e *External) Command() string { return e.command }

// Render implements Renderer. The program renders the SVG at the size that
// fits the square; a non-square result is then centered on a transparent
// square, the same way Rasterizer lays it out.
func (e *External) Render(ctx context.Context, src, dst string, size int) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	_, fw, fh, err := fit(b, size)
	if err != nil {
		return err
	}
	w, h := max(1, int(math.Round(fw))), max(1, int(math.Round(fh)))

	tmp, err := tempName(dst)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.command, e.args(src, tmp, w, h)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w\n%s", e.command, err, stderr.String())
	}

	// Some programs round the requested size; make sure we got what we asked
	// for before replacing anything.
	f, err := os.Open(tmp)
	if err != nil {
		return err
	}
	img, err := png.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s produced an invalid PNG: %w", e.command, err)
	}
	got := img.Bounds().Size()
	switch {
	case got.X == size && got.Y == size:
		if err := os.Chmod(tmp, 0o644); err != nil {
			return err
		}
		return os.Rename(tmp, dst)
	case got.X == w && got.Y == h:
		return WritePNG(dst, center(img, size))
	default:
		return fmt.Errorf("%s produced a %dx%d image, want %dx%d", e.command, got.X, got.Y, w, h)
	}
}

// center places img in the middle of a transparent size x size square.
func center(img image.Image, size int) *image.RGBA {
	sq := image.NewRGBA(image.Rect(0, 0, size, size))
	b := img.Bounds()
	at := image.Pt((size-b.Dx())/2, (size-b.Dy())/2)
	draw.Draw(sq, b.Sub(b.Min).Add(at), img, b.Min, draw.Src)
	return sq
}

var externals = []*External{
	{
		name:    "rsvg",
		command: "rsvg-convert",
		install: "apt install librsvg2-bin  (or: brew install librsvg)",
		args: func(src, dst string, w, h int) []string {
			return []string{"--width", strconv.Itoa(w), "--height", strconv.Itoa(h), "--output", dst, src}
		},
	},
	{
		name:    "inkscape",
		command: "inkscape",
		install: "apt install inkscape  (or: brew install --cask inkscape)",
		args: func(src, dst string, w, h int) []string {
			return []string{
				"--export-type=png",
				"--export-filename=" + dst,
				"--export-background-opacity=0",
				"--export-width=" + strconv.Itoa(w),
				"--export-height=" + strconv.Itoa(h),
				src,
			}
		},
	},
	{
		name:    "magick",
		command: "magick",
		install: "apt install imagemagick  (or: brew install imagemagick)",
		args: func(src, dst string, w, h int) []string {
			return []string{
				"-background", "none",
				"-density", "384",
				src,
				"-resize", strconv.Itoa(w) + "x" + strconv.Itoa(h) + "!",
				dst,
			}
		},
	},
}

// lookPath is overridden in tests.
var lookPath = exec.LookPath

// RendererNames returns the names LookupRenderer accepts.
func RendererNames() []string {
	names := []string{new(Rasterizer).Name()}
	for _, e := range externals {
		names = append(names, e.name)
	}
	return names
}

// LookupRenderer returns the renderer called name. If the renderer relies on
// a program that isn't installed, the returned error wraps
// ErrRendererUnavailable.
func LookupRenderer(name string) (Renderer, error) {
	if name == "" || name == new(Rasterizer).Name() {
		return new(Rasterizer), nil
	}
	i := slices.IndexFunc(externals, func(e *External) bool { return e.name == name })
	if i < 0 {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownRenderer, name, RendererNames())
	}
	e := externals[i]
	if _, err := lookPath(e.command); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRendererUnavailable, e.command, err)
	}
	return e, nil
}

// installHint returns instructions for installing the renderer called name.
func installHint(name string) string {
	for _, e := range externals {
		if e.name == name {
			return e.install
		}
	}
	return "go install go.astrophena.name/extension-icons/internal/devtools/convert-icons@latest"
}

// WritePNG encodes img as PNG into dst. An existing dst is replaced only once
// the whole image is written.
func WritePNG(dst string, img image.Image) error {
	return writeFile(dst, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// writeFile writes dst through a temporary file in the same directory, so
// that a failed write leaves an existing dst untouched.
func writeFile(dst string, write func(w io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(f.Name(), dst)
}

// tempName reserves a temporary file name next to dst, keeping the .png
// extension that external programs use to pick the output format.
func tempName(dst string) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.png")
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}
