// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package drawicon draws the extension icon from scratch, for when there are
// no SVG sources or no way to render them.
package drawicon

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"path/filepath"

	"go.astrophena.name/extension-icons/internal/icons"

	"github.com/fogleman/gg"
)

// Gradient colors of the background, from the top left corner to the bottom
// right one.
var (
	GradientStart = color.RGBA{R: 0x00, G: 0x73, B: 0xea, A: 0xff}
	GradientEnd   = color.RGBA{R: 0x00, G: 0x5b, B: 0xb5, A: 0xff}
)

// Draw draws the icon at size x size pixels: a database glyph of three
// stacked discs with an extraction arrow on top of a blue gradient.
func Draw(size int) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)

	bg := gg.NewLinearGradient(0, 0, s, s)
	bg.AddColorStop(0, GradientStart)
	bg.AddColorStop(1, GradientEnd)
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()

	dc.SetColor(color.White)

	cx, cy := s/2, s/2
	radius := s * 0.25
	spacing := s * 0.15
	for _, dy := range []float64{-spacing, 0, spacing} {
		dc.DrawCircle(cx, cy+dy, radius)
		dc.Fill()
	}

	arrow := s * 0.15
	ax := s * 0.75
	dc.MoveTo(ax-arrow, cy-arrow/2)
	dc.LineTo(ax, cy)
	dc.LineTo(ax-arrow, cy+arrow/2)
	dc.SetLineWidth(math.Max(2, s/16))
	dc.SetLineCapButt()
	dc.Stroke()

	return dc.Image()
}

// Generate draws the icon for each size and writes it to dir under the name
// icons.TargetName gives, printing a status line for each file to w. If sizes
// is empty, icons.DefaultSizes are used.
func Generate(ctx context.Context, dir string, sizes []int, w io.Writer) error {
	if len(sizes) == 0 {
		sizes = icons.DefaultSizes
	}
	fmt.Fprint(w, "🎨 Generating extension icons...\n\n")
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := icons.TargetName(size)
		if err := icons.WritePNG(filepath.Join(dir, name), Draw(size)); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		fmt.Fprintf(w, "✅ Created %s (%dx%d)\n", name, size, size)
	}
	fmt.Fprint(w, "\n✨ All icons created successfully!\n")
	return nil
}
