// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons converts the extension's SVG icons into PNG images.

# Layout

Icons live in a single directory and are named after their pixel size:

	icon16.svg   ->  icon16.png   (16x16)
	icon48.svg   ->  icon48.png   (48x48)
	icon128.svg  ->  icon128.png  (128x128)

Each source is rendered by a [Renderer] into a square PNG whose side equals
the number in its name. Missing sources are reported and skipped.
*/
package icons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// DefaultSizes are the icon sizes a browser extension manifest refers to.
var DefaultSizes = []int{16, 48, 128}

// ErrInvalidSize is returned by [ParseSizes] for sizes that can't be used.
var ErrInvalidSize = errors.New("invalid icon size")

// Console messages.
const (
	convertBanner  = "🎨 Converting SVG icons to PNG...\n\n"
	convertSummary = "\n✨ All icons converted successfully!\n"
)

// Config represents a conversion configuration.
type Config struct {
	// Dir is the directory containing the SVG icons. PNG icons are written
	// there too. If empty, uses the current directory.
	Dir string
	// Sizes lists the icon sizes to convert, in order. If empty, uses
	// DefaultSizes.
	Sizes []int
	// Renderer renders a single icon. If nil, uses Rasterizer.
	Renderer Renderer
	// Stdout is where status lines are printed. If nil, they are discarded.
	Stdout io.Writer
}

func (c *Config) setDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if len(c.Sizes) == 0 {
		c.Sizes = DefaultSizes
	}
	if c.Renderer == nil {
		c.Renderer = new(Rasterizer)
	}
	if c.Stdout == nil {
		c.Stdout = io.Discard
	}
}

// Report describes the outcome of a single conversion run.
type Report struct {
	// Created holds the names of written PNG files.
	Created []string
	// Missing holds the names of SVG files that weren't found.
	Missing []string
}

// SourceName returns the SVG file name for size.
func SourceName(size int) string { return "icon" + strconv.Itoa(size) + ".svg" }

// TargetName returns the PNG file name for size.
func TargetName(size int) string { return "icon" + strconv.Itoa(size) + ".png" }

// ParseSizes parses a comma-separated list of sizes, like "16,48,128".
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for f := range strings.SplitSeq(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSize, f)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: %d is not positive", ErrInvalidSize, n)
		}
		if slices.Contains(sizes, n) {
			return nil, fmt.Errorf("%w: %d is listed twice", ErrInvalidSize, n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no sizes in %q", ErrInvalidSize, s)
	}
	return sizes, nil
}

// Convert renders every configured icon size found in c.Dir, printing a
// status line for each one. A missing source is reported and skipped; any
// other failure stops the run.
func Convert(ctx context.Context, c *Config) (*Report, error) {
	c.setDefaults()

	fmt.Fprint(c.Stdout, convertBanner)

	r := new(Report)
	for _, size := range c.Sizes {
		if err := ctx.Err(); err != nil {
			return r, err
		}

		src, dst := SourceName(size), TargetName(size)
		srcPath := filepath.Join(c.Dir, src)

		if _, err := os.Stat(srcPath); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(c.Stdout, "❌ %s not found!\n", src)
			r.Missing = append(r.Missing, src)
			continue
		} else if err != nil {
			return r, err
		}

		if err := c.Renderer.Render(ctx, srcPath, filepath.Join(c.Dir, dst), size); err != nil {
			return r, fmt.Errorf("rendering %s with %s: %w", src, c.Renderer.Name(), err)
		}
		fmt.Fprintf(c.Stdout, "✅ Created %s (%dx%d)\n", dst, size, size)
		r.Created = append(r.Created, dst)
	}

	fmt.Fprint(c.Stdout, convertSummary)
	return r, nil
}
