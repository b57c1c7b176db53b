// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"
)

const (
	wideSVG      = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100"><rect width="200" height="100" fill="#ff0000"/></svg>`
	noViewBoxSVG = `<svg xmlns="http://www.w3.org/2000/svg"><circle cx="8" cy="8" r="4" fill="black"/></svg>`
	offsetSVG    = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="10 10 20 20"><rect x="10" y="10" width="20" height="20" fill="#ff0000"/></svg>`
	negativeSVG  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-2 -2 28 28"><rect x="-2" y="-2" width="28" height="28" fill="#ff0000"/></svg>`
)

func TestRasterize(t *testing.T) {
	cases := map[string]struct {
		svg  string
		size int
	}{
		"square":      {svg: testSVG, size: 48},
		"wide":        {svg: wideSVG, size: 16},
		"no view box": {svg: noViewBoxSVG, size: 16},
		"upscale":     {svg: testSVG, size: 512},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			img, err := Rasterize([]byte(tc.svg), tc.size)
			if err != nil {
				t.Fatal(err)
			}
			b := img.Bounds()
			if b.Dx() != tc.size || b.Dy() != tc.size {
				t.Fatalf("want %dx%d, got %dx%d", tc.size, tc.size, b.Dx(), b.Dy())
			}
		})
	}
}

func TestRasterizeKeepsAspectRatio(t *testing.T) {
	img, err := Rasterize([]byte(wideSVG), 100)
	if err != nil {
		t.Fatal(err)
	}

	// The picture is letterboxed: transparent above and below, red in the
	// middle.
	if _, _, _, a := img.At(50, 5).RGBA(); a != 0 {
		t.Fatalf("top must be transparent, got alpha %d", a)
	}
	if _, _, _, a := img.At(50, 95).RGBA(); a != 0 {
		t.Fatalf("bottom must be transparent, got alpha %d", a)
	}
	if c := img.RGBAAt(50, 50); c.R < 0xf0 || c.G > 0x0f || c.B > 0x0f || c.A < 0xf0 {
		t.Fatalf("middle must be red, got %v", c)
	}
}

func TestRasterizeViewBoxOrigin(t *testing.T) {
	cases := map[string]struct {
		svg  string
		size int
	}{
		"positive origin": {svg: offsetSVG, size: 16},
		"negative origin": {svg: negativeSVG, size: 48},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			img, err := Rasterize([]byte(tc.svg), tc.size)
			if err != nil {
				t.Fatal(err)
			}
			// The rect covers the whole view box, so it must cover the whole
			// image.
			last := tc.size - 1
			for _, p := range [][2]int{{0, 0}, {last, 0}, {0, last}, {last, last}} {
				if _, _, _, a := img.At(p[0], p[1]).RGBA(); a < 0xf000 {
					t.Fatalf("pixel %v must be opaque, got %v", p, img.At(p[0], p[1]))
				}
			}
		})
	}
}

func TestRasterizeInvalid(t *testing.T) {
	if _, err := Rasterize([]byte(testSVG), 0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("want ErrInvalidSize, got %v", err)
	}
	if _, err := Rasterize([]byte("definitely not XML <"), 16); err == nil {
		t.Fatal("must fail on garbage input")
	}
}

func TestRasterizerRenderFailureKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	src, dst := filepath.Join(dir, "icon16.svg"), filepath.Join(dir, "icon16.png")
	if err := os.WriteFile(src, []byte("<svg"), 0o644); err != nil {
		t.Fatal(err)
	}
	old := []byte("old icon")
	if err := os.WriteFile(dst, old, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := new(Rasterizer).Render(context.Background(), src, dst, 16); err == nil {
		t.Fatal("must fail")
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, old)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(entries), 2)
}

func TestLookupRenderer(t *testing.T) {
	installed := map[string]bool{"rsvg-convert": true}
	lookPath = func(file string) (string, error) {
		if installed[file] {
			return "/usr/bin/" + file, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = exec.LookPath })

	cases := map[string]struct {
		name     string
		wantName string
		wantErr  error
	}{
		"default":       {name: "", wantName: "oksvg"},
		"built-in":      {name: "oksvg", wantName: "oksvg"},
		"installed":     {name: "rsvg", wantName: "rsvg"},
		"not installed": {name: "inkscape", wantErr: ErrRendererUnavailable},
		"unknown":       {name: "cairosvg", wantErr: ErrUnknownRenderer},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := LookupRenderer(tc.name)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("LookupRenderer(%q): want error %v, got %v", tc.name, tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, r.Name(), tc.wantName)
		})
	}
}

func TestRendererNames(t *testing.T) {
	testutil.AssertEqual(t, RendererNames(), []string{"oksvg", "rsvg", "inkscape", "magick"})
}

func TestExternalArgs(t *testing.T) {
	for _, e := range externals {
		t.Run(e.name, func(t *testing.T) {
			args := e.args("in.svg", "out.png", 48, 24)
			joined := strings.Join(args, " ")
			for _, want := range []string{"in.svg", "out.png", "48", "24"} {
				if !strings.Contains(joined, want) {
					t.Fatalf("%s %s: missing %q", e.command, joined, want)
				}
			}
		})
	}
}

func TestPrintInstallGuidance(t *testing.T) {
	var buf bytes.Buffer
	PrintInstallGuidance(&buf, "inkscape")
	got := buf.String()
	for _, want := range []string{"Missing required renderer", "apt install inkscape", "go tool create-icons"} {
		if !strings.Contains(got, want) {
			t.Fatalf("guidance doesn't mention %q:\n%s", want, got)
		}
	}
}

func TestPrintFailure(t *testing.T) {
	var buf bytes.Buffer
	PrintFailure(&buf, errors.New("disk full"))
	if !strings.HasPrefix(buf.String(), "❌ Error: disk full\n") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
