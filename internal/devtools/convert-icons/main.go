// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/extension-icons/internal/icons"
)

func main() {
	cli.Main(new(app))
}

type app struct {
	dir      string
	sizes    string
	renderer string
	watch    bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dir, "dir", ".", "Directory with the icons.")
	fs.StringVar(&a.sizes, "sizes", "16,48,128", "Comma-separated icon `sizes` to convert.")
	fs.StringVar(&a.renderer, "renderer", "oksvg", "Renderer to use, one of: "+strings.Join(icons.RendererNames(), ", ")+".")
	fs.BoolVar(&a.watch, "watch", false, "Convert again when the SVG files change.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) != 0 {
		return fmt.Errorf("%w: convert-icons takes no arguments", cli.ErrInvalidArgs)
	}

	sizes, err := icons.ParseSizes(a.sizes)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}

	r, err := icons.LookupRenderer(a.renderer)
	if errors.Is(err, icons.ErrUnknownRenderer) {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}
	if err != nil {
		icons.PrintInstallGuidance(env.Stdout, a.renderer)
		return nil
	}

	c := &icons.Config{
		Dir:      a.dir,
		Sizes:    sizes,
		Renderer: r,
		Stdout:   env.Stdout,
	}

	if a.watch {
		return icons.Watch(ctx, c)
	}
	if _, err := icons.Convert(ctx, c); err != nil {
		icons.PrintFailure(env.Stdout, err)
	}
	return nil
}
