// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/extension-icons/internal/drawicon"
	"go.astrophena.name/extension-icons/internal/icons"
)

func main() { cli.Main(new(app)) }

type app struct {
	dir   string
	sizes string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dir, "dir", ".", "Directory to write the icons to.")
	fs.StringVar(&a.sizes, "sizes", "16,48,128", "Comma-separated icon `sizes` to draw.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) != 0 {
		return fmt.Errorf("%w: create-icons takes no arguments", cli.ErrInvalidArgs)
	}

	sizes, err := icons.ParseSizes(a.sizes)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}

	return drawicon.Generate(ctx, a.dir, sizes, env.Stdout)
}
