// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Convert-icons converts the extension icons from SVG to PNG.

# Usage

	$ go tool convert-icons [flags]

Without flags, it looks for icon16.svg, icon48.svg and icon128.svg in the
current directory and renders each one into a PNG with the same name and
matching pixel dimensions (icon16.png is 16x16, and so on). Missing SVG files
are reported and skipped.

By default icons are rendered by the built-in renderer. The -renderer flag
selects an external program instead (rsvg, inkscape or magick); it has to be
installed and available in the system's PATH, otherwise installation
instructions are printed and nothing is written.

With -watch, it keeps running and converts the icons again each time one of
the SVG files changes.

If there are no SVG sources at all, see create-icons.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() {
	cli.SetDocComment(doc)
}
