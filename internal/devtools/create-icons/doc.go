// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Create-icons draws the extension icons without any SVG sources.

# Usage

	$ go tool create-icons [flags]

It draws the icon (a database glyph with an extraction arrow on a blue
gradient) at each size and writes icon16.png, icon48.png and icon128.png to
the directory given by -dir, the current one by default.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
