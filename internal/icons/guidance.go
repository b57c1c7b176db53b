// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"fmt"
	"io"
)

// alternative points to the tool that draws the icons without any SVG
// renderer.
const alternative = "go tool create-icons"

// PrintInstallGuidance prints instructions for installing the renderer called
// name, and points to the alternative tool.
func PrintInstallGuidance(w io.Writer, name string) {
	fmt.Fprintln(w, "❌ Missing required renderer!")
	fmt.Fprintln(w, "\nInstall it with:")
	fmt.Fprintf(w, "  %s\n", installHint(name))
	fmt.Fprintf(w, "\nOr draw the icons without SVG sources: %s\n", alternative)
}

// PrintFailure reports err and points to the alternative tool.
func PrintFailure(w io.Writer, err error) {
	fmt.Fprintf(w, "❌ Error: %v\n", err)
	fmt.Fprintf(w, "\nAlternative: draw the icons without SVG sources (%s)\n", alternative)
}
