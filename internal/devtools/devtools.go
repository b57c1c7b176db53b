// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"bytes"
	"os"
	"path/filepath"

	"go.astrophena.name/base/unwrap"
)

// EnsureRoot checks that the current working directory is at the module
// root and panics if it doesn't.
func EnsureRoot() {
	if !IsRoot(unwrap.Value(os.Getwd())) {
		panic("Are you at module root?")
	}
}

// IsRoot reports whether dir is the root of this module.
func IsRoot(dir string) bool {
	b, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if os.IsNotExist(err) {
		return false
	} else if err != nil {
		panic(err)
	}
	return bytes.HasPrefix(b, []byte("module "+modulePath+"\n"))
}

const modulePath = "go.astrophena.name/extension-icons"
