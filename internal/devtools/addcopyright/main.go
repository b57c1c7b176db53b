// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Addcopyright adds copyright header to each Go file.
//
// With -check, it only lists the files that lack the header and fails if
// there are any.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/extension-icons/internal/devtools"
)

func main() { cli.Main(new(app)) }

const (
	header   = "// ©"
	template = `// © %d Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

`
)

var errMissingHeaders = errors.New("some files lack the copyright header")

type app struct {
	check bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.check, "check", false, "Only report files without the header.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()
	env := cli.GetEnv(ctx)

	missing, err := walk(".", !a.check)
	if err != nil {
		return err
	}
	if a.check && len(missing) > 0 {
		for _, path := range missing {
			fmt.Fprintln(env.Stderr, path)
		}
		return errMissingHeaders
	}
	return nil
}

// skipDir reports whether the directory is ignored by the Go tool.
func skipDir(path string) bool {
	if path == "." {
		return false
	}
	base := filepath.Base(path)
	return base == "testdata" || strings.HasPrefix(base, "_") || strings.HasPrefix(base, ".")
}

// walk finds Go files under root that lack the header. If fix is true, it
// adds the header to them.
func walk(root string, fix bool) (missing []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(content, []byte(header)) {
			return nil // Already has a copyright header
		}
		missing = append(missing, path)
		if !fix {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return os.WriteFile(path, withHeader(content, info.ModTime().Year()), 0o644)
	})
	return missing, err
}

func withHeader(content []byte, year int) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, template, year)
	buf.Write(content)
	return buf.Bytes()
}
