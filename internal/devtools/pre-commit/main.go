// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Pre-commit runs the checks a change has to pass: formatting, staticcheck,
// tests, tidy go.mod and copyright headers.
package main

import (
	"bytes"
	"log"
	"os"
	"os/exec"

	"go.astrophena.name/extension-icons/internal/devtools"
)

func main() {
	log.SetFlags(0)
	devtools.EnsureRoot()

	isCI := os.Getenv("CI") == "true"

	var w bytes.Buffer

	run(&w, "gofmt", "-l", "ci_test.go", "internal")
	if files := w.String(); files != "" {
		log.Fatalf("Run gofmt on these files:\n%v", files)
	}

	run(&w, "go", "vet", "./...")
	run(&w, "go", "tool", "staticcheck", "./...")

	if isCI {
		run(&w, "go", "test", "-race", "./...")
	} else {
		run(&w, "go", "test", "./...")
	}

	run(&w, "go", "mod", "tidy", "--diff")

	if isCI {
		run(&w, "go", "tool", "addcopyright", "-check")
	} else {
		run(&w, "go", "tool", "addcopyright")
	}
}

func run(buf *bytes.Buffer, cmd string, args ...string) {
	buf.Reset()
	c := exec.Command(cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		log.Fatalf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
}
