//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

var Default = Build.Gridtool

type Build mg.Namespace

// Builds the gridtool binary into bin/.
func (Build) Gridtool() error {
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", "bin/gridtool", "./cmd/gridtool"), withStream())
	return err
}

type Check mg.Namespace

// Runs go vet over every package.
func (Check) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Runs the test suite with the race detector.
func (Check) Test() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Runs vet, then tests.
func (Check) All() {
	mg.SerialDeps(Check.Vet, Check.Test)
}

type Sample mg.Namespace

// Renders the standard preset to samples/ as SVG and PNG.
func (Sample) Standard() error {
	mg.Deps(Build.Gridtool)
	if err := os.MkdirAll("samples", 0755); err != nil {
		return err
	}
	for _, format := range []string{"svg", "png"} {
		out := fmt.Sprintf("samples/standard.%s", format)
		if _, err := executeCmd("bin/gridtool", withArgs("generate", "-preset", "standard", "-room", "standard", "-o", out)); err != nil {
			return err
		}
	}
	return nil
}
