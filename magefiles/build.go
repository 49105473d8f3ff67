//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the desktop binary into build/roguelike.
func (Build) Desktop() error {
	_, err := executeCmd("go", withArgs("build", "-o", "build/roguelike", "."), withStream())
	return err
}

// Runs go vet and the unit tests.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
