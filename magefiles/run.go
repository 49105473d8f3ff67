//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the game with embedded assets.
func (Run) Game() error {
	_, err := executeCmd("go", withArgs("run", "."), withStream())
	return err
}

// Runs the game reading ./assets from disk with hot reload and debug logging.
func (Run) Dev() error {
	_, err := executeCmd("go", withArgs("run", ".", "-verbose", "-diagnostics", "-assets", "./assets"), withStream())
	return err
}
