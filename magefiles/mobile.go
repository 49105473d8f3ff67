//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Mobile mg.Namespace

// Builds build/android/roguelike.aar with ebitenmobile.
func (Mobile) Android() error {
	mg.Deps(prepareMobile)
	_, err := executeCmd("ebitenmobile", withArgs(
		"bind", "-target", "android", "-tags", "mobile", "-androidapi", "23",
		"-javapkg", "com.decker.roguelike", "-o", "build/android/roguelike.aar", "./mobile",
	), withStream())
	return err
}

// Builds build/ios/Roguelike.xcframework with ebitenmobile (macOS only).
func (Mobile) IOS() error {
	mg.Deps(prepareMobile)
	_, err := executeCmd("ebitenmobile", withArgs(
		"bind", "-target", "ios", "-tags", "mobile", "-o", "build/ios/Roguelike.xcframework", "./mobile",
	), withStream())
	return err
}

// prepareMobile copies assets/ into mobile/ so //go:embed can see them.
func prepareMobile() error {
	if err := os.RemoveAll("mobile/assets"); err != nil {
		return fmt.Errorf("clean mobile assets: %w", err)
	}
	return os.CopyFS("mobile/assets", os.DirFS("assets"))
}
