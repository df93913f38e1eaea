//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens a window with the given built-in exercise (ex06, ex07, ex08, ex10).
func (Run) Exercise(name string) error {
	mg.Deps(Build.Binary)
	fmt.Printf("Run exercise %s...\n", name)
	if _, err := executeCmd(binary, withArgs("-assets", "exercises", name), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders every built-in exercise headless into snapshots/.
func (Run) Snapshots() error {
	mg.Deps(Build.Binary)
	if err := os.MkdirAll("snapshots", 0o755); err != nil {
		return err
	}
	out, err := executeCmd(binary, withArgs("-list"))
	if err != nil {
		return err
	}
	for _, name := range splitLines(out) {
		png := filepath.Join("snapshots", name+".png")
		if _, err := executeCmd(binary, withArgs("-snapshot", png, name), withStream()); err != nil {
			return err
		}
	}
	return nil
}
