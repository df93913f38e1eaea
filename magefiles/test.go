//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the tests that need neither a window nor a GPU, with the race detector.
func (Test) Headless() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./engine/math/...", "./engine/resources/...", "./engine/renderer/software/...", "./exercises/..."), withStream())
	return err
}
