//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

const binary = "bin/glshapes"

// Compiles the glshapes binary into bin/.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", binary, "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Validates the exercise GLSL sources with glslangValidator.
func (Build) Shaders() error {
	return buildShaders()
}

func buildShaders() error {
	sources, err := filepath.Glob("exercises/shaders/*")
	if err != nil {
		return err
	}
	for _, s := range sources {
		if _, err := executeCmd("glslangValidator", withArgs(s), withStream()); err != nil {
			return err
		}
	}
	return nil
}
