package engine

import (
	"io/fs"

	"github.com/spaghettifunk/glshapes/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel core.LogLevel
	// Directory holding shader sources. Watched for changes when it exists.
	AssetPath string
	// Served when AssetPath is empty or missing.
	Assets fs.FS
	// Stop after this many frames. Zero runs until the window closes.
	MaxFrames uint64
}
