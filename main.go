/*
glshapes runs the classroom shape exercises: each one uploads a few 2D
vertex buffers once and redraws them every frame until the window closes.

	glshapes [flags] [exercise]

With -snapshot the exercise is rendered once, without a window, to a PNG.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spaghettifunk/glshapes/engine"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/resources"
	"github.com/spaghettifunk/glshapes/exercises"
)

const defaultExercise = "ex07"

func main() {
	var (
		scenePath = flag.String("scene", "", "load the scene from this TOML/YAML file instead of a built-in exercise")
		assetPath = flag.String("assets", "", "directory holding shader sources; watched for changes")
		snapshot  = flag.String("snapshot", "", "render one frame headless and write it to this PNG file")
		list      = flag.Bool("list", false, "list the built-in exercises and exit")
		logLevel  = flag.String("log-level", "", "debug, info, warn, error (overrides the scene)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [exercise]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, name := range exercises.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := run(*scenePath, *assetPath, *snapshot, *logLevel, flag.Arg(0)); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}

func run(scenePath, assetPath, snapshot, logLevel, exercise string) error {
	scene, err := loadScene(scenePath, exercise)
	if err != nil {
		return err
	}
	if logLevel != "" {
		scene.LogLevel = logLevel
	}
	// Shader paths in an external scene are relative to the scene file.
	if assetPath == "" && scenePath != "" {
		assetPath = filepath.Dir(scenePath)
	}

	game, err := exercises.NewSceneGame(scene, assetPath, exercises.Assets())
	if err != nil {
		return err
	}

	var e *engine.Engine
	if snapshot != "" {
		e, err = engine.NewHeadless(game.Game)
	} else {
		e, err = engine.New(game.Game)
	}
	if err != nil {
		return err
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		return err
	}
	defer func() {
		if err := e.Shutdown(); err != nil {
			core.LogError("shutdown: %s", err)
		}
	}()

	if snapshot != "" {
		return e.RenderSnapshot(snapshot)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// the loop owns the GL context, so the handler only asks it to stop
	go func() {
		if _, ok := <-sigCh; ok {
			e.Stop()
		}
	}()

	return e.Run()
}

func loadScene(scenePath, exercise string) (*resources.Scene, error) {
	if scenePath != "" {
		return exercises.LoadFile(scenePath)
	}
	if exercise == "" {
		exercise = defaultExercise
	}
	return exercises.Load(exercise)
}
