package resources

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  uint32 = 800
	DefaultHeight uint32 = 600
)

// Scene describes one exercise: the window, the shader pair and the shapes
// uploaded once and drawn every frame.
type Scene struct {
	Name        string     `toml:"name" yaml:"name"`
	Title       string     `toml:"title" yaml:"title"`
	Width       uint32     `toml:"width" yaml:"width"`
	Height      uint32     `toml:"height" yaml:"height"`
	ClearColour []float32  `toml:"clear_colour" yaml:"clear_colour"`
	LogLevel    string     `toml:"log_level" yaml:"log_level"`
	Shader      ShaderSpec `toml:"shader" yaml:"shader"`
	Shapes      []Shape    `toml:"shapes" yaml:"shapes"`
}

// ShaderSpec selects the shader pair. With no paths the built-in
// fixed-colour pair is generated from Colour.
type ShaderSpec struct {
	Vertex   string    `toml:"vertex" yaml:"vertex"`
	Fragment string    `toml:"fragment" yaml:"fragment"`
	Colour   []float32 `toml:"colour" yaml:"colour"`
}

func (s ShaderSpec) UsesFiles() bool {
	return s.Vertex != "" || s.Fragment != ""
}

func (s ShaderSpec) FixedColour() math.Colour {
	if len(s.Colour) == 0 {
		return math.NewVec4(1, 1, 1, 1)
	}
	return math.ClampColour(math.NewVec4FromSlice(s.Colour))
}

func (s *Scene) ClearColourValue() math.Colour {
	if len(s.ClearColour) == 0 {
		return math.NewVec4(0.1, 0.1, 0.1, 1)
	}
	return math.ClampColour(math.NewVec4FromSlice(s.ClearColour))
}

// ApplyDefaults fills the window fields left empty.
func (s *Scene) ApplyDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Title == "" {
		s.Title = s.Name
	}
	for i := range s.Shapes {
		if s.Shapes[i].Name == "" {
			s.Shapes[i].Name = fmt.Sprintf("%s_%s_%d", s.Name, s.Shapes[i].Kind, i)
		}
	}
}

// Validate checks the whole scene, generating every shape to verify the
// draw ranges against the real vertex counts.
func (s *Scene) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: missing name", core.ErrInvalidScene)
	}
	if len(s.Shapes) == 0 {
		return fmt.Errorf("%w: scene %q has no shapes", core.ErrInvalidScene, s.Name)
	}
	if err := checkColour("clear_colour", s.ClearColour); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if err := checkColour("shader.colour", s.Shader.Colour); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if (s.Shader.Vertex == "") != (s.Shader.Fragment == "") {
		return fmt.Errorf("%w: scene %q: shader needs both vertex and fragment paths", core.ErrInvalidScene, s.Name)
	}
	if _, err := core.ParseLogLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: scene %q: %v", core.ErrInvalidScene, s.Name, err)
	}
	for i := range s.Shapes {
		sh := &s.Shapes[i]
		verts, _, err := sh.Generate()
		if err != nil {
			return fmt.Errorf("scene %q shape %d (%s): %w", s.Name, i, sh.Name, err)
		}
		if _, err := sh.DrawCommands(uint32(len(verts))); err != nil {
			return fmt.Errorf("scene %q shape %d (%s): %w", s.Name, i, sh.Name, err)
		}
	}
	return nil
}

func checkColour(field string, c []float32) error {
	if len(c) != 0 && len(c) != 3 && len(c) != 4 {
		return fmt.Errorf("%w: %s needs 3 or 4 components, got %d", core.ErrInvalidScene, field, len(c))
	}
	return nil
}

// DecodeScene parses a scene file, choosing TOML or YAML from the file
// extension, then applies defaults and validates it.
func DecodeScene(filename string, data []byte) (*Scene, error) {
	scene := &Scene{}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(scene); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", core.ErrInvalidScene, filename, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(scene); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", core.ErrInvalidScene, filename, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownAssetType, filename)
	}

	if scene.Name == "" {
		scene.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	scene.ApplyDefaults()
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}
