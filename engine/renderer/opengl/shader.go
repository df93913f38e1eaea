package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
)

// ShaderCreate compiles both stages and links them. Failures do not abort:
// the program object is kept so the render loop can go on using it.
func (r *OpenGLRenderer) ShaderCreate(shader *metadata.Shader) error {
	cfg := shader.Config
	vs, vsErr := compileShader(cfg.VertexSource, gl.VERTEX_SHADER)
	fs, fsErr := compileShader(cfg.FragmentSource, gl.FRAGMENT_SHADER)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	linkErr := programStatus(program)

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	shader.InternalID = program
	if err := errors.Join(vsErr, fsErr, linkErr); err != nil {
		shader.State = metadata.SHADER_STATE_BROKEN
		return err
	}
	shader.State = metadata.SHADER_STATE_INITIALIZED
	return nil
}

func (r *OpenGLRenderer) ShaderDestroy(shader *metadata.Shader) {
	if shader.InternalID != 0 && shader.InternalID != metadata.InvalidID {
		gl.DeleteProgram(shader.InternalID)
	}
	shader.InternalID = metadata.InvalidID
	shader.State = metadata.SHADER_STATE_NOT_CREATED
}

func (r *OpenGLRenderer) ShaderUse(shader *metadata.Shader) error {
	if shader.State == metadata.SHADER_STATE_NOT_CREATED {
		return fmt.Errorf("shader %s was never created", shader.Name)
	}
	gl.UseProgram(shader.InternalID)
	if shader.State == metadata.SHADER_STATE_BROKEN {
		return fmt.Errorf("shader %s failed to build", shader.Name)
	}
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return shader, fmt.Errorf("%w (%s): %s", core.ErrShaderCompile, stageName(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func programStatus(program uint32) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return fmt.Errorf("%w: %s", core.ErrShaderLink, strings.TrimRight(log, "\x00"))
	}
	return nil
}

func stageName(shaderType uint32) string {
	if shaderType == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}
