package core

import (
	"errors"
)

var (
	ErrWindowCreate     = errors.New("failed to create window")
	ErrLoaderInit       = errors.New("failed to initialize the OpenGL loader")
	ErrShaderCompile    = errors.New("shader compilation failed")
	ErrShaderLink       = errors.New("shader program link failed")
	ErrUnknownExercise  = errors.New("unknown exercise")
	ErrInvalidScene     = errors.New("invalid scene")
	ErrUnknownShape     = errors.New("unknown shape kind")
	ErrUnknownDrawMode  = errors.New("unknown draw mode")
	ErrGeometrySlots    = errors.New("no free geometry slot")
	ErrInvalidGeometry  = errors.New("invalid geometry id")
	ErrUnknownAssetType = errors.New("unknown asset type")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrHeadlessOnly     = errors.New("operation requires a headless engine")
	ErrUnknown          = errors.New("unknown")
)
