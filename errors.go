package msdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the msdf package.
var (
	// ErrOutOfMemory is returned when the output bitmap cannot be allocated.
	ErrOutOfMemory = errors.New("msdf: out of memory allocating bitmap")

	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("msdf: invalid config")

	// ErrOpenContour is wrapped by ContourError when a contour does not close.
	ErrOpenContour = errors.New("msdf: contour is not closed")

	// ErrUnknownVertex is wrapped by VertexError for unrecognized commands.
	ErrUnknownVertex = errors.New("msdf: unknown vertex command")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdf: invalid config." + e.Field + ": " + e.Reason
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// ContourError reports a contour whose last edge does not end at its first
// edge's start.
type ContourError struct {
	// Index is the contour's position in the shape.
	Index int

	// Gap is the distance between the end and the start point.
	Gap float64
}

func (e *ContourError) Error() string {
	return fmt.Sprintf("msdf: contour %d is not closed (gap %g)", e.Index, e.Gap)
}

// Unwrap returns ErrOpenContour.
func (e *ContourError) Unwrap() error { return ErrOpenContour }

// VertexError reports a vertex command the shape builder does not know.
type VertexError struct {
	// Index is the command's position in the input stream.
	Index int
	Kind  VertexKind
}

func (e *VertexError) Error() string {
	return fmt.Sprintf("msdf: vertex %d: unknown command kind %d", e.Index, e.Kind)
}

// Unwrap returns ErrUnknownVertex.
func (e *VertexError) Unwrap() error { return ErrUnknownVertex }
