package plot

import (
	"errors"
	"fmt"
)

// ErrMeshShape is returned when the three coordinate grids are missing,
// differ in shape, or are too small to form a single cell.
var ErrMeshShape = errors.New("plot: mesh grids must share a shape of at least 2x2")

// RenderError reports a failed rendering step. Op names the step
// ("mesh", "font", "fill", "stroke", "save", "encode"); Path is set for
// file output.
type RenderError struct {
	Op   string
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("plot: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("plot: %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
