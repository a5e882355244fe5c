package mobius

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Params are the fixed construction parameters of a Strip.
type Params struct {
	// R is the distance from the center to the strip's midline.
	R float64
	// W is the strip width.
	W float64
	// N is the number of samples per parametric axis.
	N int
}

// Strip is a Möbius strip sampled on a fixed n×n parameter grid.
//
// All grids are derived once in New; a Strip is never mutated afterwards
// and is safe for concurrent use by multiple goroutines.
type Strip struct {
	params    Params
	summation Summation

	u, v   []float64
	du, dv float64

	gridU, gridV *mat.Dense
	x, y, z      *mat.Dense
}

// New creates a Strip from functional options. Unset parameters take the
// defaults R=1.0, w=0.5, n=100.
//
// An invalid parameter yields a *ParameterError matching ErrInvalidParameter
// and a nil Strip.
func New(opts ...Option) (*Strip, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := Params{R: o.radius, W: o.width, N: o.resolution}
	if err := p.validate(); err != nil {
		return nil, err
	}

	s := &Strip{
		params:    p,
		summation: o.summation,
		u:         linspace(0, 2*math.Pi, p.N),
		v:         linspace(-p.W/2, p.W/2, p.N),
	}
	s.du = s.u[1] - s.u[0]
	s.dv = s.v[1] - s.v[0]
	s.generateMesh()

	Logger().Debug("mobius: strip constructed",
		"R", p.R, "w", p.W, "n", p.N,
		"du", s.du, "dv", s.dv,
		"summation", s.summation.String())
	return s, nil
}

// NewStrip creates a Strip with explicit radius, width and resolution.
func NewStrip(r, w float64, n int) (*Strip, error) {
	return New(WithRadius(r), WithWidth(w), WithResolution(n))
}

func (p Params) validate() error {
	switch {
	case p.N < 2:
		return &ParameterError{Name: "n", Value: float64(p.N), Reason: "need at least 2 samples per axis"}
	case !isFinite(p.R):
		return &ParameterError{Name: "R", Value: p.R, Reason: "must be finite"}
	case p.R <= 0:
		return &ParameterError{Name: "R", Value: p.R, Reason: "must be positive"}
	case !isFinite(p.W):
		return &ParameterError{Name: "w", Value: p.W, Reason: "must be finite"}
	case p.W <= 0:
		return &ParameterError{Name: "w", Value: p.W, Reason: "must be positive"}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// generateMesh fills the sample grid and the position grids.
func (s *Strip) generateMesh() {
	n := s.params.N
	s.gridU, s.gridV = meshgrid(s.u, s.v)
	s.x = mat.NewDense(n, n, nil)
	s.y = mat.NewDense(n, n, nil)
	s.z = mat.NewDense(n, n, nil)
	for j := range n {
		for i := range n {
			p := Position(s.gridU.At(j, i), s.gridV.At(j, i), s.params.R)
			s.x.Set(j, i, p.X)
			s.y.Set(j, i, p.Y)
			s.z.Set(j, i, p.Z)
		}
	}
}

// Params returns the construction parameters.
func (s *Strip) Params() Params {
	return s.params
}

// Summation returns the reduction mode used by the estimators.
func (s *Strip) Summation() Summation {
	return s.summation
}

// U returns a copy of the angular samples, n values over [0, 2π].
func (s *Strip) U() []float64 {
	return slices.Clone(s.u)
}

// V returns a copy of the width samples, n values over [-w/2, w/2].
func (s *Strip) V() []float64 {
	return slices.Clone(s.v)
}

// Steps returns the uniform grid spacing du and dv.
func (s *Strip) Steps() (du, dv float64) {
	return s.du, s.dv
}

// SampleGrid returns read-only views of the n×n parameter grids U and V.
func (s *Strip) SampleGrid() (u, v mat.Matrix) {
	return readOnly{s.gridU}, readOnly{s.gridV}
}

// Mesh returns read-only views of the position grids.
func (s *Strip) Mesh() Mesh {
	return Mesh{
		X: readOnly{s.x},
		Y: readOnly{s.y},
		Z: readOnly{s.z},
	}
}

// Boundary returns the edge curve v = +w/2 sampled at every u.
func (s *Strip) Boundary() (x, y, z []float64) {
	n := s.params.N
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i, u := range s.u {
		p := Position(u, s.params.W/2, s.params.R)
		x[i], y[i], z[i] = p.X, p.Y, p.Z
	}
	return x, y, z
}
