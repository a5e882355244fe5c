package mobius

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// linspace returns n evenly spaced samples over [start, stop] with both
// endpoints included. The last sample is exactly stop.
// n must be at least 2.
func linspace(start, stop float64, n int) []float64 {
	s := floats.Span(make([]float64, n), start, stop)
	s[n-1] = stop
	return s
}

// meshgrid forms the full cross product of u and v. Row j walks v and
// column i walks u, so U.At(j, i) == u[i] and V.At(j, i) == v[j].
func meshgrid(u, v []float64) (uu, vv *mat.Dense) {
	rows, cols := len(v), len(u)
	uu = mat.NewDense(rows, cols, nil)
	vv = mat.NewDense(rows, cols, nil)
	for j := range rows {
		uu.SetRow(j, u)
		for i := range cols {
			vv.Set(j, i, v[j])
		}
	}
	return uu, vv
}

// readOnly exposes a dense grid through mat.Matrix without handing out
// the *mat.Dense that backs it.
type readOnly struct {
	m *mat.Dense
}

func (r readOnly) Dims() (rows, cols int) { return r.m.Dims() }
func (r readOnly) At(i, j int) float64    { return r.m.At(i, j) }
func (r readOnly) T() mat.Matrix          { return mat.Transpose{Matrix: r} }

// Mesh is the sampled position of the strip: three equal-shaped grids
// laid out like the sample grid.
//
// Grids obtained from a Strip are read-only views of state the Strip
// owns. Use Clone for mutable copies.
type Mesh struct {
	X, Y, Z mat.Matrix
}

// Dims returns the shared shape of the three grids.
func (m Mesh) Dims() (rows, cols int) {
	return m.X.Dims()
}

// Clone returns a Mesh backed by freshly allocated matrices.
func (m Mesh) Clone() Mesh {
	return Mesh{
		X: mat.DenseCopyOf(m.X),
		Y: mat.DenseCopyOf(m.Y),
		Z: mat.DenseCopyOf(m.Z),
	}
}

// At returns the position sample at row j, column i.
func (m Mesh) At(j, i int) (x, y, z float64) {
	return m.X.At(j, i), m.Y.At(j, i), m.Z.At(j, i)
}
