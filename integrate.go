package mobius

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// SurfaceArea estimates ∬|∂P/∂u × ∂P/∂v| du dv over the sample grid.
//
// The estimate is a rectangle-rule sum: every one of the n×n area-element
// samples, endpoints included, times du·dv. The error shrinks as O(1/n).
func (s *Strip) SurfaceArea() float64 {
	n := s.params.N
	elems := make([]float64, 0, n*n)
	for j := range n {
		for i := range n {
			elems = append(elems, AreaElement(s.gridU.At(j, i), s.gridV.At(j, i), s.params.R))
		}
	}
	return s.summation.sum(elems) * s.du * s.dv
}

// EdgeLength estimates the arc length of the edge curve v = +w/2 for u
// over [0, 2π].
//
// This is one pass around the strip at fixed v. The physical boundary
// closes up only after a second pass along v = -w/2; see BoundaryLength.
func (s *Strip) EdgeLength() float64 {
	speeds := make([]float64, len(s.u))
	for i, u := range s.u {
		speeds[i] = r3.Norm(EdgeTangent(u, s.params.R, s.params.W))
	}
	return s.summation.sum(speeds) * s.du
}

// BoundaryLength estimates the length of the strip's single boundary by
// following the edge curve v = +w/2 for u over [0, 4π]. Past u = 2π the
// curve continues along v = -w/2, so the traversal closes on itself.
//
// It uses the same step du and the same rectangle rule as EdgeLength,
// over 2(n-1)+1 samples.
func (s *Strip) BoundaryLength() float64 {
	m := 2*(s.params.N-1) + 1
	speeds := make([]float64, m)
	for k := range m {
		u := float64(k) * s.du
		speeds[k] = r3.Norm(EdgeTangent(u, s.params.R, s.params.W))
	}
	return s.summation.sum(speeds) * s.du
}
