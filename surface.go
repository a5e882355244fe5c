package mobius

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Position evaluates the half-twist embedding at (u, v) for midline
// radius r. As u sweeps 0 to 2π the cross-section turns by u/2, half a
// revolution, which leaves the surface with one side and one edge.
//
// The mesh, the boundary curve and the estimators all go through this
// function so the formula is evaluated identically everywhere.
func Position(u, v, r float64) r3.Vec {
	s, c := math.Sincos(u)
	sh, ch := math.Sincos(u / 2)
	rho := r + v*ch
	return r3.Vec{
		X: rho * c,
		Y: rho * s,
		Z: v * sh,
	}
}

// PartialU returns ∂P/∂u at (u, v) for midline radius r.
func PartialU(u, v, r float64) r3.Vec {
	s, c := math.Sincos(u)
	sh, ch := math.Sincos(u / 2)
	rho := r + v*ch
	return r3.Vec{
		X: -rho*s - (v/2)*sh*c,
		Y: rho*c - (v/2)*sh*s,
		Z: (v / 2) * ch,
	}
}

// PartialV returns ∂P/∂v at u. It does not depend on v or on the radius.
func PartialV(u float64) r3.Vec {
	s, c := math.Sincos(u)
	sh, ch := math.Sincos(u / 2)
	return r3.Vec{
		X: ch * c,
		Y: ch * s,
		Z: sh,
	}
}

// AreaElement returns |∂P/∂u × ∂P/∂v|, the local area scaling factor of
// the parametrization at (u, v).
func AreaElement(u, v, r float64) float64 {
	return r3.Norm(r3.Cross(PartialU(u, v, r), PartialV(u)))
}

// EdgeTangent returns dP/du along the edge curve v = w/2 for a strip of
// midline radius r and width w.
func EdgeTangent(u, r, w float64) r3.Vec {
	return PartialU(u, w/2, r)
}
