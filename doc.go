// Package mobius models a Möbius strip as a discretized parametric surface
// and estimates its surface area and boundary length.
//
// # Overview
//
// A Strip is built once from a midline radius R, a strip width w and a
// resolution n. Construction samples the angular coordinate u over [0, 2π]
// and the across-width coordinate v over [-w/2, w/2], forms the n×n sample
// grid and evaluates the half-twist embedding at every point:
//
//	x = (R + v·cos(u/2))·cos(u)
//	y = (R + v·cos(u/2))·sin(u)
//	z = v·sin(u/2)
//
// # Quick Start
//
//	import "github.com/gogpu/mobius"
//
//	s, err := mobius.NewStrip(4.0, 0.4, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Surface Area: %.4f square units\n", s.SurfaceArea())
//	fmt.Printf("Edge Length: %.4f units\n", s.EdgeLength())
//
// The position mesh returned by [Strip.Mesh] is what the plot package
// consumes to produce an image.
//
// # Numerics
//
// Both estimators use the left rectangle rule on the fixed grid: the area
// sums |∂P/∂u × ∂P/∂v| over all n×n samples times du·dv, and the edge
// length sums the speed of the v = +w/2 edge curve times du. There is no
// adaptive refinement and no error bound; the error shrinks as O(1/n).
// [Strip.EdgeLength] covers one traversal at fixed v. [Strip.BoundaryLength]
// follows the single boundary all the way around (u over [0, 4π]).
//
// # Coordinate Grids
//
// Grids follow the meshgrid convention: row j walks v and column i walks
// u, so U.At(j, i) == u[i] and V.At(j, i) == v[j].
package mobius
