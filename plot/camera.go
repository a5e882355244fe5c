package plot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box aspect of the plotted volume, x:y:z = 4:4:3.
var boxHalf = r3.Vec{X: 1, Y: 1, Z: 0.75}

// camera is an orthographic view looking at the origin from elevation
// and azimuth angles in radians.
type camera struct {
	eye, right, up r3.Vec
}

func newCamera(elev, azim float64) camera {
	se, ce := math.Sincos(elev)
	sa, ca := math.Sincos(azim)
	eye := r3.Vec{X: ce * ca, Y: ce * sa, Z: se}
	right := r3.Vec{X: -sa, Y: ca}
	return camera{
		eye:   eye,
		right: right,
		up:    r3.Cross(eye, right),
	}
}

// project returns the view-plane coordinates of p (x right, y up) and
// its depth toward the viewer. Larger depth is closer.
func (c camera) project(p r3.Vec) (x, y, depth float64) {
	return r3.Dot(p, c.right), r3.Dot(p, c.up), r3.Dot(p, c.eye)
}

// bounds is an axis-aligned box in data space.
type bounds struct {
	min, max r3.Vec
}

func emptyBounds() bounds {
	inf := math.Inf(1)
	return bounds{
		min: r3.Vec{X: inf, Y: inf, Z: inf},
		max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

func (b *bounds) add(p r3.Vec) {
	b.min = r3.Vec{X: math.Min(b.min.X, p.X), Y: math.Min(b.min.Y, p.Y), Z: math.Min(b.min.Z, p.Z)}
	b.max = r3.Vec{X: math.Max(b.max.X, p.X), Y: math.Max(b.max.Y, p.Y), Z: math.Max(b.max.Z, p.Z)}
}

// normalize maps p from data space into the plot box [-boxHalf, boxHalf].
// Each axis is scaled on its own, so a flat strip still fills the box
// height. A zero-extent axis maps to the box center.
func (b bounds) normalize(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: normAxis(p.X, b.min.X, b.max.X) * boxHalf.X,
		Y: normAxis(p.Y, b.min.Y, b.max.Y) * boxHalf.Y,
		Z: normAxis(p.Z, b.min.Z, b.max.Z) * boxHalf.Z,
	}
}

func normAxis(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return 2*(v-lo)/(hi-lo) - 1
}

// boxCorners returns the eight corners of the plot box.
func boxCorners() [8]r3.Vec {
	var c [8]r3.Vec
	for i := range c {
		c[i] = r3.Vec{
			X: sign(i&1 != 0) * boxHalf.X,
			Y: sign(i&2 != 0) * boxHalf.Y,
			Z: sign(i&4 != 0) * boxHalf.Z,
		}
	}
	return c
}

// boxEdges lists corner index pairs that differ in exactly one axis.
func boxEdges() [][2]int {
	var edges [][2]int
	for i := range 8 {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges = append(edges, [2]int{i, i | bit})
			}
		}
	}
	return edges
}

func sign(pos bool) float64 {
	if pos {
		return 1
	}
	return -1
}
