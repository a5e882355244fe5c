package plot

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCameraBasisOrthonormal(t *testing.T) {
	for _, view := range [][2]float64{{30, -60}, {0, 0}, {90, 45}, {-20, 170}} {
		cam := newCamera(view[0]*math.Pi/180, view[1]*math.Pi/180)
		for name, v := range map[string]r3.Vec{"eye": cam.eye, "right": cam.right, "up": cam.up} {
			if n := r3.Norm(v); math.Abs(n-1) > 1e-12 {
				t.Errorf("view %v: |%s| = %v, want 1", view, name, n)
			}
		}
		if d := r3.Dot(cam.eye, cam.right); math.Abs(d) > 1e-12 {
			t.Errorf("view %v: eye·right = %v", view, d)
		}
		if d := r3.Dot(cam.eye, cam.up); math.Abs(d) > 1e-12 {
			t.Errorf("view %v: eye·up = %v", view, d)
		}
	}
}

func TestCameraLevelViewKeepsZUp(t *testing.T) {
	cam := newCamera(0, 0)
	_, y, _ := cam.project(r3.Vec{Z: 1})
	if math.Abs(y-1) > 1e-12 {
		t.Errorf("project(+Z).y = %v, want 1", y)
	}
	_, _, d := cam.project(r3.Vec{X: 1})
	if d <= 0 {
		t.Errorf("point toward the eye has depth %v, want > 0", d)
	}
}

func TestBoundsNormalize(t *testing.T) {
	b := emptyBounds()
	b.add(r3.Vec{X: -4, Y: -2, Z: 5})
	b.add(r3.Vec{X: 4, Y: 2, Z: 5})

	got := b.normalize(r3.Vec{X: 4, Y: 0, Z: 5})
	want := r3.Vec{X: boxHalf.X, Y: 0, Z: 0}
	if r3.Norm(r3.Sub(got, want)) > 1e-12 {
		t.Errorf("normalize = %+v, want %+v", got, want)
	}
}

func TestBoxGeometry(t *testing.T) {
	if got := len(boxEdges()); got != 12 {
		t.Errorf("len(boxEdges()) = %d, want 12", got)
	}
	for _, c := range boxCorners() {
		if math.Abs(c.X) != boxHalf.X || math.Abs(c.Y) != boxHalf.Y || math.Abs(c.Z) != boxHalf.Z {
			t.Errorf("corner %+v is not on the box", c)
		}
	}
}
