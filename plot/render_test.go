package plot

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/mobius"
	"gonum.org/v1/gonum/mat"
)

func testStrip(t *testing.T, n int) *mobius.Strip {
	t.Helper()
	s, err := mobius.NewStrip(4.0, 0.4, n)
	if err != nil {
		t.Fatalf("NewStrip() error: %v", err)
	}
	return s
}

// inkedPixels counts pixels that differ noticeably from white.
func inkedPixels(img image.Image) int {
	var count int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r < 0xe000 || g < 0xe000 || bl < 0xe000 {
				count++
			}
		}
	}
	return count
}

func TestSavePNG(t *testing.T) {
	s := testStrip(t, 100)
	path := filepath.Join(t.TempDir(), "mobius_strip.png")

	if err := New().SavePNG(s.Mesh(), path); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("SavePNG() wrote an empty file")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error: %v", err)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("image size = %dx%d, want %dx%d", cfg.Width, cfg.Height, DefaultWidth, DefaultHeight)
	}
}

func TestEncodePNGDrawsSurface(t *testing.T) {
	s := testStrip(t, 60)
	var buf bytes.Buffer
	if err := New(WithSize(320, 240)).EncodePNG(s.Mesh(), &buf); err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("bounds = %v, want 320x240", b)
	}
	if n := inkedPixels(img); n < 1000 {
		t.Errorf("only %d non-background pixels; surface not drawn?", n)
	}
}

func TestDrawLeavesMeshUntouched(t *testing.T) {
	s := testStrip(t, 30)
	before := s.Mesh().Clone()

	dc, err := New().Draw(s.Mesh())
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	defer dc.Close()

	after := s.Mesh()
	for name, pair := range map[string][2]mat.Matrix{
		"X": {before.X, after.X},
		"Y": {before.Y, after.Y},
		"Z": {before.Z, after.Z},
	} {
		if !mat.Equal(pair[0], pair[1]) {
			t.Errorf("%s grid changed during Draw", name)
		}
	}
}

func TestDrawSize(t *testing.T) {
	dc, err := New(WithSize(200, 150)).Draw(testStrip(t, 10).Mesh())
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	defer dc.Close()
	if dc.Width() != 200 || dc.Height() != 150 {
		t.Errorf("context = %dx%d, want 200x150", dc.Width(), dc.Height())
	}
}

func TestDrawWithoutText(t *testing.T) {
	r := New(WithTitle(""), WithAxisLabels("", "", ""), WithFont(nil))
	dc, err := r.Draw(testStrip(t, 10).Mesh())
	if err != nil {
		t.Fatalf("Draw() without text error: %v", err)
	}
	_ = dc.Close()
}

// TestDrawnContextAcceptsText draws more text on a context returned by
// Draw using the face Draw left selected.
func TestDrawnContextAcceptsText(t *testing.T) {
	dc, err := New().Draw(testStrip(t, 10).Mesh())
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	defer dc.Close()

	if dc.Font() == nil {
		t.Fatal("Draw() left no font face on the context")
	}

	corner := image.Rect(0, 0, 120, 30)
	before := inkedPixels(dc.Image().(*image.RGBA).SubImage(corner))
	dc.SetRGBA(0, 0, 0, 1)
	dc.DrawString("annotation", 10, 20)
	after := inkedPixels(dc.Image().(*image.RGBA).SubImage(corner))
	if after <= before {
		t.Errorf("inked pixels in corner = %d after DrawString, want more than %d", after, before)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() after DrawString error: %v", err)
	}
}

func TestNonSquareMesh(t *testing.T) {
	x := mat.NewDense(3, 5, nil)
	y := mat.NewDense(3, 5, nil)
	z := mat.NewDense(3, 5, nil)
	for j := range 3 {
		for i := range 5 {
			x.Set(j, i, float64(i))
			y.Set(j, i, float64(j))
			z.Set(j, i, math.Sin(float64(i+j)))
		}
	}
	dc, err := New(WithSize(100, 100)).Draw(mobius.Mesh{X: x, Y: y, Z: z})
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	_ = dc.Close()
}

func TestMeshShapeErrors(t *testing.T) {
	sq := func(r, c int) *mat.Dense { return mat.NewDense(r, c, nil) }
	tests := []struct {
		name string
		mesh mobius.Mesh
	}{
		{"missing grids", mobius.Mesh{}},
		{"missing Z", mobius.Mesh{X: sq(3, 3), Y: sq(3, 3)}},
		{"mismatched Y", mobius.Mesh{X: sq(3, 3), Y: sq(3, 4), Z: sq(3, 3)}},
		{"mismatched Z", mobius.Mesh{X: sq(3, 3), Y: sq(3, 3), Z: sq(2, 3)}},
		{"single row", mobius.Mesh{X: sq(1, 4), Y: sq(1, 4), Z: sq(1, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Draw(tt.mesh)
			if !errors.Is(err, ErrMeshShape) {
				t.Fatalf("Draw() error = %v, want ErrMeshShape", err)
			}
			var re *RenderError
			if !errors.As(err, &re) || re.Op != "mesh" {
				t.Errorf("Draw() error = %#v, want *RenderError{Op: mesh}", err)
			}
		})
	}
}

func TestBadFont(t *testing.T) {
	_, err := New(WithFont([]byte("not a font"))).Draw(testStrip(t, 10).Mesh())
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("Draw() error = %v, want *RenderError", err)
	}
	if re.Op != "font" {
		t.Errorf("RenderError.Op = %q, want %q", re.Op, "font")
	}
}

func TestSavePNGUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.png")
	err := New().SavePNG(testStrip(t, 10).Mesh(), path)

	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("SavePNG() error = %v, want *RenderError", err)
	}
	if re.Op != "save" || re.Path != path {
		t.Errorf("RenderError = {Op: %q, Path: %q}, want {save, %q}", re.Op, re.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("SavePNG() error does not wrap os.ErrNotExist: %v", err)
	}
}

func TestRenderErrorMessage(t *testing.T) {
	tests := []struct {
		err  *RenderError
		want string
	}{
		{&RenderError{Op: "font", Err: errors.New("bad")}, "plot: font: bad"},
		{&RenderError{Op: "save", Path: "a.png", Err: errors.New("denied")}, "plot: save a.png: denied"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestStrideIndices(t *testing.T) {
	tests := []struct {
		n, max    int
		wantLen   int
		wantFirst int
	}{
		{100, 50, 51, 0},
		{10, 50, 10, 0},
		{2, 50, 2, 0},
		{101, 50, 35, 0},
	}
	for _, tt := range tests {
		idx := strideIndices(tt.n, tt.max)
		if len(idx) != tt.wantLen {
			t.Errorf("strideIndices(%d, %d) has %d lines, want %d", tt.n, tt.max, len(idx), tt.wantLen)
		}
		if idx[0] != tt.wantFirst || idx[len(idx)-1] != tt.n-1 {
			t.Errorf("strideIndices(%d, %d) = %v, want to span 0..%d", tt.n, tt.max, idx, tt.n-1)
		}
		if cells := len(idx) - 1; cells > tt.max {
			t.Errorf("strideIndices(%d, %d) yields %d cells", tt.n, tt.max, cells)
		}
	}
}

func BenchmarkSavePNG(b *testing.B) {
	s, err := mobius.NewStrip(4, 0.4, 100)
	if err != nil {
		b.Fatal(err)
	}
	r := New()
	b.ResetTimer()
	for b.Loop() {
		var buf bytes.Buffer
		if err := r.EncodePNG(s.Mesh(), &buf); err != nil {
			b.Fatal(err)
		}
	}
}
