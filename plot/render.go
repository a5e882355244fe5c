// Package plot renders a strip's position mesh as a shaded 3-D surface
// image using the gg software rasterizer.
//
// The renderer only reads the mesh. It projects the grids orthographically,
// strides fine meshes down to a bounded number of cells, colors each cell
// by its mean height and paints back to front.
package plot

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/mobius"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	marginSide   = 40.0
	marginTop    = 70.0
	marginBottom = 40.0

	titleSize = 16.0
	labelSize = 13.0
)

var (
	boxColor  = gg.RGBA2(0.55, 0.55, 0.55, 1)
	textColor = gg.Black
)

// Renderer draws meshes to images. A Renderer is immutable and may be
// shared between goroutines; each call creates its own gg.Context.
//
// The font is parsed once per Renderer and stays open for its lifetime,
// so the face left on a context returned by Draw remains usable.
type Renderer struct {
	cfg     config
	font    *text.FontSource
	fontErr error
}

// New creates a Renderer with the given options. A font that fails to
// parse is reported by the first Draw that needs text.
func New(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &Renderer{cfg: cfg}
	r.font, r.fontErr = text.NewFontSource(cfg.fontData)
	return r
}

// cell is one projected quadrilateral of the strided grid.
type cell struct {
	pts   [4]gg.Point
	depth float64
	z     float64
}

// Draw renders m into a new context. The caller owns the returned context
// and should Close it when done. The context keeps the label face
// selected, so further DrawString calls use the renderer's font.
func (r *Renderer) Draw(m mobius.Mesh) (*gg.Context, error) {
	rows, cols, err := meshShape(m)
	if err != nil {
		return nil, &RenderError{Op: "mesh", Err: err}
	}

	b := emptyBounds()
	for j := range rows {
		for i := range cols {
			b.add(sample(m, j, i))
		}
	}

	cam := newCamera(r.cfg.elev, r.cfg.azim)
	cells := r.buildCells(m, b, cam, rows, cols)

	dc := gg.NewContext(r.cfg.width, r.cfg.height)
	dc.ClearWithColor(r.cfg.background)
	vp := r.fitViewport(cam)

	for _, draw := range []func() error{
		func() error { return r.drawBox(dc, cam, vp) },
		func() error { return r.drawCells(dc, cells, vp) },
		func() error { return r.drawText(dc, cam, vp) },
	} {
		if err := draw(); err != nil {
			_ = dc.Close()
			return nil, err
		}
	}

	mobius.Logger().Debug("plot: mesh rendered",
		"rows", rows, "cols", cols,
		"cells", len(cells),
		"width", r.cfg.width, "height", r.cfg.height)
	return dc, nil
}

// SavePNG renders m and writes it to path as PNG.
func (r *Renderer) SavePNG(m mobius.Mesh, path string) error {
	dc, err := r.Draw(m)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return &RenderError{Op: "save", Path: path, Err: err}
	}
	mobius.Logger().Info("plot: image written", "path", path)
	return nil
}

// EncodePNG renders m and writes the PNG encoding to w.
func (r *Renderer) EncodePNG(m mobius.Mesh, w io.Writer) error {
	dc, err := r.Draw(m)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return &RenderError{Op: "encode", Err: err}
	}
	return nil
}

func meshShape(m mobius.Mesh) (rows, cols int, err error) {
	if m.X == nil || m.Y == nil || m.Z == nil {
		return 0, 0, ErrMeshShape
	}
	rows, cols = m.X.Dims()
	yr, yc := m.Y.Dims()
	zr, zc := m.Z.Dims()
	if yr != rows || zr != rows || yc != cols || zc != cols {
		return 0, 0, fmt.Errorf("%w: X %dx%d, Y %dx%d, Z %dx%d", ErrMeshShape, rows, cols, yr, yc, zr, zc)
	}
	if rows < 2 || cols < 2 {
		return 0, 0, fmt.Errorf("%w: got %dx%d", ErrMeshShape, rows, cols)
	}
	return rows, cols, nil
}

func sample(m mobius.Mesh, j, i int) r3.Vec {
	return r3.Vec{X: m.X.At(j, i), Y: m.Y.At(j, i), Z: m.Z.At(j, i)}
}

// strideIndices picks grid lines so that at most maxCells cells span n
// samples. The first and last lines are always included.
func strideIndices(n, maxCells int) []int {
	stride := max(int(math.Ceil(float64(n)/float64(maxCells))), 1)
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n-1; i += stride {
		idx = append(idx, i)
	}
	return append(idx, n-1)
}

// buildCells projects the strided grid and returns cells sorted back to
// front.
func (r *Renderer) buildCells(m mobius.Mesh, b bounds, cam camera, rows, cols int) []cell {
	ri := strideIndices(rows, r.cfg.maxCells)
	ci := strideIndices(cols, r.cfg.maxCells)

	cells := make([]cell, 0, (len(ri)-1)*(len(ci)-1))
	for a := 0; a+1 < len(ri); a++ {
		for c := 0; c+1 < len(ci); c++ {
			corners := [4][2]int{
				{ri[a], ci[c]},
				{ri[a], ci[c+1]},
				{ri[a+1], ci[c+1]},
				{ri[a+1], ci[c]},
			}
			var cl cell
			for k, jc := range corners {
				p := sample(m, jc[0], jc[1])
				x, y, d := cam.project(b.normalize(p))
				cl.pts[k] = gg.Pt(x, y)
				cl.depth += d / 4
				cl.z += p.Z / 4
			}
			cells = append(cells, cl)
		}
	}

	slices.SortStableFunc(cells, func(p, q cell) int {
		return cmp.Compare(p.depth, q.depth)
	})
	return cells
}

// viewport maps view-plane coordinates to pixels.
type viewport struct {
	scale  float64
	cx, cy float64 // view-plane center
	ox, oy float64 // pixel center
}

func (v viewport) toScreen(p gg.Point) (x, y float64) {
	return v.ox + (p.X-v.cx)*v.scale, v.oy - (p.Y-v.cy)*v.scale
}

// fitViewport scales the projected plot box into the image margins.
func (r *Renderer) fitViewport(cam camera) viewport {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range boxCorners() {
		x, y, _ := cam.project(c)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	availW := float64(r.cfg.width) - 2*marginSide
	availH := float64(r.cfg.height) - marginTop - marginBottom
	scale := math.Min(availW/(maxX-minX), availH/(maxY-minY))
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return viewport{
		scale: scale,
		cx:    (minX + maxX) / 2,
		cy:    (minY + maxY) / 2,
		ox:    float64(r.cfg.width) / 2,
		oy:    marginTop + availH/2,
	}
}

func (r *Renderer) drawBox(dc *gg.Context, cam camera, vp viewport) error {
	corners := boxCorners()
	dc.SetRGBA(boxColor.R, boxColor.G, boxColor.B, boxColor.A)
	dc.SetLineWidth(1)
	for _, e := range boxEdges() {
		x0, y0, _ := cam.project(corners[e[0]])
		x1, y1, _ := cam.project(corners[e[1]])
		sx0, sy0 := vp.toScreen(gg.Pt(x0, y0))
		sx1, sy1 := vp.toScreen(gg.Pt(x1, y1))
		dc.DrawLine(sx0, sy0, sx1, sy1)
		if err := dc.Stroke(); err != nil {
			return &RenderError{Op: "stroke", Err: err}
		}
	}
	return nil
}

func (r *Renderer) drawCells(dc *gg.Context, cells []cell, vp viewport) error {
	zlo, zhi := math.Inf(1), math.Inf(-1)
	for _, c := range cells {
		zlo, zhi = math.Min(zlo, c.z), math.Max(zhi, c.z)
	}

	for _, c := range cells {
		t := 0.5
		if zhi > zlo {
			t = (c.z - zlo) / (zhi - zlo)
		}
		col := r.cfg.colormap(t)
		dc.SetRGBA(col.R, col.G, col.B, r.cfg.alpha*col.A)

		for k, p := range c.pts {
			x, y := vp.toScreen(p)
			if k == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return &RenderError{Op: "fill", Err: err}
		}
	}
	return nil
}

func (r *Renderer) drawText(dc *gg.Context, cam camera, vp viewport) error {
	if r.cfg.title == "" && r.cfg.labels == [3]string{} {
		return nil
	}

	if r.fontErr != nil {
		return &RenderError{Op: "font", Err: r.fontErr}
	}
	src := r.font

	dc.SetRGBA(textColor.R, textColor.G, textColor.B, textColor.A)

	if r.cfg.title != "" {
		dc.SetFont(src.Face(titleSize))
		dc.DrawStringAnchored(r.cfg.title, float64(r.cfg.width)/2, marginTop/2, 0.5, 0.5)
	}

	// Labels sit just outside the middle of one box edge per axis.
	anchors := [3]r3.Vec{
		{X: 0, Y: -1.25 * boxHalf.Y, Z: -boxHalf.Z},
		{X: 1.25 * boxHalf.X, Y: 0, Z: -boxHalf.Z},
		{X: -1.15 * boxHalf.X, Y: -1.15 * boxHalf.Y, Z: 0},
	}
	dc.SetFont(src.Face(labelSize))
	for k, label := range r.cfg.labels {
		if label == "" {
			continue
		}
		x, y, _ := cam.project(anchors[k])
		sx, sy := vp.toScreen(gg.Pt(x, y))
		dc.DrawStringAnchored(label, sx, sy, 0.5, 0.5)
	}
	return nil
}
