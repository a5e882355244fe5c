package plot

import (
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/font/gofont/goregular"
)

// Defaults mirror an 8x6 inch figure at 100 dpi under the usual 3-D
// surface plot conventions.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultElevation = 30.0  // degrees
	DefaultAzimuth   = -60.0 // degrees
	DefaultAlpha     = 0.8
	DefaultMaxCells  = 50
	DefaultTitle     = "Möbius Strip"
)

// Option configures a Renderer.
//
// Example:
//
//	r := plot.New(plot.WithSize(1024, 768), plot.WithView(20, 45))
type Option func(*config)

type config struct {
	width, height int
	elev, azim    float64 // radians
	alpha         float64
	maxCells      int
	title         string
	labels        [3]string
	fontData      []byte
	background    gg.RGBA
	colormap      Colormap
}

func defaultConfig() config {
	return config{
		width:      DefaultWidth,
		height:     DefaultHeight,
		elev:       DefaultElevation * math.Pi / 180,
		azim:       DefaultAzimuth * math.Pi / 180,
		alpha:      DefaultAlpha,
		maxCells:   DefaultMaxCells,
		title:      DefaultTitle,
		labels:     [3]string{"X", "Y", "Z"},
		fontData:   goregular.TTF,
		background: gg.White,
		colormap:   Viridis,
	}
}

// WithSize sets the output image dimensions in pixels.
// Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithView sets the camera elevation and azimuth in degrees.
func WithView(elevation, azimuth float64) Option {
	return func(c *config) {
		c.elev = elevation * math.Pi / 180
		c.azim = azimuth * math.Pi / 180
	}
}

// WithAlpha sets the surface opacity, clamped to [0, 1].
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		c.alpha = math.Max(0, math.Min(1, alpha))
	}
}

// WithMaxCells caps the number of drawn cells along each grid axis.
// Finer meshes are strided down to at most n cells per axis.
func WithMaxCells(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxCells = n
		}
	}
}

// WithTitle sets the title drawn above the plot. An empty title is
// not drawn.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithAxisLabels sets the labels for the x, y and z axes.
func WithAxisLabels(x, y, z string) Option {
	return func(c *config) {
		c.labels = [3]string{x, y, z}
	}
}

// WithFont sets TTF or OTF data used for the title and labels.
// The default is Go Regular.
func WithFont(data []byte) Option {
	return func(c *config) {
		c.fontData = data
	}
}

// WithBackground sets the image background color.
func WithBackground(bg gg.RGBA) Option {
	return func(c *config) {
		c.background = bg
	}
}

// WithColormap sets the mapping from normalized height to cell color.
func WithColormap(cm Colormap) Option {
	return func(c *config) {
		if cm != nil {
			c.colormap = cm
		}
	}
}
