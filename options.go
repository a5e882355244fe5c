package mobius

// Default construction parameters.
const (
	DefaultRadius     = 1.0
	DefaultWidth      = 0.5
	DefaultResolution = 100
)

// Option configures a Strip during construction.
//
// Example:
//
//	// R=1.0, w=0.5, n=100
//	s, err := mobius.New()
//
//	// Wider strip sampled more finely
//	s, err := mobius.New(mobius.WithWidth(1.2), mobius.WithResolution(400))
type Option func(*options)

// options holds the configuration collected before validation.
type options struct {
	radius     float64
	width      float64
	resolution int
	summation  Summation
}

func defaultOptions() options {
	return options{
		radius:     DefaultRadius,
		width:      DefaultWidth,
		resolution: DefaultResolution,
		summation:  SumNaive,
	}
}

// WithRadius sets the distance R from the center to the strip's midline.
func WithRadius(r float64) Option {
	return func(o *options) {
		o.radius = r
	}
}

// WithWidth sets the strip width w. The strip spans v in [-w/2, w/2].
func WithWidth(w float64) Option {
	return func(o *options) {
		o.width = w
	}
}

// WithResolution sets the number of samples per parametric axis.
// The sample grid is n×n; n must be at least 2.
func WithResolution(n int) Option {
	return func(o *options) {
		o.resolution = n
	}
}

// WithSummation selects the reduction used by the estimators.
func WithSummation(m Summation) Option {
	return func(o *options) {
		o.summation = m
	}
}
