package hull3d

import "go.uber.org/zap"

type config struct {
	tolerance float64
	logger    *zap.Logger
	capacity  int
	validate  bool
}

func defaultConfig() config {
	return config{
		logger: zap.NewNop(),
	}
}

// Option configures Build.
type Option func(*config)

// WithTolerance sets how far in front of a face a point must be before the
// face counts as visible. The default of 0 treats points lying exactly on a
// face plane as inside. A small positive value stops near-coplanar points
// from splitting faces into slivers; a negative one should not be used.
func WithTolerance(eps float64) Option {
	return func(c *config) {
		c.tolerance = eps
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCapacity pre-sizes the mesh arenas for about n vertices.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithValidation runs a full Mesh.Validate after every insertion. It is
// slow and meant for debugging.
func WithValidation(on bool) Option {
	return func(c *config) {
		c.validate = on
	}
}
