package config

// Config bundles the toggles that gate analysis behavior. The zero value
// is NOT a usable default; use New to obtain one with sane defaults.
type Config struct {
	// AllowPointer permits recording a pointer-valued vertex's own kinst
	// as its self cost in MustConcretize. RecursiveOptimizer runs once
	// with this false, then again with it true.
	AllowPointer bool

	// PTWrite selects the 8-byte hardware-trace minimum record unit when
	// true (record_size = freq*8); when false, record_size is
	// freq*width/8 rounded up to a whole byte.
	PTWrite bool

	// SubgraphScores gates the optional remain_score/max_idep metrics on
	// concretize.RecordableInst, which require building a residual
	// subgraph per candidate and are therefore comparatively expensive.
	SubgraphScores bool
}

// Option customizes a Config before analysis begins.
type Option func(*Config)

// WithAllowPointer sets the AllowPointer toggle.
func WithAllowPointer(allow bool) Option {
	return func(c *Config) { c.AllowPointer = allow }
}

// WithPTWrite sets the PTWrite toggle.
func WithPTWrite(enabled bool) Option {
	return func(c *Config) { c.PTWrite = enabled }
}

// WithSubgraphScores sets the SubgraphScores toggle.
func WithSubgraphScores(enabled bool) Option {
	return func(c *Config) { c.SubgraphScores = enabled }
}

// New returns a Config with PTWrite enabled and AllowPointer/SubgraphScores
// disabled, then applies opts in order.
func New(opts ...Option) Config {
	c := Config{PTWrite: true}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithAllowPointerValue returns a copy of c with AllowPointer set to
// allow, used by RecursiveOptimizer's two-phase loop to derive each
// phase's Config from the caller's.
func (c Config) WithAllowPointerValue(allow bool) Config {
	c.AllowPointer = allow

	return c
}
