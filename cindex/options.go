package cindex

// Config defines scan parameters.
type Config struct {
	// Window is the window size in pixels for sliding analysis.
	Window int
	// Step is the offset advance between consecutive windows.
	Step int
	// MinValidFraction is the minimum fraction of finite samples a window
	// needs to be scored.
	MinValidFraction float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults for science-ready spectra.
func DefaultConfig() Config {
	return Config{
		Window:           100,
		Step:             50,
		MinValidFraction: 0.8,
	}
}

// WithWindow sets the window size in pixels.
func WithWindow(window int) Option {
	return func(cfg *Config) {
		if window > 0 {
			cfg.Window = window
		}
	}
}

// WithStep sets the step size for window advancement.
func WithStep(step int) Option {
	return func(cfg *Config) {
		if step > 0 {
			cfg.Step = step
		}
	}
}

// WithMinValidFraction sets the minimum fraction of finite samples per
// window. Values outside (0, 1] are ignored.
func WithMinValidFraction(fraction float64) Option {
	return func(cfg *Config) {
		if fraction > 0 && fraction <= 1 {
			cfg.MinValidFraction = fraction
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
