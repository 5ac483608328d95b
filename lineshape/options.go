package lineshape

import "runtime"

type config struct {
	impulseResponse []float64
	concurrency     int
}

// Option configures cost evaluation.
type Option func(*config)

func defaultConfig() config {
	return config{
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithImpulseResponse convolves the sampled model with ir before residuals
// are taken. An empty ir disables the convolution. The response must not be
// longer than the number of evaluated points.
func WithImpulseResponse(ir []float64) Option {
	return func(cfg *config) {
		cfg.impulseResponse = ir
	}
}

// WithConcurrency bounds the number of spectra [CostBatch] evaluates at once.
func WithConcurrency(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.concurrency = n
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
