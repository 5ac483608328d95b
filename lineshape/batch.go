package lineshape

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Spectrum is one measured spectrum: an intensity per frequency sample.
type Spectrum struct {
	Frequency []float64
	Data      []float64
}

// CostBatch returns [Cost] of m over every point of each spectrum, in input
// order. Spectra are evaluated concurrently, bounded by [WithConcurrency];
// each sum keeps its sequential order, so results equal serial calls to Cost.
//
// All spectra are validated before any is evaluated. The first evaluation
// error or the cancellation of ctx aborts the batch.
func CostBatch(ctx context.Context, m Model, spectra []Spectrum, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts...)

	shortest := -1
	for i, s := range spectra {
		if len(s.Frequency) != len(s.Data) {
			return nil, fmt.Errorf("%w: spectrum %d has %d frequencies, %d data values",
				ErrInvalidArgument, i, len(s.Frequency), len(s.Data))
		}
		if len(s.Data) > 0 && (shortest < 0 || len(s.Data) < shortest) {
			shortest = len(s.Data)
		}
	}

	kernel, err := newKernel(cfg, max(shortest, 0))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(spectra))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	for i, s := range spectra {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := cost(m, kernel, s.Frequency, s.Data)
			if err != nil {
				return fmt.Errorf("spectrum %d: %w", i, err)
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
