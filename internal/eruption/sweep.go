package eruption

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// SweepResult captures the outcome of evaluating one (intensity, spread)
// candidate.
type SweepResult struct {
	Intensity float64
	Spread    float64
	// PeakField is the largest field value on the grid at the sweep frame.
	PeakField float64
	// Impacts holds one entry per settlement, in settlement order.
	Impacts []float64
}

// Sweep evaluates every (intensity, spread) pair against the settlements at
// the given frame using up to workers concurrent field computations. Results
// are ordered by intensity, then spread. Candidates with an invalid spread are
// skipped.
func Sweep(ctx context.Context, base Config, intensities, spreads []float64, frame, workers int) ([]SweepResult, error) {
	if workers <= 0 {
		workers = 1
	}

	type candidate struct{ intensity, spread float64 }
	var candidates []candidate
	for _, in := range intensities {
		for _, sp := range spreads {
			if !(sp > 0) {
				continue
			}
			candidates = append(candidates, candidate{intensity: in, spread: sp})
		}
	}

	results := make([]SweepResult, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Params.Intensity = c.intensity
			cfg.Params.Spread = c.spread
			field := cfg.Model().Field(float64(frame))
			_, peak := field.Z.Range()

			impacts := make([]float64, len(cfg.Settlements))
			for j, s := range cfg.Settlements {
				impacts[j] = cfg.Params.Impact(s, frame)
			}
			results[i] = SweepResult{
				Intensity: c.intensity,
				Spread:    c.spread,
				PeakField: peak,
				Impacts:   impacts,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Intensity != results[b].Intensity {
			return results[a].Intensity < results[b].Intensity
		}
		return results[a].Spread < results[b].Spread
	})
	return results, nil
}
