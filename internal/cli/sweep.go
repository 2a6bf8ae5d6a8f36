package cli

import (
	"fmt"
	"io"
	"strconv"

	"magmalos/internal/eruption"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSweepCmd(s *session) *cobra.Command {
	var (
		intensities []float64
		spreads     []float64
		frame       int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare peak field and settlement impact across intensity and spread values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frame < 0 {
				return fmt.Errorf("frame must be non-negative, got %d", frame)
			}
			ecfg := s.cfg.Eruption()
			results, err := eruption.Sweep(cmd.Context(), ecfg, intensities, spreads, frame, s.cfg.Animation.Workers)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			s.log.Debug("sweep complete", zap.Int("candidates", len(results)), zap.Int("frame", frame))
			writeSweepTable(cmd.OutOrStdout(), ecfg.Settlements, results)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&intensities, "intensity", []float64{6, 12, 18}, "intensity values")
	f.Float64SliceVar(&spreads, "spread", []float64{2, 4, 8}, "spread values; non-positive entries are skipped")
	f.IntVar(&frame, "frame", 0, "frame at which to evaluate")
	f.Int("workers", 0, "concurrent field computations")
	f.Int("resolution", 0, "grid samples per axis")
	overrides(cmd, map[string]string{
		"workers":    "animation.workers",
		"resolution": "simulation.resolution",
	})
	return cmd
}

func writeSweepTable(w io.Writer, settlements []eruption.Settlement, results []eruption.SweepResult) {
	headers := []string{"Intensity", "Spread", "Peak"}
	for _, st := range settlements {
		headers = append(headers, st.Name)
	}
	t := newTable(headers...)
	for _, r := range results {
		cells := []string{
			strconv.FormatFloat(r.Intensity, 'g', -1, 64),
			strconv.FormatFloat(r.Spread, 'g', -1, 64),
			strconv.FormatFloat(r.PeakField, 'f', 3, 64),
		}
		for _, v := range r.Impacts {
			cells = append(cells, eruption.ImpactLabel(v))
		}
		t.Row(cells...)
	}
	fmt.Fprintln(w, t.String())
}
