package cli

import (
	"fmt"
	"io"
	"strconv"

	"magmalos/internal/eruption"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

func newReportCmd(s *session) *cobra.Command {
	var frames []int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the impact label of each settlement at selected frames.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range frames {
				if f < 0 {
					return fmt.Errorf("frame must be non-negative, got %d", f)
				}
			}
			ecfg := s.cfg.Eruption()
			rows := eruption.ImpactTable(ecfg.Params, ecfg.Settlements, frames)
			writeImpactTable(cmd.OutOrStdout(), rows, frames)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&frames, "frames", []int{0, 10, 50}, "frames to evaluate")
	return cmd
}

func writeImpactTable(w io.Writer, rows []eruption.ImpactRow, frames []int) {
	headers := []string{"Settlement", "Distance (km)"}
	for _, f := range frames {
		headers = append(headers, "Frame "+strconv.Itoa(f))
	}
	t := newTable(headers...)
	for _, row := range rows {
		cells := []string{row.Settlement.Name, strconv.FormatFloat(row.Distance, 'f', 1, 64)}
		for _, v := range row.Impacts {
			cells = append(cells, eruption.ImpactLabel(v))
		}
		t.Row(cells...)
	}
	fmt.Fprintln(w, t.String())
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}
