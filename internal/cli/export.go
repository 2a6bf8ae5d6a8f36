package cli

import (
	"bufio"
	"fmt"
	"image/png"
	"os"

	"magmalos/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(s *session) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render one run of the animation to an animated GIF.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := writeFile(output, func(w *bufio.Writer) error {
				return app.ExportGIF(cmd.Context(), s.cfg, w, s.log)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", s.cfg.Animation.Frames, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "eruption.gif", "output GIF path")
	addRenderFlags(cmd)
	return cmd
}

func newSnapshotCmd(s *session) *cobra.Command {
	var (
		output string
		frame  int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame to a PNG image.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := app.Snapshot(s.cfg, frame, s.log)
			if err != nil {
				return err
			}
			err = writeFile(output, func(w *bufio.Writer) error {
				return png.Encode(w, img)
			})
			if err != nil {
				return err
			}
			s.log.Info("snapshot written", zap.Int("frame", frame), zap.String("path", output))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote frame %d to %s\n", frame, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "eruption.png", "output PNG path")
	cmd.Flags().IntVar(&frame, "frame", 0, "frame index to render")
	addRenderFlags(cmd)
	return cmd
}

// writeFile creates path and hands a buffered writer to fn, flushing and
// closing the file afterwards.
func writeFile(path string, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
