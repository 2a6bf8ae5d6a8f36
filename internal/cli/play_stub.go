//go:build !ebiten

package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newPlayCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the animation in a window (requires -tags ebiten).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("play requires building with the 'ebiten' tag")
		},
	}
	addRenderFlags(cmd)
	return cmd
}
