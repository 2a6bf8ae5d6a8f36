//go:build ebiten

package cli

import (
	"errors"
	"fmt"

	"magmalos/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newPlayCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the animation in a window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			anim := app.NewAnimation(s.cfg, s.log)
			game := app.New(anim, s.cfg.Render.Title, s.log)

			size := anim.Size()
			ebiten.SetWindowSize(size.W+app.HUDWidth, size.H)
			ebiten.SetWindowTitle(s.cfg.Render.Title)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return fmt.Errorf("running game: %w", err)
			}
			return nil
		},
	}
	addRenderFlags(cmd)
	return cmd
}
