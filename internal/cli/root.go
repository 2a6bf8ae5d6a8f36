package cli

import (
	"context"
	"errors"
	"fmt"

	"magmalos/internal/config"
	"magmalos/internal/observability"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is the application version, set at build time with
// -ldflags "-X magmalos/internal/cli.Version=...".
var Version = "dev"

// configKeyAnnotation marks a flag as an override of the configuration key
// stored in the annotation.
const configKeyAnnotation = "magmalos/config-key"

// session carries the loaded configuration from the root command's pre-run
// hook to the subcommand.
type session struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	s := &session{}
	root := &cobra.Command{
		Use:           "magmalos",
		Short:         "Animated volcanic eruption heat field with settlement impact labels.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&s.cfgFile, "config", "c", "", "config file (default is ./magmalos.yaml)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newPlayCmd(s),
		newExportCmd(s),
		newSnapshotCmd(s),
		newReportCmd(s),
		newSweepCmd(s),
	)
	return root
}

// Execute runs the command tree against the process arguments.
func Execute(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
	}
	return err
}

func (s *session) load(cmd *cobra.Command) error {
	v := viper.New()
	config.SetDefaults(v)
	if s.cfgFile != "" {
		v.SetConfigFile(s.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("magmalos")
		v.SetConfigType("yaml")
	}
	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[configKeyAnnotation]
		if len(keys) == 1 && bindErr == nil {
			bindErr = v.BindPFlag(keys[0], f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("binding flags: %w", bindErr)
	}

	cfg, err := config.NewConfigFromViper(v)
	if err != nil {
		observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "magmalos"})
		return err
	}
	observability.InitializeLogger(cfg.Logger)

	s.cfg = cfg
	s.log = observability.GetLogger()
	s.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config_file", v.ConfigFileUsed()),
	)
	return nil
}

// addRenderFlags registers the flags that override animation and figure
// settings.
func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("frames", 0, "number of frames per run")
	f.Duration("interval", 0, "delay between frames")
	f.Int("workers", 0, "concurrent field computations")
	f.Int("resolution", 0, "grid samples per axis")
	f.Int("width", 0, "figure width in pixels")
	f.Int("height", 0, "figure height in pixels")
	f.String("colormap", "", "surface colormap")
	overrides(cmd, map[string]string{
		"frames":     "animation.frames",
		"interval":   "animation.interval",
		"workers":    "animation.workers",
		"resolution": "simulation.resolution",
		"width":      "render.width",
		"height":     "render.height",
		"colormap":   "render.colormap",
	})
}

// overrides annotates each named flag with the configuration key it sets.
// Only annotated flags are bound to the configuration.
func overrides(cmd *cobra.Command, keys map[string]string) {
	for name, key := range keys {
		if err := cmd.Flags().SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
			panic(fmt.Sprintf("cli: %v", err))
		}
	}
}
