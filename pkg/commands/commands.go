package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/gridcal/pkg/app"
	"tableflip.dev/gridcal/pkg/commands/options"
	"tableflip.dev/gridcal/pkg/config"
)

var (
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "gridcal",
		Short: base.Wrap80("A terminal calendar grid where events are resized by dragging their right edge."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddLogArgs(cmd, lo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addResize(topLevel)
	addWeek(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newApp loads configuration and builds the app every command runs against.
func newApp(opts ...app.Option) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := lo.Logger()
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded",
		zap.Stringer("week_start", cfg.WeekStart),
		zap.Int("window_days", cfg.WindowDays),
		zap.Int("grid_width", cfg.GridWidth))
	return app.New(append([]app.Option{app.WithConfig(cfg), app.WithLogger(logger)}, opts...)...), nil
}
