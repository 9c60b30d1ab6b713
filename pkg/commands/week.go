package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/commands/options"
	"tableflip.dev/gridcal/pkg/runner/week"
)

func addWeek(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "print the days of a week",
		Example: `
gridcal week
gridcal week --on=2024-01-10 --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			a, err := newApp()
			if err != nil {
				return oo.HandleError(err)
			}
			day, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			w := week.Week{
				On:        day,
				WeekStart: a.Config.WeekStart,
				Today:     time.Now(),
				JSON:      oo.JSON,
				Out:       oo.Writer(),
			}
			return oo.HandleError(w.Do(context.Background()))
		},
	}
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
