package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/commands/options"
	"tableflip.dev/gridcal/pkg/geometry"
	"tableflip.dev/gridcal/pkg/runner/replay"
)

func addResize(topLevel *cobra.Command) {
	ro := &options.ResizeOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "resize",
		Short: "replay a drag of an event's right edge without a terminal",
		Example: `
gridcal resize --start=2024-01-10 --end=2024-01-12 \
  --range-start=2024-01-01 --range-end=2024-01-31 \
  --day-width=40 --from=100 --to=185,500,60
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			a, err := newApp()
			if err != nil {
				return oo.HandleError(err)
			}
			a.Geometry = geometry.Fixed(ro.DayWidth)

			ev, err := ro.Event()
			if err != nil {
				return oo.HandleError(err)
			}
			rng, err := ro.Range(ev, a.Time.AddDays)
			if err != nil {
				return oo.HandleError(err)
			}
			r := replay.Replay{
				App:   a,
				Event: ev,
				Range: rng,
				From:  ro.From,
				Path:  ro.To,
				JSON:  oo.JSON,
				Out:   oo.Writer(),
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	options.AddResizeArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
