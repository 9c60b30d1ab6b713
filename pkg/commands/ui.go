package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the calendar grid",
		Example: `
gridcal ui
GRIDCAL_EVENTS_FILE=~/events.yaml gridcal ui --log-file /tmp/gridcal.log -v
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Logger.Sync() }()
			i := ui.UI{App: a}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
