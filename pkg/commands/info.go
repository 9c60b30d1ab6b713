package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and the events that would be shown.",
		Example: `
gridcal info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := newApp()
			if err != nil {
				return err
			}
			s := info.Info{App: a, Out: cmd.OutOrStdout()}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
