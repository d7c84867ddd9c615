package commands

import (
	"github.com/spf13/cobra"

	"containment/cmd/containment/interactive"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Build and solve problems interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := interactive.New(appCtx.Runs, appCtx.Config.MaxEntities)
			return sh.Run(cmd.Context())
		},
	}
}
