package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"containment/internal/domain"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Inspect stored run reports",
	}
	cmd.AddCommand(reportsListCmd(), reportsShowCmd())
	return cmd
}

func reportsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored run reports, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := appCtx.Runs.Reports()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tFINGERPRINT\tMOTES\tDEVICES\tUNCONTAINED")
			for _, r := range reports {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.6f\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Fingerprint.Short(),
					r.Motes, r.Devices, r.Result.Uncontained)
			}
			return tw.Flush()
		},
	}
}

func reportsShowCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored report (from --remote when set)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ReportID(args[0])

			var (
				rep domain.Report
				err error
			)
			if appCtx.Remote != nil {
				rep, err = appCtx.Remote.FetchReport(cmd.Context(), id)
			} else {
				rep, err = appCtx.Runs.Report(id)
			}
			if err != nil {
				return fmt.Errorf("loading report %q: %w", id, err)
			}
			return printValue(cmd.OutOrStdout(), output, rep)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: json or yaml")
	return cmd
}
