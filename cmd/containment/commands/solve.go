package commands

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"containment/internal/domain"
	"containment/internal/input"
)

// solve [file]: read a problem and print the uncontained volume.
func solveCmd() *cobra.Command {
	var (
		format string
		output string
		save   bool
		cached bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Read a problem and print the uncontained volume",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			p, err := readProblem(cmd.InOrStdin(), path, format, appCtx.Config.MaxEntities)
			if err != nil {
				return err
			}

			var rep domain.Report
			if appCtx.Remote != nil {
				if save || cached {
					return errors.New("--save and --cached are not supported with --remote")
				}
				rep, err = appCtx.Remote.Solve(cmd.Context(), p)
			} else {
				rep, err = appCtx.Runs.Run(cmd.Context(), p, domain.RunOptions{Save: save, Cached: cached})
			}
			if err != nil {
				return err
			}

			if output == outputPlain {
				return printVolume(cmd.OutOrStdout(), rep.Result.Uncontained)
			}
			return printValue(cmd.OutOrStdout(), output, rep)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: text, yaml or json (default from file extension)")
	cmd.Flags().StringVarP(&output, "output", "o", outputPlain, "output format: plain, json or yaml")
	cmd.Flags().BoolVar(&save, "save", false, "store the run report under --home")
	cmd.Flags().BoolVar(&cached, "cached", false, "reuse a stored report for an identical problem")
	return cmd
}

// readProblem decodes a problem from path, or from stdin when path is "-".
func readProblem(stdin io.Reader, path, format string, limit int) (domain.Problem, error) {
	f := input.DetectFormat(path)
	if format != "" {
		var err error
		if f, err = input.ParseFormat(format); err != nil {
			return domain.Problem{}, err
		}
	}

	r := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return domain.Problem{}, err
		}
		defer file.Close()
		r = file
	}
	return input.Read(r, f, limit)
}
