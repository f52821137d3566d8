package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/searchlab/search"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file> [method...]",
		Short: "Run several methods on one problem and tabulate the results.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			methods := args[1:]
			if len(methods) == 0 {
				methods = search.Methods()
			}
			return a.compare(cmd, args[0], methods)
		},
	}
	addSearchFlags(cmd)

	return cmd
}

func (a *app) compare(cmd *cobra.Command, path string, methods []string) error {
	file, err := a.load(path)
	if err != nil {
		return err
	}
	log := a.logger.With(zap.String("run_id", uuid.NewString()), zap.String("file", path))
	results, err := search.RunAll(file.Problem(), methods, a.searchOptions(cmd, log)...)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tGOAL\tEXPANDED\tCOST\tPATH")
	for _, r := range results {
		if r.Truncated {
			fmt.Fprintf(tw, "%s\t-\t%d\t-\tTRUNCATED\n", r.Method, r.Expanded)
			continue
		}
		if !r.Found() {
			fmt.Fprintf(tw, "%s\t-\t%d\t-\tNo path found.\n", r.Method, r.Expanded)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%g\t%s\n", r.Method, r.Goal, r.Expanded, r.Cost, r.PathString())
	}

	return tw.Flush()
}
