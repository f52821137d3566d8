package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchlab/search"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available search methods.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aliases := make(map[string]string)
			for alias, name := range search.Aliases() {
				aliases[name] = alias
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tALIAS\tFRONTIER\tINFORMED")
			for _, name := range search.Methods() {
				s, err := search.Lookup(name)
				if err != nil {
					return err
				}
				alias := aliases[name]
				if alias == "" {
					alias = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", s.Name, alias, s.Ordering, s.Informed)
			}

			return tw.Flush()
		},
	}
}
