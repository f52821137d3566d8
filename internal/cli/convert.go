package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchlab/problem"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Rewrite a problem file in another format on stdout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.load(args[0])
			if err != nil {
				return err
			}
			format := problem.Format(to)
			switch format {
			case problem.FormatText, problem.FormatYAML:
			default:
				return fmt.Errorf("%w: %q", problem.ErrUnsupportedFormat, to)
			}

			return problem.Encode(cmd.OutOrStdout(), file, format)
		},
	}
	cmd.Flags().StringVar(&to, "to", string(problem.FormatYAML), "output format: text or yaml")

	return cmd
}
