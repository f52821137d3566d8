package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/problem"
	"github.com/katalvlaran/searchlab/search"
)

type runFlags struct {
	goal int
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <file> <method>",
		Short: "Run one search method on a problem file.",
		Long: `Run one search method on a problem file and print

  <file> <method>
  <goal> <number of visited nodes>
  <path>

or "No path found." when no destination is reachable.
Methods: DFS, BFS, GBFS, AS (A*), CUS1, CUS2.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], args[1], f)
		},
	}

	cmd.Flags().IntVar(&f.goal, "goal", 0, "designated goal (default: first destination)")
	addSearchFlags(cmd)
	cmd.Flags().Bool("trace", false, "print the exploration trace")
	cmd.Flags().String("trace-format", "text", "trace format: text, json or yaml")

	return cmd
}

// addSearchFlags registers the flags shared by run and compare.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-expansions", 0, "stop after this many visits (0 = unlimited)")
	cmd.Flags().Float64("weight", 1.5, "heuristic weight of CUS2")
	cmd.Flags().Bool("first-edge-wins", false, "keep the first of duplicate edges instead of failing")
}

// load reads the problem file with the configured edge policy.
func (a *app) load(path string) (*problem.File, error) {
	var opts []core.GraphOption
	if a.cfg.Search.FirstEdgeWins {
		opts = append(opts, core.WithFirstEdgeWins())
	}

	return problem.Load(path, opts...)
}

// searchOptions translates configuration into search options.
func (a *app) searchOptions(cmd *cobra.Command, log *zap.Logger) []search.Option {
	return []search.Option{
		search.WithContext(cmd.Context()),
		search.WithMaxExpansions(a.cfg.Search.MaxExpansions),
		search.WithWeight(a.cfg.Search.Weight),
		search.WithLogger(log),
	}
}

func (a *app) run(cmd *cobra.Command, path, method string, f runFlags) error {
	file, err := a.load(path)
	if err != nil {
		return err
	}
	p, err := file.ProblemFor(core.NodeID(f.goal))
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := a.logger.With(zap.String("run_id", runID), zap.String("file", path))
	res, err := search.Run(p, method, a.searchOptions(cmd, log)...)
	if err != nil {
		return err
	}
	log.Info("search finished",
		zap.String("method", res.Method),
		zap.Stringer("state", res.State),
		zap.Int("expanded", res.Expanded),
		zap.Bool("truncated", res.Truncated),
	)

	out := cmd.OutOrStdout()
	writeResult(out, path, strings.ToUpper(strings.TrimSpace(method)), res)
	if a.cfg.Search.ShowTrace {
		return writeTrace(out, res, a.cfg.Search.TraceFormat)
	}

	return nil
}

// writeResult prints the three-line result block. A run stopped by the
// expansion limit says so instead of reporting an unreachable goal.
func writeResult(w io.Writer, path, method string, res *search.Result) {
	fmt.Fprintf(w, "%s %s\n", path, method)
	if res.Truncated {
		fmt.Fprintf(w, "Search truncated after %d expansions.\n", res.Expanded)
		return
	}
	if !res.Found() {
		fmt.Fprintln(w, "No path found.")
		return
	}
	fmt.Fprintf(w, "%d %d\n", res.Goal, res.Expanded)
	fmt.Fprintln(w, res.PathString())
}

// writeTrace prints the exploration trace in format.
func writeTrace(w io.Writer, res *search.Result, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VISIT\tNODE\tPARENT\tDEPTH\tG\tH\tF")
		for i, e := range res.Trace.Entries {
			parent := "-"
			if e.Parent.Valid() {
				parent = fmt.Sprint(int(e.Parent))
			}
			fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%.3f\t%.3f\t%.3f\n", i+1, e.Node, parent, e.Depth, e.G, e.H, e.F)
		}
		return tw.Flush()
	}
}
