// Package cli wires the searchlab commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/searchlab/internal/config"
	"github.com/katalvlaran/searchlab/internal/observability"
)

// Version is stamped at build time.
var Version = "dev"

// app is the state shared by all commands of one root.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCmd builds the command tree around a private viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "searchlab",
		Short:         "Route-finding search over weighted 2D graphs.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./searchlab.yaml)")

	root.AddCommand(
		newRunCmd(a),
		newCompareCmd(a),
		newMethodsCmd(),
		newConvertCmd(a),
	)

	return root
}

// flagKeys maps command flags onto configuration keys. Flags win over the
// config file and the environment when set explicitly.
var flagKeys = map[string]string{
	"max-expansions":  "search.max_expansions",
	"weight":          "search.weight",
	"first-edge-wins": "search.first_edge_wins",
	"trace":           "search.show_trace",
	"trace-format":    "search.trace_format",
}

// initialize resolves configuration for the executing command and the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	config.SetDefaults(a.v)
	config.BindEnv(a.v)
	for name, key := range flagKeys {
		if fl := cmd.Flags().Lookup(name); fl != nil {
			if err := a.v.BindPFlag(key, fl); err != nil {
				return err
			}
		}
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("searchlab")
		a.v.SetConfigType("yaml")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	observability.InitializeLogger(cfg.Logger)
	a.logger = observability.GetLogger()
	a.logger.Debug("configuration loaded", zap.String("file", a.v.ConfigFileUsed()))

	return nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	defer observability.Sync()

	return root.ExecuteContext(ctx)
}
