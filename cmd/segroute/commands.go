package main

import (
	"fmt"

	"github.com/rohanthewiz/segroute"
	"github.com/rohanthewiz/segroute/internal/demo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what the commands share once flags and config are resolved.
type app struct {
	envFile  string
	logLevel string
	optimize bool
	verbose  bool

	cfg    Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "segroute",
		Short: "Match paths against the demo sitemap",
		Long: `segroute evaluates URL paths against a demo sitemap built from
typed path-segment routes, and prints the route structure.

Settings come from SEGROUTE_LOG_LEVEL, SEGROUTE_OPTIMIZE and SEGROUTE_VERBOSE,
optionally read from a .env file. Flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "Read settings from this file instead of .env")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&a.optimize, "optimize", true, "Optimize the sitemap before matching")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log paths that do not match")

	root.AddCommand(
		matchCmd(a),
		describeCmd(a),
	)

	return root
}

// setup merges config and flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("optimize") {
		cfg.Optimize = a.optimize
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg, a.logger = cfg, logger
	return nil
}

func (a *app) router() *segroute.Router[demo.Sitemap] {
	return segroute.New(demo.Route(), segroute.Options{
		SkipOptimize: !a.cfg.Optimize,
		Verbose:      a.cfg.Verbose,
		Logger:       a.logger,
	})
}

func matchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match PATH...",
		Short: "Print the page each path resolves to",
		Example: `  segroute match /R/foo/123 /R/bar/4.5
  segroute match --optimize=false /7/baz/x`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := a.router()
			out := cmd.OutOrStdout()

			for _, path := range args {
				page, ok := rt.Match(path)
				if !ok {
					fmt.Fprintf(out, "%s\tno match\n", path)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", path, page)
			}
			return nil
		},
	}
}

func describeCmd(a *app) *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the structure of the sitemap route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := a.router()

			if asHTML {
				fmt.Fprintln(cmd.OutOrStdout(), rt.DescribeHTML())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.Describe())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "Render as a nested HTML list")

	return cmd
}
