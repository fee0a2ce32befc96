package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-sitegen"
	"github.com/goliatone/go-sitegen/pkg/config"
	"github.com/goliatone/go-sitegen/pkg/logging"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	verbosity  int
	configPath string
}

// NewRootCmd builds the command tree. Each call returns independent state so
// tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sitegen",
		Short: "Generate the jless documentation site",
		Long: `sitegen renders the jless home page, user guide and release notes into
static HTML files, copies the shared assets and writes a sitemap.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./sitegen.{yaml,yml,toml} or $XDG_CONFIG_HOME/sitegen/config.yaml)")

	rootCmd.AddCommand(
		newBuildCmd(opts),
		newPagesCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func (o *rootOptions) load() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.Discover(".")
	}
	if path != "" {
		log.Debug().Str("path", path).Msg("Using config file")
	}
	return config.Load(path)
}

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var (
		outDir    string
		noSitemap bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}
			if noSitemap {
				cfg.Sitemap = false
			}

			builder, err := sitegen.NewBuilder(cfg, logging.GetLogger("build"))
			if err != nil {
				return err
			}
			result, err := builder.Build(cmd.Context())

			out := cmd.OutOrStdout()
			for _, page := range result.Pages {
				fmt.Fprintf(out, "wrote %s\n", page.File)
			}
			if len(result.Assets) > 0 {
				fmt.Fprintf(out, "copied %d assets\n", len(result.Assets))
			}
			if result.Sitemap != "" {
				fmt.Fprintf(out, "wrote %s\n", result.Sitemap)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides output_dir)")
	cmd.Flags().BoolVar(&noSitemap, "no-sitemap", false, "skip writing sitemap.xml")
	return cmd
}

func newPagesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the pages and the files they are written to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			builder, err := sitegen.NewBuilder(cfg, logging.GetLogger("pages"))
			if err != nil {
				return err
			}
			plan, err := builder.Plan()
			if err != nil {
				return err
			}
			for _, page := range plan {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", page.Path, page.File)
			}
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			data, err := cfg.Marshal(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or toml")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sitegen version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
