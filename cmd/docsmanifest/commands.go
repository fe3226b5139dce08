package main

import (
	"bytes"
	"fmt"

	"github.com/quantmind-br/docsmanifest-go/internal/app"
	"github.com/quantmind-br/docsmanifest-go/internal/config"
	"github.com/quantmind-br/docsmanifest-go/internal/output"
	"github.com/quantmind-br/docsmanifest-go/internal/utils"
	"github.com/quantmind-br/docsmanifest-go/pkg/docsmanifest"
	"github.com/quantmind-br/docsmanifest-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli holds the state shared by all subcommands of one root command
type cli struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "docsmanifest",
		Short: "Inspect the documentation manifest",
		Long: `docsmanifest lists, looks up, validates and exports the documentation
manifest: the ordered page metadata (id, title, description) published for
each platform (js, react, vue).`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.cfgFile != "" {
				c.v.SetConfigFile(c.cfgFile)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ~/.docsmanifest/config.yaml)")
	flags.StringP("format", "f", config.DefaultOutputFormat, "Output format (text, markdown, json, yaml)")
	flags.StringP("manifest", "m", "", "Load the manifest from a YAML or JSON file instead of the embedded dataset")
	flags.String("default-platform", "", "Platform to use when the requested one does not exist")
	flags.StringSlice("extra-platform", nil, "Additional platform keys to accept")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	_ = c.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = c.v.BindPFlag("manifest.path", flags.Lookup("manifest"))
	_ = c.v.BindPFlag("manifest.default_platform", flags.Lookup("default-platform"))
	_ = c.v.BindPFlag("manifest.extra_platforms", flags.Lookup("extra-platform"))

	rootCmd.AddCommand(
		c.platformsCmd(),
		c.listCmd(),
		c.showCmd(),
		c.whereCmd(),
		c.validateCmd(),
		c.exportCmd(),
		versionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and builds the service and renderer
func (c *cli) setup(cmd *cobra.Command) (*app.Service, *output.Renderer, error) {
	cfg, err := config.LoadFrom(c.v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: c.verbose,
	})

	svc, err := app.NewService(app.ServiceOptions{Config: cfg, Logger: logger})
	if err != nil {
		return nil, nil, err
	}

	renderer, err := output.NewRenderer(cmd.OutOrStdout(), cfg.Output.Format)
	if err != nil {
		return nil, nil, err
	}
	return svc, renderer, nil
}

func (c *cli) platformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List platform keys in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, r, err := c.setup(cmd)
			if err != nil {
				return err
			}
			return r.Platforms(svc.Platforms())
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <platform>",
		Short: "List the documentation entries of a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, r, err := c.setup(cmd)
			if err != nil {
				return err
			}
			platform, entries, err := svc.Entries(docsmanifest.Platform(args[0]))
			if err != nil {
				return err
			}
			return r.Entries(platform, entries)
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <platform> <id>",
		Short: "Show a single documentation entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, r, err := c.setup(cmd)
			if err != nil {
				return err
			}
			platform, entry, err := svc.Entry(docsmanifest.Platform(args[0]), args[1])
			if err != nil {
				return err
			}
			return r.Entry(platform, entry)
		},
	}
}

func (c *cli) whereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where <id>",
		Short: "List the platforms that document an entry id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, r, err := c.setup(cmd)
			if err != nil {
				return err
			}
			platforms := svc.Where(args[0])
			if len(platforms) == 0 {
				return fmt.Errorf("%w: no platform documents %q", app.ErrEntryNotFound, args[0])
			}
			return r.Platforms(platforms)
		},
	}
}

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate the embedded manifest or a manifest file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := c.setup(cmd)
			if err != nil {
				return err
			}
			source := "embedded manifest"
			path := ""
			if len(args) == 1 {
				path = args[0]
				source = path
			}
			m, err := svc.Validate(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d platforms, %d entries)\n", source, len(m.Sections), m.Len())
			return nil
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print or write the full manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, r, err := c.setup(cmd)
			if err != nil {
				return err
			}
			if out == "" {
				return r.Manifest(svc.Manifest())
			}

			var buf bytes.Buffer
			fileRenderer, err := output.NewRenderer(&buf, r.Format())
			if err != nil {
				return err
			}
			if err := fileRenderer.Manifest(svc.Manifest()); err != nil {
				return err
			}
			if err := output.NewWriter(output.WriterOptions{Force: force}).WriteFile(out, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
