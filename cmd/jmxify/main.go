package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"jmxify/internal/config"
	"jmxify/internal/logging"
	"jmxify/pkg/convert"
	"jmxify/pkg/pulse"
)

var version = "dev"

type options struct {
	configPath string
	logLevel   string
	logJSON    bool
}

// setup loads the configuration and applies log flags on top of it.
func (o *options) setup(cmd *cobra.Command) (config.Config, *convert.Converter, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = o.logJSON
	}
	logging.Configure(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	conv := &convert.Converter{
		Namespace: cfg.Source.Namespace,
		Logger:    logging.L(),
	}
	return cfg, conv, nil
}

func outputArg(args []string, ext string) string {
	if len(args) > 1 {
		return args[1]
	}
	return convert.DefaultOutput(args[0], ext)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	var rootCmd = &cobra.Command{
		Use:           "jmxify",
		Short:         "jmxify - convert ReadyAPI/SoapUI projects to JMeter test plans",
		Long:          "jmxify converts the REST requests, headers and assertions of a ReadyAPI/SoapUI project file into a JMeter .jmx test plan or a Pulse scenario.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Log as JSON")

	// ---------------------------------------------------------------------
	// CONVERT COMMAND
	// ---------------------------------------------------------------------
	var convertCmd = &cobra.Command{
		Use:   "convert <project.xml> [output.jmx]",
		Short: "Convert a ReadyAPI project to a JMeter test plan",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, conv, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			out := outputArg(args, ".jmx")
			if err := conv.Convert(args[0], out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Converted ReadyAPI XML → JMeter JMX saved at %s\n", out)
			return nil
		},
	}

	// ---------------------------------------------------------------------
	// PULSE COMMAND
	// ---------------------------------------------------------------------
	var pulseCmd = &cobra.Command{
		Use:   "pulse <project.xml> [output.pulse.yaml]",
		Short: "Convert a ReadyAPI project to a Pulse scenario",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, conv, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			plan, err := conv.PlanFile(args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			profile := pulse.DefaultProfile()
			profile.Concurrency = cfg.Pulse.Concurrency
			profile.RampUp = cfg.Pulse.RampUp
			profile.Duration = cfg.Pulse.Duration

			out := outputArg(args, ".pulse.yaml")
			if err := pulse.WriteFile(out, pulse.FromPlan(plan, name, profile)); err != nil {
				return &convert.IOError{Path: out, Err: err}
			}
			logging.L().Info("exported scenario", "output", out, "requests", len(plan.Samplers))
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Converted ReadyAPI XML → Pulse scenario saved at %s\n", out)
			return nil
		},
	}

	// ---------------------------------------------------------------------
	// INSPECT COMMAND
	// ---------------------------------------------------------------------
	var inspectCmd = &cobra.Command{
		Use:   "inspect <project.xml>",
		Short: "List the requests found in a ReadyAPI project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, conv, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			project, err := conv.ReadProject(args[0])
			if err != nil {
				return err
			}
			project.Print(cmd.OutOrStdout())
			return nil
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of jmxify",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jmxify version %s\n", version)
		},
	}

	rootCmd.AddCommand(convertCmd, pulseCmd, inspectCmd, versionCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println("❌ Error:", err)
		os.Exit(1)
	}
}
