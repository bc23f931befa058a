package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pswsm/fasta-cli-tools/internal/config"
	"github.com/pswsm/fasta-cli-tools/internal/fasta"
	"github.com/pswsm/fasta-cli-tools/internal/logging"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// app carries what every subcommand needs once the root command has run.
type app struct {
	configPath string
	verbose    bool
	logLevel   string

	cfg     *config.Config
	logger  *log.Logger
	closeFn func()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fasta-cli-tools",
		Short:         "A CLI toolkit to manipulate fasta files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closeFn != nil {
				a.closeFn()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a config file (json, yaml or toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose (debug) logging")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")

	root.AddCommand(
		newPrintCmd(a),
		newCutCmd(a),
		newGenerateCmd(a),
		newFormatCmd(a),
		newAnalyzeCmd(a),
		newGetCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads config and builds the logger. Flags override config values.
func (a *app) setup() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logger == nil {
		a.logger, a.closeFn = logging.New(logging.Options{
			LogFile: cfg.LogFile,
			Level:   cfg.LogLevel,
			Verbose: a.verbose,
		})
	}
	if a.configPath != "" && !config.Exists(a.configPath) {
		a.logger.Warn("config file not found; using defaults", "path", a.configPath)
	}
	a.logger.Debug("loaded config", "log_file", cfg.LogFile, "log_level", cfg.LogLevel, "line_width", cfg.LineWidth, "uppercase", cfg.Uppercase, "workers", cfg.Workers)
	return nil
}

// emit writes text to path, or to the command's stdout when path is empty
// or "-".
func (a *app) emit(cmd *cobra.Command, path, text string) error {
	if path == "" || path == fasta.Stdio {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if err := fasta.WriteFile(path, text); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.logger.Info("wrote output", "path", path, "bytes", len(text))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "fasta-cli-tools", version)
		},
	}
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		if a.logger != nil {
			a.logger.Error("command failed", "err", err)
			if a.closeFn != nil {
				a.closeFn()
			}
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
