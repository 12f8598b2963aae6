// SPDX-License-Identifier: MIT

// Package cli wires the sparse package to the sparsemat command line:
// cobra for commands, viper for layered configuration, slog for logging.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfg     Config
	cfgFile string
	log     *slog.Logger
	stderr  io.Writer
}

// newApp returns state whose logger writes info and above to stderr until
// setup replaces it with the configured one.
func newApp(stderr io.Writer) *app {
	return &app{
		v:      newViper(),
		log:    slog.New(slog.NewTextHandler(stderr, nil)),
		stderr: stderr,
	}
}

// NewRootCommand assembles the command tree. stdout receives matrix output,
// stderr receives log records.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newApp(stderr).rootCommand(stdout)
}

func (a *app) rootCommand(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:               "sparsemat",
		Short:             "Integer sparse matrix arithmetic",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.StringP(keyOutput, "o", "", "output file (.yaml/.yml for YAML, anything else for text); stdout when empty")
	pf.String(keyLogLevel, "info", "log level: debug, info, warn, error")
	pf.Bool(keyRejectZeros, false, "fail on input entries whose value is 0")
	// Only fails for a nil flag set.
	_ = a.v.BindPFlags(pf)

	root.AddCommand(
		a.newBinaryCommand("add", []string{"sum"}),
		a.newBinaryCommand("subtract", []string{"sub", "diff"}),
		a.newBinaryCommand("multiply", []string{"mul", "product"}),
		a.newShowCommand(),
		a.newRunCommand(),
	)

	return root
}

// setup resolves configuration and installs the configured logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(a.stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger
	a.log.Debug("configuration resolved",
		"command", cmd.Name(),
		"config", a.cfgFile,
		"output", cfg.Output,
		"reject_zeros", cfg.RejectZeros,
	)

	return nil
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	root := a.rootCommand(stdout)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err != nil {
		name := root.Name()
		if cmd != nil {
			name = cmd.Name()
		}
		a.log.Error("command failed", "command", name, "err", err)
		return 1
	}

	return 0
}
