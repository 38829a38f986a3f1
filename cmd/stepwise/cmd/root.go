// Package cmd provides the CLI commands for stepwise.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/internal/config"
)

// Version is stamped at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

// app carries state shared by all subcommands once PersistentPreRunE ran.
type app struct {
	configPath string
	debug      bool

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd creates the root command for the stepwise CLI.
func NewRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	cmd := &cobra.Command{
		Use:   "stepwise",
		Short: "Count safe reports in level data",
		Long: `stepwise classifies reports (lines of integer levels) as safe when the
levels are strictly increasing or decreasing with every step inside the
allowed range, optionally tolerating the removal of a single level.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetVersionTemplate("stepwise version {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newCountCmd(a))
	cmd.AddCommand(newCheckCmd(a))

	return cmd
}

// Execute runs the root command until completion or SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads configuration and configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	if a.debug {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)
	a.log.WithFields(cfg.Fields()).Debug("config")

	return nil
}
