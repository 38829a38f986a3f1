package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/batch"
	"github.com/katalvlaran/stepwise/input"
)

// newCountCmd creates the count command.
func newCountCmd(a *app) *cobra.Command {
	var (
		workers int
		minStep int
		maxStep int
	)

	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count strict and tolerant safe reports",
		Long: `Read one report per line from file (or standard input when file is
omitted or "-") and print the number of strictly safe reports as "Part 1"
and the number of reports safe after removing at most one level as "Part 2".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("workers") {
				a.cfg.Workers = workers
			}
			if flags.Changed("min-step") {
				a.cfg.Steps.Min = minStep
			}
			if flags.Changed("max-step") {
				a.cfg.Steps.Max = maxStep
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			var (
				reports [][]int
				err     error
			)
			if path == "-" {
				reports, err = input.Parse(cmd.InOrStdin())
			} else {
				reports, err = input.ParseFile(path)
			}
			if err != nil {
				return err
			}
			a.log.WithField("reports", len(reports)).Debug("parsed input")

			rep, err := batch.Evaluate(cmd.Context(), reports,
				batch.WithStepRange(a.cfg.StepRange()),
				batch.WithWorkers(a.cfg.Workers),
				batch.WithLogger(a.log),
			)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"total":    rep.Total,
				"strict":   rep.Strict,
				"tolerant": rep.Tolerant,
			}).Info("evaluated reports")

			for _, line := range rep.Lines() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent validation workers (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&minStep, "min-step", 0, "Smallest allowed step magnitude")
	cmd.Flags().IntVar(&maxStep, "max-step", 0, "Largest allowed step magnitude")

	return cmd
}
