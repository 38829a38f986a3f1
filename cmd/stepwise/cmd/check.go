package cmd

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/monotone"
)

// newCheckCmd creates the check command.
func newCheckCmd(a *app) *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "check LEVEL...",
		Short: "Classify a single report given as arguments",
		Long: `Print "safe" or "unsafe" for the report formed by the arguments.
Use "--" before the levels when the first one is negative.`,
		Example: `  stepwise check 7 6 4 2 1
  stepwise check --mode tolerant 1 3 2 4 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := monotone.ParseMode(modeName)
			if err != nil {
				return err
			}
			seq := make([]int, len(args))
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("level %d: %q is not an integer", i+1, arg)
				}
				seq[i] = v
			}

			r := a.cfg.StepRange()
			ok, err := monotone.Validate(seq,
				monotone.WithMode(mode),
				monotone.WithStepRange(r.Min, r.Max),
			)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"mode":   mode.String(),
				"levels": len(seq),
				"safe":   ok,
			}).Debug("checked report")

			verdict := "unsafe"
			if ok {
				verdict = "safe"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), verdict)

			return err
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", monotone.ModeStrict.String(), "Validation mode: strict or tolerant")

	return cmd
}
