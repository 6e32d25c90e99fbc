package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DoyleJ11/sosphone-backend/internal/clock"
	"github.com/DoyleJ11/sosphone-backend/internal/i18n"
	"github.com/DoyleJ11/sosphone-backend/internal/reveal"
)

func rollCmd() *cobra.Command {
	var step time.Duration

	cmd := &cobra.Command{
		Use:   "roll <target>",
		Short: "Play one round of the dice game in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := i18n.Printer(cfg.Locale)
			target, err := reveal.ParseTarget(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", p.Sprintf(i18n.TargetOutOfRange, reveal.MinTarget, reveal.MaxTarget), err)
			}

			due := make(chan func(), len(reveal.Plan))
			done := false
			out := cmd.OutOrStdout()
			seq := reveal.NewSequencer(
				clock.Posted(clock.Real{}, func(fn func()) { due <- fn }),
				reveal.NewRandSource(),
				step,
				func(e reveal.Event) {
					switch e.Type {
					case reveal.EvtRolled:
						fmt.Fprintf(out, "%d: %v = %d\n", e.Step, e.Roll, e.Sum)
					case reveal.EvtWon:
						fmt.Fprintln(out, p.Sprintf(i18n.DiceWon, e.Target))
						done = true
					case reveal.EvtLost:
						fmt.Fprintln(out, p.Sprintf(i18n.DiceLost, e.Sum, e.Target))
						done = true
					}
				},
			)
			if err := seq.Start(target); err != nil {
				return err
			}

			for !done {
				select {
				case fn := <-due:
					fn()
				case <-cmd.Context().Done():
					seq.Stop()
					return cmd.Context().Err()
				}
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&step, "step", reveal.DefaultUnit, "time unit between reveal steps")
	return cmd
}
