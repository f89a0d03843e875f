package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readpace/rsvp"
)

func newEstimateCmd() *cobra.Command {
	var tempos []int

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate effective words-per-minute for pacing tempos",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(tempos) == 0 {
				tempos = []int{90, 120, 160, 200, 250}
			}
			cfg := rsvp.DefaultConfig()
			for _, t := range tempos {
				if t <= 0 {
					return fmt.Errorf("tempo must be positive, got %d", t)
				}
				cfg.TempoMsPerWord = t
				fmt.Fprintf(cmd.OutOrStdout(), "%4d ms/word  ~%.0f wpm\n", t, rsvp.EstimateWPM(cfg))
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&tempos, "tempo", nil, "tempos to estimate, in ms per word")

	return cmd
}
