package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/readpace/rsvp"
	"github.com/readpace/rsvp/chapter"
	"github.com/readpace/rsvp/frames"
)

func newReadCmd() *cobra.Command {
	var (
		engineName string
		wpm        int
		tempo      int
		chapterIdx int
		chunk      int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "read FILE",
		Short: "Generate timed frames for a plain text chapter",
		Long:  "Reads a plain text file (form feeds separate chapters), runs it through the full tokenize/engine/cache stack, and prints one line per frame.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			cfg := rsvp.DefaultConfig()
			if wpm > 0 {
				cfg.BaseWPM = wpm
			}
			if tempo > 0 {
				cfg.TempoMsPerWord = tempo
			}
			if chunk > 0 {
				cfg.WordsPerFrame = chunk
				cfg.PhraseChunking = true
			}

			var eng rsvp.Engine
			switch engineName {
			case "throughput":
				eng = rsvp.NewThroughputEngine()
			case "comprehension":
				eng = rsvp.NewComprehensionEngine()
			default:
				return fmt.Errorf("unknown engine %q (want throughput or comprehension)", engineName)
			}

			bookID := filepath.Base(args[0])
			store := chapter.NewStore()
			if err := store.Add(chapter.Load(bookID, bookID, string(data))); err != nil {
				return err
			}

			cache := frames.New(store, eng)
			defer cache.Close()

			start := time.Now()
			set, err := cache.GetFrames(context.Background(), bookID, chapterIdx, cfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			shown := len(set.Frames)
			if limit > 0 && limit < shown {
				shown = limit
			}
			for _, f := range set.Frames[:shown] {
				if f.IsPageBreak() {
					fmt.Fprintf(cmd.OutOrStdout(), "%6dms  --- page break ---\n", f.DurationMs)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%6dms  %s\n", f.DurationMs, f.Text())
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"\n%d frames, %.1fs reading time, ~%.0f wpm (generated in %s)\n",
				len(set.Frames),
				float64(set.TotalDurationMs())/1000,
				rsvp.EstimateWPM(cfg),
				elapsed.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&engineName, "engine", "comprehension", "pacing engine: throughput or comprehension")
	cmd.Flags().IntVar(&wpm, "wpm", 0, "words per minute target (throughput engine)")
	cmd.Flags().IntVar(&tempo, "tempo", 0, "milliseconds per word (comprehension engine)")
	cmd.Flags().IntVar(&chapterIdx, "chapter", 0, "chapter index (form feeds separate chapters)")
	cmd.Flags().IntVar(&chunk, "chunk", 0, "words per frame (enables phrase chunking)")
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many frames")

	return cmd
}
