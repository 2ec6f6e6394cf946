package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/simulator"
	"github.com/nikogura/lifesim/pkg/store"
)

//nolint:gochecknoglobals // Cobra boilerplate
var statsCount int

//nolint:gochecknoglobals // Cobra boilerplate
var saveRun bool

//nolint:gochecknoglobals // Cobra boilerplate
var dbPath string

//nolint:gochecknoglobals // Cobra boilerplate
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Simulate many lives and report the rank distribution",
	Long: `Simulate a batch of lives for one region and report how they spread over the
ranks of both rubrics, with the mean score of each.

With --save the batch is archived in SQLite (the store path from config, or --db).

Example:
  lifesim stats --count 10000 --region tokyo --seed 1
  lifesim stats --count 1000 --save`,
	RunE: runStats,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVarP(&statsCount, "count", "n", 10000, "Number of lives to simulate")
	statsCmd.Flags().BoolVar(&saveRun, "save", false, "Archive the batch in the SQLite store")
	statsCmd.Flags().StringVar(&dbPath, "db", "", "SQLite store path (default from config)")
}

func runStats(cmd *cobra.Command, args []string) (err error) {
	if statsCount <= 0 {
		err = errors.Errorf("--count must be positive, got %d", statsCount)
		return err
	}

	var s session
	s, err = setup(cmd)
	if err != nil {
		return err
	}

	report := s.sim.Stats(statsCount)
	ranks := s.sim.Scorer().Classifier().Ranks()

	fmt.Printf("Region: %s, %d lives\n\n", report.Region, statsCount)
	printDistribution("Life score", report.Life, ranks, s)
	fmt.Println()
	printDistribution("Starting conditions", report.Start, ranks, s)

	if !saveRun && dbPath == "" {
		return err
	}

	path := s.cfg.Store.Path
	if dbPath != "" {
		path = dbPath
	}

	var st *store.Store
	st, err = store.Open(path, store.WithLogger(s.logger))
	if err != nil {
		err = errors.Wrap(err, "failed to open store")
		return err
	}
	defer st.Close()

	entries := make([]store.Entry, 0, len(report.Lives))
	for _, l := range report.Lives {
		entries = append(entries, store.Entry{Record: l.Record, Scores: l.Scores})
	}

	var run store.Run
	run, err = st.SaveRun(cmd.Context(), report.Region, s.seed, entries)
	if err != nil {
		err = errors.Wrap(err, "failed to archive run")
		return err
	}

	fmt.Printf("\nSaved run %s to %s\n", run.ID, path)

	return err
}

func printDistribution(title string, d simulator.Distribution, ranks []rank.Rank, s session) {
	classifier := s.sim.Scorer().Classifier()

	fmt.Printf("%s (mean %.1f)\n", title, d.MeanScore)
	for _, r := range ranks {
		fmt.Printf("  %-3s %-14s %6d  %5.1f%%\n", r, classifier.Label(r), d.Counts[r], d.Share(r)*100)
	}
}
