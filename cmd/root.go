package cmd

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nikogura/lifesim/pkg/config"
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/simulator"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var region string

//nolint:gochecknoglobals // Cobra boilerplate
var seed int64

//nolint:gochecknoglobals // Cobra boilerplate
var dataSource string

//nolint:gochecknoglobals // Cobra boilerplate
var logLevel string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "lifesim",
	Short: "Draw random lives from regional statistics",
	Long: `lifesim generates plausible life trajectories for a person born in a chosen
region: family background, schooling, career and death, each drawn from weighted
tables built on public statistics.

Every life is scored twice, once for how it turned out and once for how favourable
its starting conditions were, and mapped onto an SS..D rank.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.lifesim/config.json)")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "Region to simulate (default from config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed for reproducible draws (default from config, else time)")
	rootCmd.PersistentFlags().StringVar(&dataSource, "data", "", "Reference-data overlay file or URL (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// session is what every simulating command needs.
type session struct {
	cfg    config.Config
	logger zerolog.Logger
	sim    *simulator.Simulator
	seed   *int64
}

// setup loads config, applies flag overrides, builds the logger and a simulator.
func setup(cmd *cobra.Command) (s session, err error) {
	s.cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return s, err
	}

	if region != "" {
		s.cfg.Region = region
	}
	if dataSource != "" {
		s.cfg.DataSource = dataSource
	}
	if logLevel != "" {
		s.cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("seed") {
		s.cfg.Seed = &seed
	}
	s.seed = s.cfg.Seed

	s.logger, err = newLogger(s.cfg.LogLevel, getVerbose())
	if err != nil {
		return s, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	var dataset *refdata.Dataset
	dataset, err = loadDataset(ctx, s.cfg.DataSource, s.logger)
	if err != nil {
		return s, err
	}

	opts := []simulator.Option{simulator.WithLogger(s.logger)}
	if s.seed != nil {
		opts = append(opts, simulator.WithSeed(*s.seed))
	}

	s.sim, err = simulator.New(dataset, s.cfg.Region, opts...)
	if err != nil {
		err = errors.Wrapf(err, "failed to set up simulation for %s", s.cfg.Region)
		return s, err
	}

	return s, err
}

// newLogger writes human-readable logs to stderr so stdout stays clean for output.
func newLogger(level string, verbose bool) (logger zerolog.Logger, err error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		lvl, err = zerolog.ParseLevel(level)
		if err != nil {
			err = errors.Wrapf(err, "invalid log level: %s", level)
			return logger, err
		}
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()
	return logger, err
}

// loadDataset overlays source on the built-in data. An overlay that cannot be fetched is
// logged and skipped; one that cannot be parsed is an error.
func loadDataset(ctx context.Context, source string, logger zerolog.Logger) (d *refdata.Dataset, err error) {
	d = refdata.Builtin()
	if source == "" {
		return d, err
	}

	data, fetchErr := refdata.Fetch(ctx, source)
	if fetchErr != nil {
		logger.Warn().Err(fetchErr).Str("source", source).Msg("reference data unavailable, using built-in tables")
		return d, err
	}

	err = refdata.Apply(d, data)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse reference data: %s", source)
		return d, err
	}

	logger.Debug().Str("source", source).Strs("regions", d.RegionKeys()).Msg("reference data overlay applied")

	return d, err
}
