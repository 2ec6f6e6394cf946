package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nikogura/lifesim/pkg/refdata"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export-data",
	Short: "Dump the reference data as YAML",
	Long: `Dump the reference data as YAML. Without --data this is the built-in dataset,
a starting point for an overlay; with --data it is the merged result.

Example:
  lifesim export-data > overlay.yaml
  lifesim export-data --data overlay.yaml --output merged.yaml`,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	var logger zerolog.Logger
	logger, err = newLogger(logLevel, getVerbose())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	var d *refdata.Dataset
	d, err = loadDataset(ctx, dataSource, logger)
	if err != nil {
		return err
	}

	err = d.Validate()
	if err != nil {
		err = errors.Wrap(err, "reference data validation failed")
		return err
	}

	var data []byte
	data, err = refdata.Marshal(d)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Print(string(data))
		return err
	}

	err = os.WriteFile(exportOutput, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write %s", exportOutput)
		return err
	}

	logger.Info().Str("path", exportOutput).Msg("reference data exported")

	return err
}
