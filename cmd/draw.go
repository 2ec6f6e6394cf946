package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/lifesim/pkg/config"
	"github.com/nikogura/lifesim/pkg/renderer"
	"github.com/nikogura/lifesim/pkg/simulator"
)

//nolint:gochecknoglobals // Cobra boilerplate
var drawCount int

//nolint:gochecknoglobals // Cobra boilerplate
var drawFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var reportDir string

//nolint:gochecknoglobals // Cobra boilerplate
var makePDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var keepMarkdown bool

//nolint:gochecknoglobals // Cobra boilerplate
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw one or more random lives",
	Long: `Draw random lives and print each one's story with both scores.

Example:
  lifesim draw
  lifesim draw --region hokkaido --count 5 --seed 42
  lifesim draw --format json
  lifesim draw --report ./reports --pdf`,
	RunE: runDraw,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(drawCmd)
	drawCmd.Flags().IntVarP(&drawCount, "count", "n", 0, "Number of lives to draw (default from config)")
	drawCmd.Flags().StringVarP(&drawFormat, "format", "f", "", "Output format: text, json, markdown (default from config)")
	drawCmd.Flags().StringVar(&reportDir, "report", "", "Also write a markdown report per life into this directory")
	drawCmd.Flags().BoolVar(&makePDF, "pdf", false, "Render each report to PDF with pandoc (requires --report)")
	drawCmd.Flags().BoolVar(&keepMarkdown, "keep-markdown", true, "Keep markdown reports after PDF generation")
}

func runDraw(cmd *cobra.Command, args []string) (err error) {
	var s session
	s, err = setup(cmd)
	if err != nil {
		return err
	}

	count := s.cfg.Defaults.Count
	if drawCount > 0 {
		count = drawCount
	}

	format := s.cfg.Defaults.Format
	if drawFormat != "" {
		format = drawFormat
	}

	if makePDF && reportDir == "" {
		err = errors.New("--pdf needs --report to know where to write")
		return err
	}

	lives := s.sim.Batch(count)

	err = printLives(s, lives, format)
	if err != nil {
		return err
	}

	if reportDir != "" {
		err = writeReports(s, lives)
		if err != nil {
			return err
		}
	}

	return err
}

func printLives(s session, lives []simulator.Scored, format string) (err error) {
	classifier := s.sim.Scorer().Classifier()

	switch format {
	case config.FormatJSON:
		var data []byte
		data, err = json.MarshalIndent(lives, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "failed to marshal lives")
			return err
		}
		fmt.Println(string(data))

	case config.FormatMarkdown:
		for i := range lives {
			if i > 0 {
				fmt.Println("---")
				fmt.Println()
			}
			fmt.Print(renderer.Markdown(&lives[i].Record, lives[i].Scores, classifier))
		}

	case config.FormatText:
		for i := range lives {
			l := &lives[i]
			if len(lives) > 1 {
				fmt.Printf("=== Life %d of %d ===\n", i+1, len(lives))
			}
			fmt.Println(renderer.Story(&l.Record, l.Scores.Life.Income))
			fmt.Println()
			fmt.Print(renderer.Breakdown(l.Scores.Life, classifier, getVerbose()))
			fmt.Println()
			fmt.Print(renderer.Breakdown(l.Scores.Start, classifier, getVerbose()))
			fmt.Println()
		}

	default:
		err = errors.Errorf("unknown format %q (want text, json or markdown)", format)
		return err
	}

	return err
}

func writeReports(s session, lives []simulator.Scored) (err error) {
	classifier := s.sim.Scorer().Classifier()

	for i := range lives {
		l := &lives[i]
		base := fmt.Sprintf("life-%s-%03d-%s", s.sim.Region(), i+1, strings.ReplaceAll(strings.ToLower(l.Record.BirthCity), " ", "-"))
		mdPath := filepath.Join(reportDir, base+".md")

		err = renderer.WriteMarkdown(renderer.Markdown(&l.Record, l.Scores, classifier), mdPath)
		if err != nil {
			return err
		}
		if !makePDF {
			s.logger.Info().Str("path", mdPath).Msg("report written")
			continue
		}

		pdfPath := filepath.Join(reportDir, base+".pdf")
		err = renderer.RenderPDF(mdPath, pdfPath, s.cfg.Pandoc.TemplatePath)
		if err != nil {
			err = errors.Wrapf(err, "failed to render %s", pdfPath)
			return err
		}
		s.logger.Info().Str("path", pdfPath).Msg("report written")

		if !keepMarkdown {
			err = renderer.CleanupMarkdown(mdPath)
			if err != nil {
				// Non-fatal, just log
				s.logger.Warn().Err(err).Str("path", mdPath).Msg("failed to clean up markdown")
				err = nil
			}
		}
	}

	return err
}

