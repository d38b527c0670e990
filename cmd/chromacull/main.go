package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"chromacull/adapters/excel"
	"chromacull/adapters/semantics/heuristic"
	"chromacull/app"
	"chromacull/domain/color"
	"chromacull/internal"
	"chromacull/internal/config"
	"chromacull/internal/errors"
	"chromacull/internal/extract"
	"chromacull/internal/inference"
	"chromacull/internal/prune"

	"github.com/gomarkdown/markdown"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "chromacull",
		Short: "Color dataset ingestion and curation engine",
	}

	rootCmd.AddCommand(
		newInferCmd(),
		newCurateCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newInferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "infer [input.json]",
		Short: "Diagnose the structural shape of a raw color dataset",
		Long: `Run the format-inference battery over a deserialized JSON dataset and
print every structure candidate ranked by confidence.

Example: chromacull infer palette.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := loadRaw(args[0])
			if err != nil {
				return err
			}

			candidates := inference.NewEngine().Infer(cmd.Context(), raw)
			return printJSON(candidates)
		},
	}
}

func newCurateCmd() *cobra.Command {
	var target int
	var output string
	var priorityFile string

	cmd := &cobra.Command{
		Use:   "curate [input.json]",
		Short: "Run the full curation pipeline and write the curated dataset",
		Long: `Infer structure, extract canonical records, remove semantic duplicates,
and prune to the target size while preserving hue-spectrum coverage.

The output format follows the file extension: .xlsx, .csv, or .json.

Example: chromacull curate palette.json --target 500 --output curated.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurate(cmd.Context(), args[0], target, output, priorityFile)
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "Target dataset size (0 keeps everything)")
	cmd.Flags().StringVar(&output, "output", "", "Output file path (defaults to OUTPUT_FILE)")
	cmd.Flags().StringVar(&priorityFile, "priority", "", "JSON file of priority colors")

	return cmd
}

func newReportCmd() *cobra.Command {
	var priorityFile string
	var outFile string
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "report [input.json]",
		Short: "Generate a duplicate-analysis report",
		Long: `Deduplicate the dataset and render a markdown report with the duplicate
groups, a temperature breakdown, and the semantic-kernel distribution.

Example: chromacull report palette.json --html --out report.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), args[0], priorityFile, outFile, asHTML)
		},
	}

	cmd.Flags().StringVar(&priorityFile, "priority", "", "JSON file of priority colors")
	cmd.Flags().StringVar(&outFile, "out", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Render the report as HTML")

	return cmd
}

func runCurate(ctx context.Context, inputPath string, target int, output, priorityFile string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := internal.NewDefaultLogger()

	raw, err := loadRaw(inputPath)
	if err != nil {
		return err
	}

	var priority []color.Record
	if priorityFile == "" {
		priorityFile = cfg.Paths.PriorityFile
	}
	if priorityFile != "" {
		priority, err = loadRecords(ctx, priorityFile)
		if err != nil {
			return errors.Wrap(err, "failed to load priority colors")
		}
	}

	if target == 0 {
		target = cfg.Curation.TargetSize
	}
	if output == "" {
		output = cfg.Paths.OutputFile
	}

	var opts *prune.Options
	if cfg.Curation.MinFamilies > 0 {
		opts = &prune.Options{
			MinFamilies:      cfg.Curation.MinFamilies,
			MinCoverage:      cfg.Curation.MinCoverage,
			PreserveExtremes: cfg.Curation.PreserveExtremes,
		}
	}

	service := app.NewCurationService(heuristic.New(), logger)
	result, err := service.Curate(ctx, raw, app.CurationRequest{
		TargetSize: target,
		Priority:   priority,
		Options:    opts,
		Progress: func(p float64, msg string) {
			logger.Info("[%3.0f%%] %s", p, msg)
		},
	})
	if err != nil {
		return err
	}

	if err := writeDataset(output, result.Records); err != nil {
		return err
	}
	logger.Info("wrote %d records to %s (run %s, %dms)",
		len(result.Records), output, result.RunID, result.RuntimeMs)

	return printJSON(map[string]interface{}{
		"run_id":        result.RunID,
		"top_candidate": result.TopCandidate,
		"dedupe_stats":  result.DedupeStats,
		"prune_stats":   result.PruneStats,
		"stage_ms":      result.StageMs,
	})
}

func runReport(ctx context.Context, inputPath, priorityFile, outFile string, asHTML bool) error {
	raw, err := loadRaw(inputPath)
	if err != nil {
		return err
	}

	var priority []color.Record
	if priorityFile != "" {
		priority, err = loadRecords(ctx, priorityFile)
		if err != nil {
			return errors.Wrap(err, "failed to load priority colors")
		}
	}

	service := app.NewCurationService(heuristic.New(), internal.NewDefaultLogger())
	report, err := service.Report(ctx, raw, priority)
	if err != nil {
		return err
	}

	out := []byte(report)
	if asHTML {
		out = markdown.ToHTML([]byte(report), nil, nil)
	}

	if outFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(outFile, out, 0o644); err != nil {
		return errors.ExportError("failed to write report", err)
	}
	return nil
}

// writeDataset picks the writer by extension: spreadsheet formats go through
// the excel adapter, everything else is JSON.
func writeDataset(path string, records []color.Record) error {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".csv") {
		return excel.NewDatasetWriter().Write(path, records)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.ExportError("failed to encode records", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ExportError("failed to write records", err)
	}
	return nil
}

// loadRaw reads and deserializes a JSON dataset without assuming any shape.
func loadRaw(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input file")
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.ParseError("input is not valid JSON", err)
	}
	return raw, nil
}

// loadRecords parses an arbitrary color file into canonical records by
// running it through the same inference and extraction used for datasets.
func loadRecords(ctx context.Context, path string) ([]color.Record, error) {
	raw, err := loadRaw(path)
	if err != nil {
		return nil, err
	}
	candidates := inference.NewEngine().Infer(ctx, raw)
	records := extract.Records(candidates[0], raw)
	if len(records) == 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("no color records found in %s", path))
	}
	return records, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	fmt.Println(string(data))
	return nil
}
