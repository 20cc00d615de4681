package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/plan-merger/internal/common"
	"github.com/joseph-ayodele/plan-merger/internal/ingest"
	"github.com/joseph-ayodele/plan-merger/internal/merge"
	"github.com/joseph-ayodele/plan-merger/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		outputDir  string
		addPrompts = flag.Bool("add-prompts", false, "add a generated training prompt to each integrated JSON")
		dryRun     = flag.Bool("dry-run", false, "show what would be done without reading or writing files")
		xlsxReport = flag.Bool("xlsx-report", false, "also write an XLSX report of the merged records")
	)
	flag.StringVar(&outputDir, "o", "", "output directory for integrated JSON files (default <input_dir>/integrated)")
	flag.StringVar(&outputDir, "output_dir", "", "output directory for integrated JSON files (default <input_dir>/integrated)")
	flag.Usage = func() {
		printError("Usage: %s [flags] input_dir\n\nMerges <base>_metadata.json / <base>_elements.json pairs into <base>_integrated.json.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputDir := flag.Arg(0)

	cfg := common.LoadConfig()
	logger := common.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		printError("Error: input directory %s does not exist\n", inputDir)
		os.Exit(1)
	}

	if outputDir == "" {
		outputDir = filepath.Join(inputDir, cfg.OutputSubdir)
	}
	if !*dryRun {
		if _, err := os.Stat(outputDir); os.IsNotExist(err) {
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				printError("Error: cannot create output directory %s: %v\n", outputDir, err)
				os.Exit(1)
			}
			logger.Info("main.output_dir.created", "path", outputDir)
		}
	}

	pairs, stats, err := ingest.NewFinder(logger).FindPairs(inputDir)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if len(pairs) == 0 {
		printError("No matching Phase 1 and Phase 2 pairs found\n")
		os.Exit(1)
	}
	logger.Info("main.pairs.found",
		"pairs", len(pairs),
		"metadata_files", stats.MetadataFiles,
		"unmatched", stats.Unmatched,
	)
	fmt.Printf("Found %d pairs to merge\n", len(pairs))

	processor := pipeline.NewProcessor(logger, merge.NewMerger(logger), pipeline.Options{
		AddPrompts:       *addPrompts,
		DryRun:           *dryRun,
		XLSXReport:       *xlsxReport,
		PromptPreviewLen: cfg.PromptPreviewLen,
	})

	summary, err := processor.Run(context.Background(), inputDir, outputDir, pairs)
	if err != nil {
		logger.Error("main.run.failed", "err", err)
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully merged %d out of %d pairs\n", summary.SuccessfulMerges, summary.TotalPairs)
	if !*dryRun && summary.SuccessfulMerges > 0 {
		fmt.Printf("Integrated JSON files saved to: %s\n", outputDir)
	}
}
