package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/plan-merger/internal/entity"
	"github.com/joseph-ayodele/plan-merger/internal/export"
	"github.com/joseph-ayodele/plan-merger/internal/ingest"
	"github.com/joseph-ayodele/plan-merger/internal/merge"
	"github.com/joseph-ayodele/plan-merger/internal/prompt"
)

// Options control one batch run.
type Options struct {
	AddPrompts bool
	DryRun     bool
	XLSXReport bool
	// PromptPreviewLen caps the prompt excerpt echoed to the log.
	PromptPreviewLen int
}

// Processor merges discovered pairs one at a time, in discovery order. A
// failed pair is logged and skipped; it never aborts the batch.
type Processor struct {
	Logger *slog.Logger
	Merger *merge.Merger
	Opts   Options
}

func NewProcessor(logger *slog.Logger, merger *merge.Merger, opts Options) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if merger == nil {
		merger = merge.NewMerger(logger)
	}
	return &Processor{Logger: logger, Merger: merger, Opts: opts}
}

// Run processes every pair and returns the run summary. The returned error is
// reserved for whole-batch failures (context cancellation, summary write);
// per-pair failures only lower SuccessfulMerges.
func (p *Processor) Run(ctx context.Context, inputDir, outputDir string, pairs []ingest.Pair) (*entity.RunSummary, error) {
	summary := &entity.RunSummary{
		RunID:           uuid.New().String(),
		MergeTimestamp:  time.Now().Format(time.RFC3339),
		InputDirectory:  inputDir,
		OutputDirectory: outputDir,
		TotalPairs:      len(pairs),
		MergedFiles:     []string{},
	}
	p.Logger.Info("pipeline.run.start",
		"run_id", summary.RunID,
		"pairs", len(pairs),
		"dry_run", p.Opts.DryRun,
	)

	var reportEntries []export.ReportEntry
	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		p.Logger.Info("pipeline.pair.merging", "base", pair.Base)

		if p.Opts.DryRun {
			p.Logger.Info("pipeline.pair.dry_run", "base", pair.Base)
			continue
		}

		rec, err := p.Merger.MergeFiles(pair.MetadataPath, pair.ElementsPath)
		if err != nil {
			p.Logger.Error("pipeline.pair.failed", "base", pair.Base, "err", err)
			continue
		}

		if p.Opts.AddPrompts {
			rec.GeneratedPrompt = prompt.Generate(rec)
			p.Logger.Info("pipeline.pair.prompt",
				"base", pair.Base,
				"prompt", truncate(rec.GeneratedPrompt, p.Opts.PromptPreviewLen),
			)
		}

		path, err := export.WriteRecord(outputDir, pair.Base, rec)
		if err != nil {
			p.Logger.Error("pipeline.pair.write_failed", "base", pair.Base, "err", err)
			continue
		}
		p.Logger.Info("pipeline.pair.ok", "base", pair.Base, "path", path)

		summary.SuccessfulMerges++
		summary.MergedFiles = append(summary.MergedFiles, pair.Base)
		if p.Opts.XLSXReport {
			reportEntries = append(reportEntries, export.ReportEntry{Base: pair.Base, Record: rec})
		}
	}

	if summary.SuccessfulMerges > 0 && !p.Opts.DryRun {
		path, err := export.WriteSummary(outputDir, summary)
		if err != nil {
			return summary, err
		}
		p.Logger.Info("pipeline.summary.written", "path", path)

		if p.Opts.XLSXReport {
			path, err := export.WriteReport(outputDir, reportEntries)
			if err != nil {
				return summary, err
			}
			p.Logger.Info("pipeline.report.written", "path", path)
		}
	}

	p.Logger.Info("pipeline.run.done",
		"run_id", summary.RunID,
		"successful", summary.SuccessfulMerges,
		"total", summary.TotalPairs,
	)
	return summary, nil
}

// truncate shortens s to n runes, never splitting a multibyte character.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
