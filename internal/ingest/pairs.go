package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/plan-merger/constants"
)

// Pair is one matched Phase 1 / Phase 2 file pair.
type Pair struct {
	Base         string
	MetadataPath string
	ElementsPath string
}

// ScanStats aggregates what the directory scan saw.
type ScanStats struct {
	MetadataFiles uint32
	Matched       uint32
	Unmatched     uint32
}

// Finder scans a directory for phase pairs by filename convention.
type Finder struct {
	Logger *slog.Logger
}

func NewFinder(logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{Logger: logger}
}

// FindPairs lists every *_metadata.json in dir and pairs it with the sibling
// <base>_elements.json. Metadata files without a sibling are logged as
// warnings and skipped, never treated as errors. Pair order follows the
// directory listing order; callers must not rely on a particular ordering.
func (f *Finder) FindPairs(dir string) ([]Pair, ScanStats, error) {
	var pairs []Pair
	var stats ScanStats

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, stats, fmt.Errorf("read input directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, constants.MetadataSuffix) {
			continue
		}
		stats.MetadataFiles++

		base := strings.TrimSuffix(name, constants.MetadataSuffix)
		elementsName := base + constants.ElementsSuffix
		elementsPath := filepath.Join(dir, elementsName)
		if _, err := os.Stat(elementsPath); err != nil {
			stats.Unmatched++
			f.Logger.Warn("ingest.pair.unmatched",
				"metadata_file", name,
				"expected_elements_file", elementsName,
			)
			continue
		}

		stats.Matched++
		f.Logger.Info("ingest.pair.found",
			"metadata_file", name,
			"elements_file", elementsName,
		)
		pairs = append(pairs, Pair{
			Base:         base,
			MetadataPath: filepath.Join(dir, name),
			ElementsPath: elementsPath,
		})
	}

	return pairs, stats, nil
}
