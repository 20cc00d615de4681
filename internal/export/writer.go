package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/plan-merger/constants"
	"github.com/joseph-ayodele/plan-merger/internal/entity"
)

// MarshalJSON renders v with 2-space indentation and HTML escaping disabled,
// so Japanese annotation text survives byte-for-byte.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// RecordPath is the output location for a merged pair.
func RecordPath(outputDir, base string) string {
	return filepath.Join(outputDir, base+constants.IntegratedSuffix)
}

// WriteRecord serializes one integrated record and returns its path.
func WriteRecord(outputDir, base string, rec *entity.IntegratedRecord) (string, error) {
	path := RecordPath(outputDir, base)
	if err := writeJSON(path, rec); err != nil {
		return "", err
	}
	return path, nil
}

// WriteSummary serializes the run summary to its fixed filename.
func WriteSummary(outputDir string, summary *entity.RunSummary) (string, error) {
	path := filepath.Join(outputDir, constants.SummaryFilename)
	if err := writeJSON(path, summary); err != nil {
		return "", err
	}
	return path, nil
}
