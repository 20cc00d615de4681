package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joseph-ayodele/plan-merger/internal/entity"
	"github.com/joseph-ayodele/plan-merger/internal/merge"
)

func sampleRecord() *entity.IntegratedRecord {
	m := merge.NewMerger(nil)
	return m.Merge(
		&entity.Phase1Document{CropID: "c1", Floor: "1F"},
		&entity.Phase2Document{
			AnnotationMetadata: map[string]any{"annotator": "担当者A"},
		},
	)
}

func TestWriteRecordFormatting(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteRecord(dir, "c1", sampleRecord())
	if err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if filepath.Base(path) != "c1_integrated.json" {
		t.Fatalf("unexpected record filename %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Contains(data, []byte("担当者A")) {
		t.Fatal("non-ASCII characters must be preserved literally")
	}
	if !bytes.Contains(data, []byte("\n  \"crop_id\"")) {
		t.Fatal("expected 2-space indentation")
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["crop_id"] != "c1" {
		t.Fatalf("unexpected crop_id %v", decoded["crop_id"])
	}
	if _, present := decoded["generated_prompt"]; present {
		t.Fatal("generated_prompt must be absent unless prompts were requested")
	}
}

func TestWriteRecordElementCountOrder(t *testing.T) {
	m := merge.NewMerger(nil)
	rec := m.Merge(&entity.Phase1Document{}, &entity.Phase2Document{
		StructuralElements: []entity.StructuralElement{
			{"type": "wall"},
			{"type": "entrance"},
			{"type": "wall"},
			{"type": "balcony"},
		},
	})

	data, err := MarshalJSON(rec)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	text := string(data)
	wall := strings.Index(text, `"wall"`)
	entrance := strings.Index(text, `"entrance"`)
	balcony := strings.Index(text, `"balcony"`)
	if wall == -1 || entrance == -1 || balcony == -1 {
		t.Fatalf("missing element count keys in %s", text)
	}
	if !(wall < entrance && entrance < balcony) {
		t.Fatalf("element_counts must keep first-seen order, got %s", text)
	}
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSummary(dir, &entity.RunSummary{
		RunID:            "run-1",
		TotalPairs:       2,
		SuccessfulMerges: 1,
		MergedFiles:      []string{"c1"},
	})
	if err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if filepath.Base(path) != "merge_summary.json" {
		t.Fatalf("unexpected summary filename %q", filepath.Base(path))
	}

	var decoded entity.RunSummary
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}
	if decoded.SuccessfulMerges != 1 || len(decoded.MergedFiles) != 1 {
		t.Fatalf("unexpected summary %+v", decoded)
	}
}

func TestBuildReportXLSX(t *testing.T) {
	rec := sampleRecord()
	rec.GeneratedPrompt = "rooms_3, japanese_house, architectural_plan, 910mm_grid"
	data, err := BuildReportXLSX([]ReportEntry{{Base: "c1", Record: rec}})
	if err != nil {
		t.Fatalf("BuildReportXLSX: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected workbook bytes")
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatal("expected a zip container")
	}
}
