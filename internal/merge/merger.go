package merge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/plan-merger/constants"
	"github.com/joseph-ayodele/plan-merger/internal/common"
	"github.com/joseph-ayodele/plan-merger/internal/entity"
)

// Merger projects a Phase 1 / Phase 2 document pair into one integrated
// record. Inputs are never mutated; a fresh record is built per pair.
type Merger struct {
	Logger *slog.Logger

	// now is swapped out in tests.
	now func() time.Time
}

func NewMerger(logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{Logger: logger, now: time.Now}
}

// MergeFiles reads, parses and merges one pair. Any read or parse failure
// fails the whole pair; the caller decides whether to continue the batch.
func (m *Merger) MergeFiles(metadataPath, elementsPath string) (*entity.IntegratedRecord, error) {
	var phase1 entity.Phase1Document
	if err := readDocument(metadataPath, &phase1); err != nil {
		return nil, common.WrapError(err, "load phase1 document")
	}

	var phase2 entity.Phase2Document
	if err := readDocument(elementsPath, &phase2); err != nil {
		return nil, common.WrapError(err, "load phase2 document")
	}

	return m.Merge(&phase1, &phase2), nil
}

func readDocument(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		sentinel := common.ErrInternal
		if errors.Is(err, fs.ErrNotExist) {
			sentinel = common.ErrNotFound
		}
		return common.NewAppError("READ_ERROR",
			fmt.Sprintf("read %s: %v", filepath.Base(path), err), sentinel)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return common.NewAppError("PARSE_ERROR",
			fmt.Sprintf("parse %s: %v", filepath.Base(path), err), common.ErrInvalidInput)
	}
	return nil
}

// Merge builds the integrated record from two parsed documents. Absent
// optional fields degrade to null/empty defaults; Merge itself cannot fail.
func (m *Merger) Merge(phase1 *entity.Phase1Document, phase2 *entity.Phase2Document) *entity.IntegratedRecord {
	rec := &entity.IntegratedRecord{
		CropID:                phase1.CropID,
		OriginalPDF:           phase1.OriginalPDF,
		Floor:                 phase1.Floor,
		GridDimensions:        phase1.GridDimensions,
		ScaleInfo:             phase1.ScaleInfo,
		BuildingContext:       phase1.BuildingContext,
		GridModuleInfo:        phase1.GridModuleInfo,
		CropBoundsInOriginal:  phase1.CropBoundsInOriginal,
		StructuralConstraints: phase1.StructuralConstraints,
		FloorRequirements:     phase1.FloorRequirements,
		StructuralElements:    phase2.StructuralElements,
		Zones:                 phase2.Zones,
		StairInfo:             phase2.StairInfo,
		ValidationStatus:      phase2.ValidationStatus,
		Timestamps: entity.Timestamps{
			Phase1Created:     phase1.Timestamp,
			Phase2Created:     phase2.AnnotationMetadata["annotation_time"],
			IntegratedCreated: m.now().Format(time.RFC3339),
		},
		MetadataVersion:    constants.MetadataVersion,
		AnnotationMetadata: mergeAnnotationMetadata(phase1, phase2),
	}

	// List fields default to empty sequences, not null.
	if rec.StructuralElements == nil {
		rec.StructuralElements = []entity.StructuralElement{}
	}
	if rec.Zones == nil {
		rec.Zones = []any{}
	}
	if rec.StairInfo == nil {
		rec.StairInfo = []any{}
	}

	rec.TrainingHints = CalculateTrainingHints(rec.GridDimensions, rec.StructuralElements)
	return rec
}

// mergeAnnotationMetadata shallow-merges Phase 2's annotation metadata with
// three keys derived from Phase 1, which always win.
func mergeAnnotationMetadata(phase1 *entity.Phase1Document, phase2 *entity.Phase2Document) map[string]any {
	merged := make(map[string]any, len(phase2.AnnotationMetadata)+3)
	for k, v := range phase2.AnnotationMetadata {
		merged[k] = v
	}
	merged["floor_type"] = phase1.Floor
	merged["grid_resolution"] = phase1.GridDimensions.Resolution()
	var drawingScale any
	if phase1.ScaleInfo != nil && phase1.ScaleInfo.DrawingScale != nil {
		drawingScale = *phase1.ScaleInfo.DrawingScale
	}
	merged["drawing_scale"] = drawingScale
	return merged
}
