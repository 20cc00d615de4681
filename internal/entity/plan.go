package entity

import (
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/joseph-ayodele/plan-merger/constants"
)

// GridDimensions describes the crop extent in grid modules. Both fields are
// optional in the source documents; absent values stay nil and are
// substituted per field at the point of use.
type GridDimensions struct {
	WidthGrids  *int `json:"width_grids,omitempty"`
	HeightGrids *int `json:"height_grids,omitempty"`
}

// IsEmpty reports whether neither dimension was present in the input.
func (g *GridDimensions) IsEmpty() bool {
	return g == nil || (g.WidthGrids == nil && g.HeightGrids == nil)
}

// Resolution renders "{width}x{height}" with the literal "None" standing in
// for an absent dimension, so formatting always succeeds.
func (g *GridDimensions) Resolution() string {
	var w, h *int
	if g != nil {
		w, h = g.WidthGrids, g.HeightGrids
	}
	return formatDim(w) + "x" + formatDim(h)
}

func formatDim(d *int) string {
	if d == nil {
		return "None"
	}
	return strconv.Itoa(*d)
}

// ScaleInfo holds the drawing scale and the grid module size in millimeters.
type ScaleInfo struct {
	DrawingScale *string  `json:"drawing_scale,omitempty"`
	GridMM       *float64 `json:"grid_mm,omitempty"`
}

// IsEmpty reports whether neither field was present in the input.
func (s *ScaleInfo) IsEmpty() bool {
	return s == nil || (s.DrawingScale == nil && s.GridMM == nil)
}

// StructuralElement is one placed element. Only the "type" field is
// interpreted; everything else passes through to the integrated record as-is.
type StructuralElement map[string]any

// Type returns the element's type string, or ("", false) when the field is
// absent or not a string.
func (e StructuralElement) Type() (string, bool) {
	t, ok := e["type"].(string)
	return t, ok
}

// TypeOrUnknown returns the element's type, substituting "unknown" for
// elements without one.
func (e StructuralElement) TypeOrUnknown() string {
	if t, ok := e.Type(); ok {
		return t
	}
	return constants.ElementUnknown
}

// Phase1Document is the metadata/grid/scale description of a floor-plan crop.
// Every field is optional; the document is read-only input.
type Phase1Document struct {
	CropID                any             `json:"crop_id"`
	OriginalPDF           any             `json:"original_pdf"`
	Floor                 any             `json:"floor"`
	GridDimensions        *GridDimensions `json:"grid_dimensions"`
	ScaleInfo             *ScaleInfo      `json:"scale_info"`
	BuildingContext       any             `json:"building_context"`
	GridModuleInfo        any             `json:"grid_module_info"`
	CropBoundsInOriginal  any             `json:"crop_bounds_in_original"`
	StructuralConstraints any             `json:"structural_constraints"`
	FloorRequirements     any             `json:"floor_requirements"`
	Timestamp             any             `json:"timestamp"`
}

// Phase2Document holds the placed structural elements for the same crop.
type Phase2Document struct {
	StructuralElements []StructuralElement `json:"structural_elements"`
	Zones              []any               `json:"zones"`
	StairInfo          []any               `json:"stair_info"`
	ValidationStatus   any                 `json:"validation_status"`
	AnnotationMetadata map[string]any      `json:"annotation_metadata"`
}

// Timestamps collects the creation times of both phases and of the
// integration itself.
type Timestamps struct {
	Phase1Created     any    `json:"phase1_created"`
	Phase2Created     any    `json:"phase2_created"`
	IntegratedCreated string `json:"integrated_created"`
}

// TrainingHints are derived statistics used to condition or caption
// generative-model training examples.
type TrainingHints struct {
	TotalAreaGrids     int                                 `json:"total_area_grids"`
	HasEntrance        bool                                `json:"has_entrance"`
	HasStair           bool                                `json:"has_stair"`
	HasBalcony         bool                                `json:"has_balcony"`
	ElementCounts      *orderedmap.OrderedMap[string, int] `json:"element_counts"`
	EstimatedRoomCount int                                 `json:"estimated_room_count"`
}

// IntegratedRecord is the merged output for one phase pair. Field order here
// is the serialization order of the output file. Created once per pair and
// never mutated after writing.
type IntegratedRecord struct {
	CropID                any                 `json:"crop_id"`
	OriginalPDF           any                 `json:"original_pdf"`
	Floor                 any                 `json:"floor"`
	GridDimensions        *GridDimensions     `json:"grid_dimensions"`
	ScaleInfo             *ScaleInfo          `json:"scale_info"`
	BuildingContext       any                 `json:"building_context"`
	GridModuleInfo        any                 `json:"grid_module_info"`
	CropBoundsInOriginal  any                 `json:"crop_bounds_in_original"`
	StructuralConstraints any                 `json:"structural_constraints"`
	FloorRequirements     any                 `json:"floor_requirements"`
	StructuralElements    []StructuralElement `json:"structural_elements"`
	Zones                 []any               `json:"zones"`
	StairInfo             []any               `json:"stair_info"`
	ValidationStatus      any                 `json:"validation_status"`
	Timestamps            Timestamps          `json:"timestamps"`
	MetadataVersion       string              `json:"metadata_version"`
	AnnotationMetadata    map[string]any      `json:"annotation_metadata"`
	TrainingHints         *TrainingHints      `json:"training_hints"`
	GeneratedPrompt       string              `json:"generated_prompt,omitempty"`
}
