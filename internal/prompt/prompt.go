// Package prompt renders comma-separated training tags from an integrated
// record. Token order is fixed so identical records always produce identical
// prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/plan-merger/internal/entity"
)

const (
	defaultDrawingScale = "1:100"
	defaultGridMM       = 910
)

// Fixed trailing tags on every prompt.
var baseTags = []string{"japanese_house", "architectural_plan", "910mm_grid"}

// Generate builds the training prompt for a record. Never fails; absent
// fields simply contribute no tokens.
func Generate(rec *entity.IntegratedRecord) string {
	var parts []string

	if gd := rec.GridDimensions; !gd.IsEmpty() {
		parts = append(parts, "grid_"+gd.Resolution())
	}

	if truthy(rec.Floor) {
		parts = append(parts, fmt.Sprintf("floor_%v", rec.Floor))
	}

	if si := rec.ScaleInfo; !si.IsEmpty() {
		scale := defaultDrawingScale
		if si.DrawingScale != nil {
			scale = *si.DrawingScale
		}
		var mm any = defaultGridMM
		if si.GridMM != nil {
			mm = *si.GridMM
		}
		parts = append(parts, "scale_"+scale, fmt.Sprintf("module_%vmm", mm))
	}

	if hints := rec.TrainingHints; hints != nil {
		for p := hints.ElementCounts.Oldest(); p != nil; p = p.Next() {
			parts = append(parts, fmt.Sprintf("%s_%d", p.Key, p.Value))
		}
		if hints.EstimatedRoomCount > 0 {
			parts = append(parts, fmt.Sprintf("rooms_%d", hints.EstimatedRoomCount))
		}
	}

	parts = append(parts, baseTags...)
	return strings.Join(parts, ", ")
}

// truthy mirrors the permissive field model: nil, empty strings, zero
// numbers, false and empty containers contribute no token.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case map[string]any:
		return len(t) != 0
	case []any:
		return len(t) != 0
	default:
		return true
	}
}
