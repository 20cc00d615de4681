package merge

import (
	"testing"

	"github.com/joseph-ayodele/plan-merger/internal/entity"
)

func intp(v int) *int { return &v }

func grid(w, h int) *entity.GridDimensions {
	return &entity.GridDimensions{WidthGrids: intp(w), HeightGrids: intp(h)}
}

func elementsOf(types ...string) []entity.StructuralElement {
	els := make([]entity.StructuralElement, 0, len(types))
	for _, t := range types {
		els = append(els, entity.StructuralElement{"type": t})
	}
	return els
}

func TestTrainingHintsBasics(t *testing.T) {
	hints := CalculateTrainingHints(grid(6, 10), elementsOf("entrance", "wall", "stair", "wall"))

	if hints.TotalAreaGrids != 60 {
		t.Fatalf("expected area 60, got %d", hints.TotalAreaGrids)
	}
	if !hints.HasEntrance || !hints.HasStair || hints.HasBalcony {
		t.Fatalf("unexpected presence flags: %+v", hints)
	}
	if c, _ := hints.ElementCounts.Get("wall"); c != 2 {
		t.Fatalf("expected 2 walls, got %d", c)
	}
	if hints.EstimatedRoomCount != 3 {
		t.Fatalf("expected 3 rooms, got %d", hints.EstimatedRoomCount)
	}
}

func TestTrainingHintsAreaDefaultsToZero(t *testing.T) {
	hints := CalculateTrainingHints(nil, nil)
	if hints.TotalAreaGrids != 0 {
		t.Fatalf("expected area 0 for missing grid, got %d", hints.TotalAreaGrids)
	}
	if hints.ElementCounts.Len() != 0 {
		t.Fatalf("expected empty counts, got %d entries", hints.ElementCounts.Len())
	}

	partial := &entity.GridDimensions{WidthGrids: intp(7)}
	if got := CalculateTrainingHints(partial, nil).TotalAreaGrids; got != 0 {
		t.Fatalf("expected area 0 for partial grid, got %d", got)
	}
}

func TestTrainingHintsElementCountOrder(t *testing.T) {
	hints := CalculateTrainingHints(grid(6, 10), []entity.StructuralElement{
		{"type": "wall"},
		{"type": "entrance"},
		{"note": "no type"},
		{"type": "wall"},
	})

	var keys []string
	for p := hints.ElementCounts.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	want := []string{"wall", "entrance", "unknown"}
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestEstimateRoomCountBalconyMonotonic(t *testing.T) {
	g := grid(6, 10) // 60 grids, below the scale threshold
	cases := []struct {
		balconies int
		want      int
	}{
		{0, 3}, // 1 LDK + max(1,0) bedrooms + 1 wet area
		{1, 3},
		{2, 4},
		{3, 5},
		{4, 6}, // no cap
	}
	for _, tc := range cases {
		types := make([]string, tc.balconies)
		for i := range types {
			types[i] = "balcony"
		}
		if got := EstimateRoomCount(elementsOf(types...), g); got != tc.want {
			t.Fatalf("balconies=%d: expected %d rooms, got %d", tc.balconies, tc.want, got)
		}
	}
}

func TestEstimateRoomCountAreaThreshold(t *testing.T) {
	if got := EstimateRoomCount(nil, grid(8, 10)); got != 3 {
		t.Fatalf("80 grids is not above threshold, expected 3, got %d", got)
	}
	if got := EstimateRoomCount(nil, grid(9, 10)); got != 4 {
		t.Fatalf("90 grids is above threshold, expected 4, got %d", got)
	}
}

func TestEstimateRoomCountMissingGridDefaults(t *testing.T) {
	// Missing dimensions default to 6x10 here, not 0x0.
	if got := EstimateRoomCount(nil, nil); got != 3 {
		t.Fatalf("expected 3 rooms for missing grid, got %d", got)
	}
	partial := &entity.GridDimensions{WidthGrids: intp(9)}
	if got := EstimateRoomCount(nil, partial); got != 4 {
		t.Fatalf("9x10 (height defaulted) crosses the threshold, expected 4, got %d", got)
	}
}
