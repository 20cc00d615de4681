package merge

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/joseph-ayodele/plan-merger/constants"
	"github.com/joseph-ayodele/plan-merger/internal/entity"
)

// CalculateTrainingHints derives summary statistics from the grid dimensions
// and the placed elements. Pure function; absent inputs degrade to zeroes and
// empty tallies.
func CalculateTrainingHints(grid *entity.GridDimensions, elements []entity.StructuralElement) *entity.TrainingHints {
	w, h := gridDims(grid)
	hints := &entity.TrainingHints{
		TotalAreaGrids: intOr(w, 0) * intOr(h, 0),
		ElementCounts:  orderedmap.New[string, int](),
	}

	for _, el := range elements {
		switch t, _ := el.Type(); t {
		case constants.ElementEntrance:
			hints.HasEntrance = true
		case constants.ElementStair:
			hints.HasStair = true
		case constants.ElementBalcony:
			hints.HasBalcony = true
		}
		// Tally keys keep first-encounter order for the prompt generator.
		key := el.TypeOrUnknown()
		count, _ := hints.ElementCounts.Get(key)
		hints.ElementCounts.Set(key, count+1)
	}

	hints.EstimatedRoomCount = EstimateRoomCount(elements, grid)
	return hints
}

// EstimateRoomCount estimates the number of rooms from the element placement.
// Always at least 3: one combined living/dining/kitchen, at least one
// bedroom, one wet area.
func EstimateRoomCount(elements []entity.StructuralElement, grid *entity.GridDimensions) int {
	baseRooms := 1 // LDK

	balconyCount := 0
	for _, el := range elements {
		if t, _ := el.Type(); t == constants.ElementBalcony {
			balconyCount++
		}
	}
	bedroomEstimate := max(1, balconyCount)

	// The overall scale check substitutes 6x10 for absent dimensions, unlike
	// the zero default used for total_area_grids. Kept as-is: unifying the
	// two would change observable output.
	w, h := gridDims(grid)
	totalGrids := intOr(w, 6) * intOr(h, 10)
	if totalGrids > 80 {
		bedroomEstimate++
	}

	wetAreas := 1 // at least one bath/toilet
	return baseRooms + bedroomEstimate + wetAreas
}

func gridDims(grid *entity.GridDimensions) (w, h *int) {
	if grid == nil {
		return nil, nil
	}
	return grid.WidthGrids, grid.HeightGrids
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
