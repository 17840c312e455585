package footprint

import (
	"errors"
	"fmt"
	"math"

	"github.com/venicegeo/geojson-go/geojson"
)

// ExteriorRing recovers the primary exterior ring from a parsed GeoJSON
// geometry. Footprints published pre-split at the antimeridian arrive as
// MultiPolygons; those yield the exterior ring of their largest part.
func ExteriorRing(geometry interface{}) ([][]float64, error) {
	switch geom := geometry.(type) {
	case *geojson.Polygon:
		if len(geom.Coordinates) == 0 || len(geom.Coordinates[0]) == 0 {
			return nil, errors.New("polygon footprint has no exterior ring")
		}
		return geom.Coordinates[0], nil
	case *geojson.MultiPolygon:
		var largest [][]float64
		var largestArea float64
		for _, polygon := range geom.Coordinates {
			if len(polygon) == 0 || len(polygon[0]) == 0 {
				continue
			}
			area := math.Abs(ringArea(polygon[0]))
			if largest == nil || area > largestArea {
				largest = polygon[0]
				largestArea = area
			}
		}
		if largest == nil {
			return nil, errors.New("multi-polygon footprint has no exterior rings")
		}
		return largest, nil
	}
	return nil, fmt.Errorf("unsupported footprint geometry type %T", geometry)
}

func ringArea(ring [][]float64) float64 {
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	return sum / 2
}
