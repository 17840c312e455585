package antimeridian

import "math"

// DefaultPrecision is the number of decimal digits kept on output coordinates
const DefaultPrecision = 6

// RoundValue rounds a coordinate value to the given number of decimal digits
// using round-half-to-even semantics. Rounding an already-rounded value at the
// same precision is a no-op.
func RoundValue(value float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.RoundToEven(value*scale) / scale
}

// RoundRing rounds every coordinate of a ring in place and returns it. Closure
// is preserved: identical first and last vertices round identically.
func RoundRing(ring [][]float64, precision int) [][]float64 {
	for _, vertex := range ring {
		vertex[0] = RoundValue(vertex[0], precision)
		vertex[1] = RoundValue(vertex[1], precision)
	}
	return ring
}

// RoundPolygon rounds every ring of a polygon in place and returns it
func RoundPolygon(coordinates [][][]float64, precision int) [][][]float64 {
	for _, ring := range coordinates {
		RoundRing(ring, precision)
	}
	return coordinates
}

// RoundMultiPolygon rounds every polygon of a multi-polygon in place and returns it
func RoundMultiPolygon(coordinates [][][][]float64, precision int) [][][][]float64 {
	for _, polygon := range coordinates {
		RoundPolygon(polygon, precision)
	}
	return coordinates
}

// Bbox computes the axis-aligned bounding box [minlon, minlat, maxlon, maxlat]
// over the given rings
func Bbox(rings ...[][]float64) []float64 {
	minLon, minLat := math.Inf(1), math.Inf(1)
	maxLon, maxLat := math.Inf(-1), math.Inf(-1)
	for _, ring := range rings {
		for _, vertex := range ring {
			minLon = math.Min(minLon, vertex[0])
			minLat = math.Min(minLat, vertex[1])
			maxLon = math.Max(maxLon, vertex[0])
			maxLat = math.Max(maxLat, vertex[1])
		}
	}
	return []float64{minLon, minLat, maxLon, maxLat}
}
