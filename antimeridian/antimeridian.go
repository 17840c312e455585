// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package antimeridian corrects scene footprint rings that wrap across the
// ±180° longitude line. It operates on plain [lon, lat] vertex slices so it
// stays independent of any particular GeoJSON model.
package antimeridian

import (
	"fmt"
	"math"
)

// Advisory codes for recoverable events reported alongside a result
const (
	WindingCorrected   = "WINDING_CORRECTED"
	StrategyDeprecated = "STRATEGY_DEPRECATED"
)

// Advisory is a warning-class event. It never aborts processing; callers log
// it and carry on.
type Advisory struct {
	Code    string
	Message string
}

// InputShapeError reports a ring that cannot be processed at all
type InputShapeError struct {
	Reason string
}

func (e InputShapeError) Error() string {
	return "invalid footprint ring: " + e.Reason
}

func validateRing(ring [][]float64) error {
	if len(ring) < 4 {
		return InputShapeError{Reason: fmt.Sprintf("need at least 4 vertices, got %d", len(ring))}
	}
	for i, vertex := range ring {
		if len(vertex) < 2 {
			return InputShapeError{Reason: fmt.Sprintf("vertex %d has fewer than 2 coordinates", i)}
		}
	}
	first := ring[0]
	last := ring[len(ring)-1]
	if first[0] != last[0] || first[1] != last[1] {
		return InputShapeError{Reason: "ring is not closed"}
	}
	return nil
}

// Crosses reports whether any pair of consecutive vertices implies a jump of
// more than 180° of longitude, the signature of an antimeridian crossing
func Crosses(ring [][]float64) bool {
	for i := 1; i < len(ring); i++ {
		if math.Abs(ring[i][0]-ring[i-1][0]) > 180 {
			return true
		}
	}
	return false
}

func cloneRing(ring [][]float64) [][]float64 {
	out := make([][]float64, len(ring))
	for i, vertex := range ring {
		out[i] = []float64{vertex[0], vertex[1]}
	}
	return out
}

// signedArea is the shoelace sum over a closed ring; positive means the ring
// winds counter-clockwise
func signedArea(ring [][]float64) float64 {
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	return sum / 2
}

// orient makes an exterior ring counter-clockwise, reversing it in place if
// needed and reporting the correction
func orient(ring [][]float64) ([][]float64, []Advisory) {
	if signedArea(ring) >= 0 {
		return ring, nil
	}
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
	return ring, []Advisory{{Code: WindingCorrected, Message: "exterior ring was wound clockwise; reversed"}}
}

// Normalize shifts longitudes by ±360° so a crossing ring becomes one
// contiguous polygon whose longitudes all share a sign. The side needing fewer
// shifts wins; ties go to the non-positive side. Rings that do not cross, such
// as footprints already split at the meridian, pass through untouched apart
// from winding correction.
func Normalize(ring [][]float64) ([][]float64, []Advisory, error) {
	if err := validateRing(ring); err != nil {
		return nil, nil, err
	}
	out := cloneRing(ring)
	if Crosses(out) {
		negative, positive := 0, 0
		for _, vertex := range out[:len(out)-1] {
			if vertex[0] < 0 {
				negative++
			} else {
				positive++
			}
		}
		if negative >= positive {
			for _, vertex := range out {
				if vertex[0] > 0 {
					vertex[0] -= 360
				}
			}
		} else {
			for _, vertex := range out {
				if vertex[0] < 0 {
					vertex[0] += 360
				}
			}
		}
	}
	out, advisories := orient(out)
	return out, advisories, nil
}

type boundaryPoint struct {
	lon, lat float64
	cut      bool
}

// Split cuts a crossing ring along the ±180° meridian, interpolating vertex
// latitudes at the cut line. The result is always MultiPolygon-shaped: a ring
// with no crossing comes back as the single part, so pre-split input is
// tolerated. No output part spans more than 180° of longitude.
func Split(ring [][]float64) ([][][]float64, []Advisory, error) {
	if err := validateRing(ring); err != nil {
		return nil, nil, err
	}
	if !Crosses(ring) {
		part, advisories := orient(cloneRing(ring))
		return [][][]float64{part}, advisories, nil
	}

	// Unwrap into a continuous 0..360 longitude domain so the cut line sits
	// at exactly 180
	open := cloneRing(ring)[:len(ring)-1]
	for _, vertex := range open {
		if vertex[0] < 0 {
			vertex[0] += 360
		}
	}

	points := make([]boundaryPoint, 0, len(open)+2)
	for i := range open {
		a := open[i]
		b := open[(i+1)%len(open)]
		points = append(points, boundaryPoint{lon: a[0], lat: a[1], cut: a[0] == 180})
		if (a[0] < 180) != (b[0] < 180) && a[0] != 180 && b[0] != 180 {
			t := (180 - a[0]) / (b[0] - a[0])
			points = append(points, boundaryPoint{lon: 180, lat: a[1] + t*(b[1]-a[1]), cut: true})
		}
	}

	firstCut := -1
	for i, p := range points {
		if p.cut {
			firstCut = i
			break
		}
	}
	if firstCut < 0 {
		part, advisories := orient(cloneRing(ring))
		return [][][]float64{part}, advisories, nil
	}
	rotated := append(append([]boundaryPoint{}, points[firstCut:]...), points[:firstCut]...)

	cutIndexes := []int{}
	for i, p := range rotated {
		if p.cut {
			cutIndexes = append(cutIndexes, i)
		}
	}
	cutIndexes = append(cutIndexes, len(rotated))

	var parts [][][]float64
	var advisories []Advisory
	for c := 0; c+1 < len(cutIndexes); c++ {
		start := cutIndexes[c]
		end := cutIndexes[c+1]
		var chain []boundaryPoint
		if end == len(rotated) {
			// Final chain closes through the starting cut point
			chain = append(append([]boundaryPoint{}, rotated[start:]...), rotated[0])
		} else {
			chain = rotated[start : end+1]
		}
		if len(chain) < 3 {
			continue
		}

		west := false
		for _, p := range chain {
			if !p.cut && p.lon > 180 {
				west = true
				break
			}
		}

		part := make([][]float64, 0, len(chain)+1)
		for _, p := range chain {
			lon := p.lon
			if west {
				lon -= 360
			}
			part = append(part, []float64{lon, p.lat})
		}
		part = append(part, []float64{part[0][0], part[0][1]})

		oriented, partAdvisories := orient(part)
		parts = append(parts, oriented)
		advisories = append(advisories, partAdvisories...)
	}

	return parts, advisories, nil
}
