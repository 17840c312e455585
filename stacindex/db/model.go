package db

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// FootprintRecord is one indexed scene footprint
type FootprintRecord struct {
	ProductID       string
	AcquisitionDate time.Time
	CloudCover      float64
	SceneURLString  string
	Footprint       interface{}
	Bbox            geojson.BoundingBox
}
