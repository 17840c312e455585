package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

var sceneListHeader = []string{
	"productId", "entityId", "acquisitionDate", "cloudCover", "processingLevel",
	"path", "row", "min_lat", "min_lon", "max_lat", "max_lon", "download_url",
}

func sceneListValues(t *testing.T, row []string) map[string]string {
	colMap, err := newColumnMap(sceneListColumns, sceneListHeader)
	assert.Nil(t, err)

	valueMap := colMap.CreateValueMap()
	colMap.UpdateMap(row, valueMap)
	return valueMap
}

func TestFootprintRecordFromSceneListValues(t *testing.T) {
	// Mock
	values := sceneListValues(t, []string{
		"LC08_L1TP_149039_20170411_20170415_01_T1", "LC81490392017101LGN00",
		"2017-04-11 05:36:29.349932", "0.0", "L1TP",
		"149", "39", "29.22165", "72.41205", "31.34742", "74.84666",
		"https://s3-us-west-2.amazonaws.com/landsat-pds/c1/L8/149/039/LC08_L1TP_149039_20170411_20170415_01_T1/index.html",
	})

	// Tested code
	record, err := footprintRecordFromSceneListValues(values)

	// Asserts
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "LC08_L1TP_149039_20170411_20170415_01_T1", record.ProductID)
	assert.Equal(t, time.Date(2017, 4, 11, 5, 36, 29, 349932000, time.UTC), record.AcquisitionDate)
	assert.Equal(t, 0.0, record.CloudCover)

	polygon, ok := record.Footprint.(*geojson.Polygon)
	assert.True(t, ok, "expected a Polygon footprint, got %T", record.Footprint)
	assert.Len(t, polygon.Coordinates[0], 5)
	assert.Equal(t, polygon.Coordinates[0][0], polygon.Coordinates[0][4], "footprint ring is not closed")
	assert.Equal(t, geojson.BoundingBox{72.41205, 29.22165, 74.84666, 31.34742}, record.Bbox)
}

func TestFootprintRecordFromSceneListValues_AntimeridianBox(t *testing.T) {
	// A box straddling the antimeridian arrives with min_lon and max_lon on
	// opposite signs, describing a near-global extent unless repaired
	values := sceneListValues(t, []string{
		"LC08_L1TP_115022_20201206_20210313_01_T1", "LC81150222020341LGN00",
		"2020-12-06 01:23:45.000000", "12.5", "L1TP",
		"115", "22", "50.62805", "179.96672", "52.75050", "-177.89334",
		"https://s3-us-west-2.amazonaws.com/landsat-pds/c1/L8/115/022/LC08_L1TP_115022_20201206_20210313_01_T1/index.html",
	})

	// Tested code
	record, err := footprintRecordFromSceneListValues(values)

	// Asserts
	assert.Nil(t, err, "%v", err)
	polygon := record.Footprint.(*geojson.Polygon)

	sign := 0
	for _, vertex := range polygon.Coordinates[0] {
		if vertex[0] > 0 {
			assert.NotEqual(t, -1, sign, "repaired ring still has mixed-sign longitudes")
			sign = 1
		} else if vertex[0] < 0 {
			assert.NotEqual(t, 1, sign, "repaired ring still has mixed-sign longitudes")
			sign = -1
		}
	}
	assert.True(t, record.Bbox[2]-record.Bbox[0] <= 180, "repaired bbox still spans most of the globe")
}

func TestFootprintRecordFromSceneListValues_BadValues(t *testing.T) {
	values := sceneListValues(t, []string{
		"LC08_L1TP_149039_20170411_20170415_01_T1", "LC81490392017101LGN00",
		"not-a-date", "0.0", "L1TP",
		"149", "39", "29.22165", "72.41205", "31.34742", "74.84666", "",
	})
	_, err := footprintRecordFromSceneListValues(values)
	assert.NotNil(t, err, "expected an unparseable acquisition date to fail")

	values = sceneListValues(t, []string{
		"LC08_L1TP_149039_20170411_20170415_01_T1", "LC81490392017101LGN00",
		"2017-04-11 05:36:29.349932", "0.0", "L1TP",
		"149", "39", "29.22165", "not-a-number", "31.34742", "74.84666", "",
	})
	_, err = footprintRecordFromSceneListValues(values)
	assert.NotNil(t, err, "expected an unparseable longitude to fail")
}

func TestNewColumnMap_MissingColumn(t *testing.T) {
	_, err := newColumnMap(sceneListColumns, []string{"productId", "acquisitionDate"})
	assert.NotNil(t, err)
}
