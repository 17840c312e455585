package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

// General test mocks and utils

var mockPolygon = geojson.NewPolygon([][][]float64{[][]float64{
	[]float64{30, 10}, []float64{40, 40}, []float64{20, 40}, []float64{10, 20}, []float64{30, 10},
}})

var mockBasicSceneResult = BasicSceneResult{
	ID:           "LC08_L2SP_012345_20201204_20210313_02_SR",
	Geometry:     mockPolygon,
	CloudCover:   50.123,
	AcquiredDate: time.Unix(123, 0).UTC(),
	Platform:     "landsat-8",
	Instruments:  []string{"oli", "tirs"},
	SceneURL:     "https://s3.example.localdomain/landsat/scene/",
}

var mockFootprintProvenance = FootprintProvenance{
	Source:      "usgs-stac-api",
	Corrections: []string{"WINDING_CORRECTED"},
}

func assertFeatureContainsBasicSceneResult(t *testing.T, feature *geojson.Feature, result BasicSceneResult) {
	assert.Equal(t, result.ID, feature.IDStr())
	assert.Equal(t, StacVersion, feature.PropertyString("stac_version"))
	assert.Equal(t, result.AcquiredDate.Format(SceneTimeFormat), feature.PropertyString("datetime"))
	assert.Equal(t, result.CloudCover, feature.PropertyFloat("eo:cloud_cover"))
	assert.Equal(t, result.Platform, feature.PropertyString("platform"))
	assert.Equal(t, result.Instruments, feature.Properties["instruments"])
}

func assertFeatureContainsBandAssets(t *testing.T, feature *geojson.Feature, assets LandsatBandAssets) {
	assert.IsType(t, map[string]map[string]string{}, feature.Properties["assets"])
	featureAssets := feature.Properties["assets"].(map[string]map[string]string)

	assert.Equal(t, assets.Coastal.String(), featureAssets["coastal"]["href"])
	assert.Equal(t, assets.Blue.String(), featureAssets["blue"]["href"])
	assert.Equal(t, assets.Green.String(), featureAssets["green"]["href"])
	assert.Equal(t, assets.Red.String(), featureAssets["red"]["href"])
	assert.Equal(t, assets.NIR.String(), featureAssets["nir"]["href"])
	assert.Equal(t, assets.SWIR1.String(), featureAssets["swir1"]["href"])
	assert.Equal(t, assets.SWIR2.String(), featureAssets["swir2"]["href"])
	assert.Equal(t, assets.Panchromatic.String(), featureAssets["panchromatic"]["href"])
	assert.Equal(t, assets.Cirrus.String(), featureAssets["cirrus"]["href"])
	assert.Equal(t, assets.TIRS1.String(), featureAssets["tirs1"]["href"])
	assert.Equal(t, assets.TIRS2.String(), featureAssets["tirs2"]["href"])
}

func assertFeatureContainsProvenance(t *testing.T, feature *geojson.Feature, provenance FootprintProvenance) {
	assert.Equal(t, provenance.Source, feature.PropertyString("footprint:source"))
	assert.Equal(t, provenance.Corrections, feature.Properties["footprint:corrections"])
}

func mockBandAssets(t *testing.T) *LandsatBandAssets {
	assets, err := NewLandsatBandAssets(mockBasicSceneResult.SceneURL, mockBasicSceneResult.ID)
	assert.Nil(t, err)
	return assets
}

// Actual tests

func TestBasicSceneResult_GeoJSONFeature(t *testing.T) {
	// Mock
	result := mockBasicSceneResult

	// Tested code
	feature, err := result.GeoJSONFeature()

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, feature)
	assertFeatureContainsBasicSceneResult(t, feature, mockBasicSceneResult)
	assert.Nil(t, feature.Bbox.Valid())
}

func TestBasicSceneResult_GeoJSONFeature_ExplicitBbox(t *testing.T) {
	// Mock
	result := mockBasicSceneResult
	result.Bbox = geojson.BoundingBox{178.5, 50.1, -179.2, 52.8}

	// Tested code
	feature, err := result.GeoJSONFeature()

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, feature)
	assert.Equal(t, result.Bbox, feature.Bbox, "explicit bbox was overwritten by a computed one")
}

func TestSceneItemResult_GeoJSONFeature_NoMixins(t *testing.T) {
	// Mock
	result := SceneItemResult{BasicSceneResult: mockBasicSceneResult}

	// Tested code
	feature, err := result.GeoJSONFeature()

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, feature)
	assertFeatureContainsBasicSceneResult(t, feature, mockBasicSceneResult)
	assert.Nil(t, feature.Properties["assets"])
	assert.Empty(t, feature.PropertyString("footprint:source"))
	assert.Nil(t, feature.Bbox.Valid())
}

func TestSceneItemResult_GeoJSONFeature_WithAssets(t *testing.T) {
	// Mock
	assets := mockBandAssets(t)
	result := SceneItemResult{
		BasicSceneResult:  mockBasicSceneResult,
		LandsatBandAssets: assets,
	}

	// Tested code
	feature, err := result.GeoJSONFeature()

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, feature)
	assertFeatureContainsBasicSceneResult(t, feature, mockBasicSceneResult)
	assertFeatureContainsBandAssets(t, feature, *assets)
	assert.Nil(t, feature.Bbox.Valid())
}

func TestSceneItemResult_GeoJSONFeature_WithProvenance(t *testing.T) {
	// Mock
	assets := mockBandAssets(t)
	result := SceneItemResult{
		BasicSceneResult:    mockBasicSceneResult,
		LandsatBandAssets:   assets,
		FootprintProvenance: &mockFootprintProvenance,
	}

	// Tested code
	feature, err := result.GeoJSONFeature()

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, feature)
	assertFeatureContainsBasicSceneResult(t, feature, mockBasicSceneResult)
	assertFeatureContainsBandAssets(t, feature, *assets)
	assertFeatureContainsProvenance(t, feature, mockFootprintProvenance)
	assert.Nil(t, feature.Bbox.Valid())
}

func TestMultiSceneResult_GeoJSONFeatureCollection(t *testing.T) {
	// Mock
	result := MultiSceneResult{
		FeatureCreators: []GeoJSONFeatureCreator{mockBasicSceneResult, mockBasicSceneResult, mockBasicSceneResult},
	}

	// Tested code
	fc, err := result.GeoJSONFeatureCollection()

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, fc)
	assert.Len(t, fc.Features, 3)
	for _, feature := range fc.Features {
		assertFeatureContainsBasicSceneResult(t, feature, mockBasicSceneResult)
	}
}
