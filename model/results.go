package model

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// BasicSceneResult holds the fields common to all generated scene items
type BasicSceneResult struct {
	ID           string
	Geometry     interface{}
	Bbox         geojson.BoundingBox
	CloudCover   float64
	AcquiredDate time.Time
	Platform     string
	Instruments  []string
	SceneURL     string
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (sr BasicSceneResult) GeoJSONFeature() (*geojson.Feature, error) {
	f := geojson.NewFeature(sr.Geometry, sr.ID, map[string]interface{}{
		"stac_version":   StacVersion,
		"datetime":       sr.AcquiredDate.Format(SceneTimeFormat),
		"eo:cloud_cover": sr.CloudCover,
		"platform":       sr.Platform,
		"instruments":    sr.Instruments,
	})
	if len(sr.Bbox) > 0 {
		f.Bbox = sr.Bbox
	} else {
		f.Bbox = f.ForceBbox()
	}
	return f, nil
}

// SceneItemResult is a full STAC item result: basic scene data, plus band
// asset links and footprint provenance where available
type SceneItemResult struct {
	BasicSceneResult
	*LandsatBandAssets
	*FootprintProvenance
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (result SceneItemResult) GeoJSONFeature() (*geojson.Feature, error) {
	feature, err := result.BasicSceneResult.GeoJSONFeature()
	if err != nil {
		return nil, err
	}

	if result.LandsatBandAssets != nil {
		err = result.LandsatBandAssets.Apply(feature)
		if err != nil {
			return nil, err
		}
	}

	if result.FootprintProvenance != nil {
		err = result.FootprintProvenance.Apply(feature)
		if err != nil {
			return nil, err
		}
	}

	return feature, nil
}

// MultiSceneResult is a container type for bundling multiple results together,
// e.g. as results from a search endpoint
type MultiSceneResult struct {
	FeatureCreators []GeoJSONFeatureCreator
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (result MultiSceneResult) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(result.FeatureCreators))
	for i, creator := range result.FeatureCreators {
		features[i], err = creator.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
