package stacindex

import (
	"database/sql"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
	"github.com/venicegeo/landsat-stac-gen/model"
	"github.com/venicegeo/landsat-stac-gen/stacindex/db"
)

func sceneItemResultFromRecord(record db.FootprintRecord) (model.SceneItemResult, error) {
	result := model.SceneItemResult{
		BasicSceneResult: model.BasicSceneResult{
			ID:           record.ProductID,
			Geometry:     record.Footprint,
			Bbox:         record.Bbox,
			CloudCover:   record.CloudCover,
			AcquiredDate: record.AcquisitionDate,
			Platform:     "landsat-8",
			Instruments:  []string{"oli", "tirs"},
			SceneURL:     record.SceneURLString,
		},
		FootprintProvenance: &model.FootprintProvenance{Source: StorageSource{}.Name()},
	}

	if record.SceneURLString != "" {
		assets, err := model.NewLandsatBandAssets(record.SceneURLString, record.ProductID)
		if err != nil {
			return result, err
		}
		result.LandsatBandAssets = assets
	}

	return result, nil
}

func discoverFootprints(tx *sql.Tx, bbox geojson.BoundingBox, maxCloudCover float64,
	minAcquiredDate time.Time, maxAcquiredDate time.Time) (model.GeoJSONFeatureCollectionCreator, error) {
	records, err := db.SearchFootprints(tx, bbox, maxCloudCover, minAcquiredDate, maxAcquiredDate)
	if err != nil {
		return nil, err
	}

	multiResult := model.MultiSceneResult{
		FeatureCreators: make([]model.GeoJSONFeatureCreator, len(records)),
	}
	for i, record := range records {
		if multiResult.FeatureCreators[i], err = sceneItemResultFromRecord(record); err != nil {
			return nil, err
		}
	}

	return multiResult, nil
}
