package stacindex

import (
	"database/sql"

	"github.com/venicegeo/landsat-stac-gen/footprint"
	"github.com/venicegeo/landsat-stac-gen/stacindex/db"
)

// StorageSource serves footprints out of the local index database. It
// implements the footprint.Source interface so it can sit ahead of the remote
// sources in a resolver chain.
type StorageSource struct {
	DB *sql.DB
}

// Name implements the Source interface
func (s StorageSource) Name() string {
	return "footprint-index"
}

// Footprint implements the Source interface. A scene missing from the index
// is reported as unavailable, not as an error.
func (s StorageSource) Footprint(ctx *footprint.Context, scene footprint.SceneRef) ([][]float64, error) {
	if s.DB == nil {
		return nil, footprint.ErrFootprintUnavailable
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Commit()

	record, err := db.GetFootprintByID(tx, scene.ID)
	if err == sql.ErrNoRows {
		return nil, footprint.ErrFootprintUnavailable
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	return footprint.ExteriorRing(record.Footprint)
}
