package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
	"github.com/venicegeo/landsat-stac-gen/util"
)

// ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func(util.LogContext) (*sql.DB, error)

const upsertFootprintStatement = `
INSERT INTO public.footprints as f (
	product_id,
	acquisition_date,
	cloud_cover,
	scene_url,
	footprint,
	bbox)
VALUES
(
	$1,
	$2,
	$3,
	$4,
	ST_SetSRID(ST_GeomFromGeoJSON($5), 4326),
	$6
)
	ON CONFLICT (product_id) DO UPDATE
	SET acquisition_date = $2,
		cloud_cover = $3,
		scene_url = $4,
		footprint = ST_SetSRID(ST_GeomFromGeoJSON($5), 4326),
		bbox = $6
	`

const databaseMaintenanceStatement = `
	VACUUM ANALYZE public.footprints
`

func scanFootprintRow(rows *sql.Rows) (*FootprintRecord, error) {
	var footprintBytes, bboxBytes []byte
	record := FootprintRecord{}

	err := rows.Scan(&record.ProductID, &record.AcquisitionDate, &record.CloudCover, &record.SceneURLString, &footprintBytes, &bboxBytes)
	if err != nil {
		return nil, err
	}

	record.Footprint, err = geojson.Parse(footprintBytes)
	if err != nil {
		return nil, err
	}
	if len(bboxBytes) > 0 {
		if err = json.Unmarshal(bboxBytes, &record.Bbox); err != nil {
			return nil, err
		}
	}

	return &record, nil
}

// GetFootprintByID retrieves a single indexed footprint record
func GetFootprintByID(tx *sql.Tx, productID string) (*FootprintRecord, error) {
	rows, err := tx.Query(`
		SELECT product_id, acquisition_date, cloud_cover, scene_url, ST_AsGeoJSON(footprint), bbox
		FROM public.footprints
		WHERE product_id=$1
		LIMIT 1`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, sql.ErrNoRows
	}

	return scanFootprintRow(rows)
}

// SearchFootprints retrieves indexed footprints intersecting the given
// bounding box, filtered by maximum cloud cover percentage and an
// acquisition date window
func SearchFootprints(tx *sql.Tx, bbox geojson.BoundingBox, maxCloudCover float64, minAcquiredDate time.Time, maxAcquiredDate time.Time) ([]FootprintRecord, error) {
	rows, err := tx.Query(`
		SELECT product_id, acquisition_date, cloud_cover, scene_url, ST_AsGeoJSON(footprint), bbox
		FROM public.footprints
		WHERE footprint && ST_MakeEnvelope($1, $2, $3, $4, 4326)
		AND cloud_cover <= $5
		AND acquisition_date BETWEEN $6 AND $7
		ORDER BY acquisition_date DESC
		LIMIT 100`,
		bbox[0], bbox[1], bbox[2], bbox[3], maxCloudCover, minAcquiredDate, maxAcquiredDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []FootprintRecord{}
	for rows.Next() {
		record, err := scanFootprintRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// UpsertFootprint inserts or updates an indexed footprint record
func UpsertFootprint(tx *sql.Tx, record *FootprintRecord) error {
	footprintBytes, err := json.Marshal(record.Footprint)
	if err != nil {
		return err
	}
	var bboxBytes []byte
	if len(record.Bbox) > 0 {
		if bboxBytes, err = json.Marshal(record.Bbox); err != nil {
			return err
		}
	}

	_, err = tx.Exec(upsertFootprintStatement,
		record.ProductID, record.AcquisitionDate, record.CloudCover, record.SceneURLString, footprintBytes, bboxBytes)
	return err
}
