package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00002, Down00002)
}

// Up00002 adds a column holding the item bounding box as written into
// generated STAC items, which may differ from the geometry envelope after an
// antimeridian correction
func Up00002(tx *sql.Tx) error {
	_, err := tx.Exec(`ALTER TABLE public.footprints ADD COLUMN bbox json;`)
	return err
}

// Down00002 undoes the effects of Up00002
func Down00002(tx *sql.Tx) error {
	_, err := tx.Exec(`ALTER TABLE public.footprints DROP COLUMN bbox;`)
	return err
}
