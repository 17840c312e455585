package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00001, Down00001)
}

// Up00001 creates the footprints table and its spatial index
func Up00001(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE public.footprints
	(
		product_id text COLLATE pg_catalog."default" NOT NULL,
		acquisition_date timestamp without time zone NOT NULL,
		cloud_cover real NOT NULL,
		scene_url text COLLATE pg_catalog."default" NOT NULL,
		footprint geometry NOT NULL,
		CONSTRAINT "footprints_pk_productId" PRIMARY KEY (product_id)
	)
	WITH (
		OIDS = FALSE
	);

	CREATE INDEX idx_footprints_footprint
	ON public.footprints USING gist
	(footprint);
	`)
	return err
}

// Down00001 undoes the db changes.
func Down00001(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS public.footprints;`)
	return err
}
