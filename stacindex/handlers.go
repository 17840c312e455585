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

package stacindex

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/venicegeo/geojson-go/geojson"
	"github.com/venicegeo/landsat-stac-gen/model"
	"github.com/venicegeo/landsat-stac-gen/stac"
	"github.com/venicegeo/landsat-stac-gen/stacindex/db"
	"github.com/venicegeo/landsat-stac-gen/util"
)

// DiscoverHandler is a handler for /footprints
// @Title discoverFootprintsHandler
// @Description searches the local footprint index
// @Accept  plain
// @Param   bbox            query   string  true         "The bounding box, as a GeoJSON Bounding box (x1,y1,x2,y2)"
// @Param   cloudCover      query   string  false        "The maximum cloud cover, as a percentage (0-100)"
// @Param   acquiredDate    query   string  false        "The minimum (earliest) acquired date, as RFC 3339"
// @Param   maxAcquiredDate query   string  false        "The maximum acquired date, as RFC 3339"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 400 {object}  string
// @Router /footprints [get]
type DiscoverHandler struct {
	Context Context
}

// NewDiscoverHandler creates a new handler using the given DB connection
func NewDiscoverHandler(connectionProvider db.ConnectionProvider) (*DiscoverHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &DiscoverHandler{Context: Context{DB: database}}, nil
}

// ServeHTTP implements the http.Handler interface for the DiscoverHandler type
func (h DiscoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	bbox, err := geojson.NewBoundingBox(r.FormValue("bbox"))
	if err != nil {
		message := fmt.Sprintf("The bbox value of %v is invalid", r.FormValue("bbox"))
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
		tx.Rollback()
		return
	}
	maxCloudCover := float64(100)
	if r.FormValue("cloudCover") != "" {
		if maxCloudCover, err = strconv.ParseFloat(r.FormValue("cloudCover"), 64); err != nil {
			message := fmt.Sprintf("Cloud Cover value of %v is invalid.", r.FormValue("cloudCover"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}
	minAcquiredDate := time.Unix(0, 0)
	if r.FormValue("acquiredDate") != "" {
		if minAcquiredDate, err = time.Parse(time.RFC3339, r.FormValue("acquiredDate")); err != nil {
			message := fmt.Sprintf("Acquired date value of %v is invalid.", r.FormValue("acquiredDate"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}
	maxAcquiredDate := time.Now()
	if r.FormValue("maxAcquiredDate") != "" {
		if maxAcquiredDate, err = time.Parse(time.RFC3339, r.FormValue("maxAcquiredDate")); err != nil {
			message := fmt.Sprintf("Acquired date value of %v is invalid.", r.FormValue("maxAcquiredDate"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}

	multiResult, err := discoverFootprints(tx, bbox, maxCloudCover, minAcquiredDate, maxAcquiredDate)
	if err != nil {
		message := fmt.Sprintf("Error searching for footprints: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	featureCollection, err := multiResult.GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	w.Write([]byte(featureCollection.String()))
}

// ItemHandler is a handler for /footprints/{id}
// @Title footprintItemHandler
// @Description returns a stored footprint as a STAC item
// @Accept  plain
// @Param   id   path   string  true   "The scene product identifier"
// @Success 200 {object}  geojson.Feature
// @Failure 404 {object}  string
// @Router /footprints/{id} [get]
type ItemHandler struct {
	Context Context
}

// NewItemHandler creates a new handler using the given DB connection
func NewItemHandler(connectionProvider db.ConnectionProvider) (*ItemHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &ItemHandler{Context: Context{DB: database}}, nil
}

// ServeHTTP implements the http.Handler interface for the ItemHandler type
func (h ItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sceneID, ok := mux.Vars(r)["id"]
	if !ok {
		message := "No scene ID found in URL"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	record, err := db.GetFootprintByID(tx, sceneID)
	if err == sql.ErrNoRows {
		message := fmt.Sprintf("Scene not found: %s", sceneID)
		util.LogInfo(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		tx.Rollback()
		return
	}
	if err != nil {
		message := fmt.Sprintf("Server error searching for scene: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	result, err := sceneItemResultFromRecord(*record)
	if err != nil {
		message := fmt.Sprintf("Error building scene item: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	feature, err := result.GeoJSONFeature()
	if err != nil {
		message := fmt.Sprintf("Error converting scene item to geojson: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}
	w.Write([]byte(feature.String()))
}

// PublishHandler is a handler for POST /footprints/{id}. It generates a STAC
// item for the scene from the remote sources and stores its footprint in the
// local index.
// @Title publishFootprintHandler
// @Description generates a STAC item and stores its footprint
// @Accept  plain
// @Param   id         path    string  true         "The scene product identifier"
// @Param   sceneURL   query   string  false        "The base URL of the scene's asset folder"
// @Param   acquired   query   string  false        "The scene acquisition datetime, as RFC 3339"
// @Param   cloudCover query   string  false        "The scene cloud cover, as a percentage (0-100)"
// @Success 201 {object}  geojson.Feature
// @Failure 400 {object}  string
// @Router /footprints/{id} [post]
type PublishHandler struct {
	Context     Context
	StacContext stac.Context
}

// NewPublishHandler creates a new handler using configuration from
// environment variables and the given DB connection
func NewPublishHandler(connectionProvider db.ConnectionProvider) (*PublishHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &PublishHandler{
		Context:     Context{DB: database},
		StacContext: stac.Context{USGSStacAPIURL: util.GetUSGSStacAPIURL()},
	}, nil
}

// ServeHTTP implements the http.Handler interface for the PublishHandler type
func (h PublishHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sceneID, ok := mux.Vars(r)["id"]
	if !ok {
		message := "No scene ID found in URL"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	options, advisories, err := stac.OptionsFromEnvironment(&h.StacContext)
	if err != nil {
		message := fmt.Sprintf("Invalid antimeridian strategy configuration: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	for _, advisory := range advisories {
		util.LogAlert(&h.Context, advisory.Message)
	}

	meta := stac.SceneMetadata{ID: sceneID, URL: r.FormValue("sceneURL")}
	if r.FormValue("acquired") != "" {
		if meta.AcquiredDate, err = model.ParseSceneTime(r.FormValue("acquired")); err != nil {
			message := fmt.Sprintf("Acquired date value of %v is invalid.", r.FormValue("acquired"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
	}
	if r.FormValue("cloudCover") != "" {
		if meta.CloudCover, err = strconv.ParseFloat(r.FormValue("cloudCover"), 64); err != nil {
			message := fmt.Sprintf("Cloud Cover value of %v is invalid.", r.FormValue("cloudCover"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
	}

	feature, _, err := stac.CreateItem(&h.StacContext, meta, options)
	if err != nil {
		message := fmt.Sprintf("Error generating STAC item: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	record := db.FootprintRecord{
		ProductID:       sceneID,
		AcquisitionDate: meta.AcquiredDate,
		CloudCover:      meta.CloudCover,
		SceneURLString:  meta.URL,
		Footprint:       feature.Geometry,
		Bbox:            feature.Bbox,
	}
	if err = db.UpsertFootprint(tx, &record); err != nil {
		message := fmt.Sprintf("Error storing footprint: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	util.LogAudit(&h.Context, util.LogAuditInput{Actor: "anon user", Action: "POST", Actee: sceneID, Message: "Stored generated footprint in local index", Severity: util.INFO})
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(feature.String()))
}
