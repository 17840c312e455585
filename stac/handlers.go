package stac

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/venicegeo/landsat-stac-gen/antimeridian"
	"github.com/venicegeo/landsat-stac-gen/footprint"
	"github.com/venicegeo/landsat-stac-gen/model"
	"github.com/venicegeo/landsat-stac-gen/util"
)

// GenerateHandler is a handler for /items/landsat/{id}
// @Title generateItemHandler
// @Description generates a STAC item for a Landsat scene
// @Accept  plain
// @Param   id         path    string  true         "The scene product identifier"
// @Param   sceneURL   query   string  false        "The base URL of the scene's asset folder"
// @Param   acquired   query   string  false        "The scene acquisition datetime, as RFC 3339"
// @Param   cloudCover query   string  false        "The scene cloud cover, as a percentage (0-100)"
// @Param   strategy   query   string  false        "The antimeridian strategy (NORMALIZE or SPLIT)"
// @Param   precision  query   string  false        "The number of decimal digits kept on output coordinates"
// @Success 200 {object}  geojson.Feature
// @Failure 400 {object}  string
// @Router /items/landsat/{id} [get]
type GenerateHandler struct {
	Context Context
	// ExtraSources are consulted ahead of the remote footprint sources,
	// e.g. a local footprint index
	ExtraSources []footprint.Source
}

// NewGenerateHandler creates a new handler using configuration from
// environment variables
func NewGenerateHandler() *GenerateHandler {
	return &GenerateHandler{
		Context: Context{
			USGSStacAPIURL: util.GetUSGSStacAPIURL(),
		},
	}
}

// ServeHTTP implements the http.Handler interface for the GenerateHandler type
func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sceneID, ok := mux.Vars(r)["id"]
	if !ok {
		message := "No scene ID found in URL"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	options, advisories, err := OptionsFromEnvironment(&h.Context)
	if err != nil {
		message := fmt.Sprintf("Invalid antimeridian strategy configuration: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	for _, advisory := range advisories {
		util.LogAlert(&h.Context, advisory.Message)
	}
	options.ExtraSources = h.ExtraSources

	if r.FormValue("strategy") != "" {
		strategy, strategyAdvisories, err := antimeridian.ParseStrategy(r.FormValue("strategy"))
		if err != nil {
			message := fmt.Sprintf("The strategy value of %v is invalid", r.FormValue("strategy"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
		for _, advisory := range strategyAdvisories {
			util.LogAlert(&h.Context, advisory.Message)
		}
		options.Strategy = strategy
	}
	if r.FormValue("precision") != "" {
		precision, err := strconv.Atoi(r.FormValue("precision"))
		if err != nil || precision < 0 {
			message := fmt.Sprintf("The precision value of %v is invalid", r.FormValue("precision"))
			util.LogAlert(&h.Context, message)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
		options.Precision = precision
	}

	meta := SceneMetadata{ID: sceneID, URL: r.FormValue("sceneURL")}
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

	feature, _, err := CreateItem(&h.Context, meta, options)
	if err != nil {
		message := fmt.Sprintf("Error generating STAC item: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}

	w.Write([]byte(feature.String()))
}
