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

package footprint

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/venicegeo/geojson-go/geojson"
	"github.com/venicegeo/landsat-stac-gen/util"
)

const defaultUSGSCollection = "landsat-c2l2-sr"

// USGSSource retrieves the footprint USGS published with a scene's STAC item
type USGSSource struct {
	// Collection overrides the STAC collection queried; empty means the
	// surface reflectance collection
	Collection string
}

// Name implements the Source interface
func (s USGSSource) Name() string {
	return "usgs-stac-api"
}

// Footprint implements the Source interface. A scene the USGS API does not
// know about is reported as unavailable, not as an error.
func (s USGSSource) Footprint(ctx *Context, scene SceneRef) ([][]float64, error) {
	collection := s.Collection
	if collection == "" {
		collection = defaultUSGSCollection
	}

	itemURL, err := s.resolveItemURL(ctx, collection, scene.ID)
	if err != nil {
		return nil, err
	}

	util.LogAudit(ctx, util.LogAuditInput{Actor: "anon user", Action: "GET", Actee: itemURL, Message: "Requesting published footprint from USGS STAC API", Severity: util.INFO})
	response, err := util.HTTPClient().Get(itemURL)
	if err != nil {
		return nil, util.LogSimpleErr(ctx, fmt.Sprintf("Failed to complete USGS STAC request for scene %v.", scene.ID), err)
	}
	defer response.Body.Close()
	body, _ := ioutil.ReadAll(response.Body)
	util.LogAudit(ctx, util.LogAuditInput{Actor: itemURL, Action: "GET response", Actee: "anon user", Message: "Receiving published footprint from USGS STAC API", Severity: util.INFO})

	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, ErrFootprintUnavailable
	case (response.StatusCode >= 400) && (response.StatusCode < 500):
		message := fmt.Sprintf("Failed to retrieve USGS STAC item for scene %v: %v. ", scene.ID, response.Status)
		util.LogAlert(ctx, message)
		return nil, util.HTTPErr{Status: response.StatusCode, Message: message}
	case response.StatusCode >= 500:
		return nil, util.LogSimpleErr(ctx, fmt.Sprintf("Failed to retrieve USGS STAC item for scene %v. ", scene.ID), errors.New(response.Status))
	default:
		//no op
	}

	parsed, err := geojson.Parse(body)
	if err != nil {
		stacErr := util.Error{LogMsg: "Failed to parse USGS STAC item as GeoJSON: " + err.Error(),
			SimpleMsg:  "The USGS STAC API returned an unexpected response for this scene. See log for further details.",
			Response:   string(body),
			URL:        itemURL,
			HTTPStatus: response.StatusCode}
		return nil, stacErr.Log(ctx, "")
	}

	feature, ok := parsed.(*geojson.Feature)
	if !ok {
		stacErr := util.Error{SimpleMsg: fmt.Sprintf("Expected a STAC item Feature and got %T", parsed), Response: string(body)}
		return nil, stacErr.Log(ctx, "")
	}
	if feature.Geometry == nil {
		return nil, ErrFootprintUnavailable
	}

	ring, err := ExteriorRing(feature.Geometry)
	if err != nil {
		util.LogAlert(ctx, fmt.Sprintf("USGS STAC item for scene %v has unusable geometry: %v", scene.ID, err))
		return nil, ErrFootprintUnavailable
	}
	return ring, nil
}

func (s USGSSource) resolveItemURL(ctx *Context, collection, sceneID string) (string, error) {
	base := ctx.USGSStacAPIURL
	if base == "" {
		base = util.GetUSGSStacAPIURL()
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", util.LogSimpleErr(ctx, fmt.Sprintf("Failed to parse %v into a URL.", base), err)
	}
	relativeURL, _ := url.Parse(fmt.Sprintf("collections/%s/items/%s", collection, sceneID))
	return baseURL.ResolveReference(relativeURL).String(), nil
}
