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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const storedSceneID = "LC08_L2SP_047027_20201204_20210313_02_SR"
const presplitSceneID = "LC08_L2SP_062018_20211020_20211104_02_SR"
const missingSceneID = "LC08_L2SP_000000_20200101_20200101_02_SR"

const storedSceneItem = `{
	"type": "Feature",
	"id": "` + storedSceneID + `",
	"geometry": {
		"type": "Polygon",
		"coordinates": [[
			[-124.27364628436257, 48.508467268961375],
			[-124.89607929858929, 46.80220745164398],
			[-122.53800038880695, 46.37691124870954],
			[-121.83985903460558, 48.078084372791],
			[-124.27364628436257, 48.508467268961375]
		]]
	},
	"properties": {"datetime": "2020-12-04T19:02:11Z"}
}`

const presplitSceneItem = `{
	"type": "Feature",
	"id": "` + presplitSceneID + `",
	"geometry": {
		"type": "MultiPolygon",
		"coordinates": [
			[[
				[179.0, 52.0],
				[180.0, 52.1],
				[180.0, 50.5],
				[179.2, 50.4],
				[179.0, 52.0]
			]],
			[[
				[-180.0, 52.1],
				[-179.7, 52.15],
				[-179.6, 50.55],
				[-180.0, 50.5],
				[-180.0, 52.1]
			]]
		]
	},
	"properties": {"datetime": "2021-10-20T21:27:23Z"}
}`

type mockUSGSHandler struct{}

func (h mockUSGSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/collections/landsat-c2l2-sr/items/" + storedSceneID:
		w.Write([]byte(storedSceneItem))
	case "/collections/landsat-c2l2-sr/items/" + presplitSceneID:
		w.Write([]byte(presplitSceneItem))
	case "/collections/landsat-c2l2-sr/items/broken":
		w.WriteHeader(http.StatusInternalServerError)
	default:
		http.NotFound(w, r)
	}
}

func TestUSGSSource_PublishedFootprint(t *testing.T) {
	server := httptest.NewServer(mockUSGSHandler{})
	defer server.Close()
	ctx := &Context{USGSStacAPIURL: server.URL}

	ring, err := USGSSource{}.Footprint(ctx, SceneRef{ID: storedSceneID})
	assert.Nil(t, err, "%v", err)
	assert.Len(t, ring, 5)
	assert.InDelta(t, -124.27364628436257, ring[0][0], 1e-9)
	assert.InDelta(t, 48.508467268961375, ring[0][1], 1e-9)
}

func TestUSGSSource_PresplitMultiPolygon(t *testing.T) {
	server := httptest.NewServer(mockUSGSHandler{})
	defer server.Close()
	ctx := &Context{USGSStacAPIURL: server.URL}

	ring, err := USGSSource{}.Footprint(ctx, SceneRef{ID: presplitSceneID})
	assert.Nil(t, err, "%v", err)
	// Largest part wins; this one is the eastern polygon
	assert.Equal(t, 179.0, ring[0][0])
	assert.Equal(t, ring[0], ring[len(ring)-1], "ring is not closed")
}

func TestUSGSSource_MissingSceneIsUnavailable(t *testing.T) {
	server := httptest.NewServer(mockUSGSHandler{})
	defer server.Close()
	ctx := &Context{USGSStacAPIURL: server.URL}

	_, err := USGSSource{}.Footprint(ctx, SceneRef{ID: missingSceneID})
	assert.Equal(t, ErrFootprintUnavailable, err)
}

func TestUSGSSource_ServerErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(mockUSGSHandler{})
	defer server.Close()
	ctx := &Context{USGSStacAPIURL: server.URL}

	_, err := USGSSource{}.Footprint(ctx, SceneRef{ID: "broken"})
	assert.NotNil(t, err, "5xx response did not cause an error")
	assert.NotEqual(t, ErrFootprintUnavailable, err)
}
