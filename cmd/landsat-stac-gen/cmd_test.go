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

package main

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

const knownSceneID = "LC08_L2SP_012029_20170213_20170415_02_SR"

var knownSceneItem = []byte(`{
	"type": "Feature",
	"id": "` + knownSceneID + `",
	"geometry": {"type": "Polygon", "coordinates": [[
		[-70.5, 43.1], [-68.2, 43.1], [-68.2, 45.0], [-70.5, 45.0], [-70.5, 43.1]
	]]},
	"properties": {}
}`)

type mockUSGSHandler struct{}

func (h mockUSGSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/items/"+knownSceneID) {
		w.Write(knownSceneItem)
		return
	}
	http.NotFound(w, r)
}

func TestMain(m *testing.M) {
	mockUSGSServer := httptest.NewServer(mockUSGSHandler{})
	defer mockUSGSServer.Close()
	os.Setenv("USGS_STAC_API_URL", mockUSGSServer.URL)
	os.Unsetenv("DATABASE_URL")
	code := m.Run()
	os.Exit(code)
}

func TestServe_CallsLaunchServer(t *testing.T) {
	success := make(chan bool)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		success <- true
	}
	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case <-success:
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestServe_BaseHealthCheckEndpoint(t *testing.T) {
	success := make(chan bool)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		req := httptest.NewRequest("GET", "/", strings.NewReader(""))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, req)
		responseBody, _ := ioutil.ReadAll(response.Result().Body)
		success <- (string(responseBody) == "OK")
	}

	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case <-success:
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestServe_GenerateItemEndpoint(t *testing.T) {
	itemJSON := make(chan string)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		req := httptest.NewRequest("GET", "/items/landsat/"+knownSceneID, strings.NewReader(""))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, req)
		responseBody, _ := ioutil.ReadAll(response.Result().Body)
		itemJSON <- string(responseBody)
	}

	timer := time.NewTimer(5 * time.Second)

	go serveAction(nil)

	select {
	case body := <-itemJSON:
		assert.Contains(t, body, `"`+knownSceneID+`"`)
		assert.Contains(t, body, `"footprint:source":"usgs-stac-api"`)
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 5 seconds of serve()")
	}
}
