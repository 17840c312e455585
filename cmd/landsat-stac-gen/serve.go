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
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/venicegeo/landsat-stac-gen/footprint"
	"github.com/venicegeo/landsat-stac-gen/stac"
	"github.com/venicegeo/landsat-stac-gen/stacindex"
	"github.com/venicegeo/landsat-stac-gen/util"
	cli "gopkg.in/urfave/cli.v1"
)

func getPortStr() string {
	if port, ok := os.LookupEnv("PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func createRouter(ctx util.LogContext) (*mux.Router, error) {
	router := mux.NewRouter()
	router.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("OK"))
	})

	generateHandler := stac.NewGenerateHandler()

	//The footprint index routes only come up when a database is reachable;
	//item generation works without one.
	if database, err := getDbConnectionFunc(&util.BasicLogContext{}); err == nil {
		generateHandler.ExtraSources = []footprint.Source{stacindex.StorageSource{DB: database}}

		discoverHandler, err := stacindex.NewDiscoverHandler(getDbConnectionFunc)
		if err != nil {
			return nil, err
		}
		itemHandler, err := stacindex.NewItemHandler(getDbConnectionFunc)
		if err != nil {
			return nil, err
		}
		publishHandler, err := stacindex.NewPublishHandler(getDbConnectionFunc)
		if err != nil {
			return nil, err
		}
		router.Handle("/footprints", discoverHandler).Methods("GET")
		router.Handle("/footprints/{id}", itemHandler).Methods("GET")
		router.Handle("/footprints/{id}", publishHandler).Methods("POST")
	} else {
		util.LogAlert(ctx, "No footprint index database available, serving without index routes: "+err.Error())
	}

	router.Handle("/items/landsat/{id}", generateHandler)

	return router, nil
}

func serveAction(*cli.Context) {
	logContext := &(util.BasicLogContext{})

	portStr := getPortStr()

	if router, err := createRouter(logContext); err == nil {
		launchServerFunc(portStr, router)
	} else {
		util.LogSimpleErr(logContext, "Failed to create router: ", err)
	}
}

var launchServerFunc = launchServer

func launchServer(portStr string, router *mux.Router) {
	server := http.Server{
		Addr:    portStr,
		Handler: router,
	}

	log.Fatal(server.ListenAndServe())
}
