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

// Package stac assembles STAC items for Landsat scenes. It resolves a
// footprint through the configured source chain, corrects it at the
// antimeridian, and composes the result with scene metadata and band assets.
package stac

import (
	"fmt"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
	"github.com/venicegeo/landsat-stac-gen/antimeridian"
	"github.com/venicegeo/landsat-stac-gen/footprint"
	"github.com/venicegeo/landsat-stac-gen/model"
	"github.com/venicegeo/landsat-stac-gen/util"
)

const defaultPlatform = "landsat-8"

var defaultInstruments = []string{"oli", "tirs"}

// SceneMetadata carries the non-footprint scene attributes used to build an item
type SceneMetadata struct {
	ID           string
	URL          string
	AcquiredDate time.Time
	CloudCover   float64
	Platform     string
	Instruments  []string
}

// CreateItemOptions controls footprint resolution and correction
type CreateItemOptions struct {
	UseUSGSFootprint bool
	Strategy         antimeridian.Strategy
	Precision        int
	// ExtraSources are consulted before the USGS STAC API, e.g. a local
	// footprint index
	ExtraSources []footprint.Source
}

// OptionsFromEnvironment builds CreateItemOptions from environment
// configuration. A deprecated strategy name is reported through the returned
// advisories rather than as an error.
func OptionsFromEnvironment(ctx *Context) (CreateItemOptions, []antimeridian.Advisory, error) {
	strategy, advisories, err := antimeridian.ParseStrategy(util.GetAntimeridianStrategy())
	if err != nil {
		return CreateItemOptions{}, advisories, err
	}
	return CreateItemOptions{
		UseUSGSFootprint: util.UseUSGSFootprint(),
		Strategy:         strategy,
		Precision:        util.GetFootprintPrecision(),
	}, advisories, nil
}

// FixFootprint corrects a raw footprint ring at the antimeridian using the
// given strategy and rounds its coordinates, returning the resulting GeoJSON
// geometry and its bounding box
func FixFootprint(ring [][]float64, strategy antimeridian.Strategy, precision int) (interface{}, []float64, []antimeridian.Advisory, error) {
	if strategy == antimeridian.StrategySplit {
		parts, advisories, err := antimeridian.Split(ring)
		if err != nil {
			return nil, nil, advisories, err
		}
		coordinates := make([][][][]float64, 0, len(parts))
		for _, part := range parts {
			coordinates = append(coordinates, [][][]float64{antimeridian.RoundRing(part, precision)})
		}
		bbox := antimeridian.Bbox(parts...)
		return geojson.NewMultiPolygon(coordinates), bbox, advisories, nil
	}

	normalized, advisories, err := antimeridian.Normalize(ring)
	if err != nil {
		return nil, nil, advisories, err
	}
	normalized = antimeridian.RoundRing(normalized, precision)
	bbox := antimeridian.Bbox(normalized)
	return geojson.NewPolygon([][][]float64{normalized}), bbox, advisories, nil
}

// CreateItem builds a complete STAC item feature for a scene. The returned
// advisories describe non-fatal corrections applied to the footprint.
func CreateItem(ctx *Context, meta SceneMetadata, options CreateItemOptions) (*geojson.Feature, []antimeridian.Advisory, error) {
	resolver := footprint.NewResolver(options.UseUSGSFootprint, options.ExtraSources...)
	footprintCtx := &footprint.Context{USGSStacAPIURL: ctx.USGSStacAPIURL}

	ring, sourceName, err := resolver.Resolve(footprintCtx, footprint.SceneRef{ID: meta.ID, URL: meta.URL})
	if err != nil {
		return nil, nil, util.LogSimpleErr(ctx, fmt.Sprintf("Could not resolve a footprint for scene %v. ", meta.ID), err)
	}

	geometry, bbox, advisories, err := FixFootprint(ring, options.Strategy, options.Precision)
	if err != nil {
		return nil, advisories, util.LogSimpleErr(ctx, fmt.Sprintf("The footprint for scene %v could not be corrected. ", meta.ID), err)
	}

	corrections := make([]string, 0, len(advisories))
	for _, advisory := range advisories {
		util.LogAlert(ctx, fmt.Sprintf("Scene %v footprint: %v", meta.ID, advisory.Message))
		corrections = append(corrections, advisory.Code)
	}

	var assets *model.LandsatBandAssets
	if meta.URL != "" {
		if assets, err = model.NewLandsatBandAssets(meta.URL, meta.ID); err != nil {
			return nil, advisories, util.LogSimpleErr(ctx, fmt.Sprintf("Could not derive band assets for scene %v. ", meta.ID), err)
		}
	}

	platform := meta.Platform
	if platform == "" {
		platform = defaultPlatform
	}
	instruments := meta.Instruments
	if instruments == nil {
		instruments = defaultInstruments
	}

	result := model.SceneItemResult{
		BasicSceneResult: model.BasicSceneResult{
			ID:           meta.ID,
			Geometry:     geometry,
			Bbox:         geojson.BoundingBox(bbox),
			CloudCover:   meta.CloudCover,
			AcquiredDate: meta.AcquiredDate,
			Platform:     platform,
			Instruments:  instruments,
			SceneURL:     meta.URL,
		},
		LandsatBandAssets:   assets,
		FootprintProvenance: &model.FootprintProvenance{Source: sourceName, Corrections: corrections},
	}

	feature, err := result.GeoJSONFeature()
	if err != nil {
		return nil, advisories, err
	}
	return feature, advisories, nil
}
