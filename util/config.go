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

package util

import (
	"os"
	"strconv"
)

// Environment variables
const (
	USGS_STAC_API_URL     = "USGS_STAC_API_URL"
	USE_USGS_FOOTPRINT    = "USE_USGS_FOOTPRINT"
	ANTIMERIDIAN_STRATEGY = "ANTIMERIDIAN_STRATEGY"
	FOOTPRINT_PRECISION   = "FOOTPRINT_PRECISION"
)

const defaultUSGSStacAPIURL = "https://landsatlook.usgs.gov/stac-server"

// DefaultFootprintPrecision is the number of decimal digits kept on output coordinates
const DefaultFootprintPrecision = 6

// GetUSGSStacAPIURL returns the base URL of the USGS STAC API, falling back to
// the public landsatlook server
func GetUSGSStacAPIURL() string {
	stacURL, ok := os.LookupEnv(USGS_STAC_API_URL)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get explicit USGS STAC API URL from the environment. Using default: "+defaultUSGSStacAPIURL)
		stacURL = defaultUSGSStacAPIURL
	}
	return stacURL
}

// UseUSGSFootprint returns true if published USGS footprints should be
// preferred over locally derived ones
func UseUSGSFootprint() bool {
	use, err := strconv.ParseBool(os.Getenv(USE_USGS_FOOTPRINT))
	if err != nil {
		// Unset or unparseable means prefer the published footprint
		return true
	}
	return use
}

// GetAntimeridianStrategy returns the configured antimeridian strategy name,
// which may be empty
func GetAntimeridianStrategy() string {
	return os.Getenv(ANTIMERIDIAN_STRATEGY)
}

// GetFootprintPrecision returns the configured coordinate precision
func GetFootprintPrecision() int {
	precisionStr, ok := os.LookupEnv(FOOTPRINT_PRECISION)
	if !ok {
		return DefaultFootprintPrecision
	}
	precision, err := strconv.Atoi(precisionStr)
	if err != nil || precision < 0 {
		LogAlert(&BasicLogContext{}, "Invalid FOOTPRINT_PRECISION value '"+precisionStr+"', using default.")
		return DefaultFootprintPrecision
	}
	return precision
}
