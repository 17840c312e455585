package model

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/venicegeo/geojson-go/geojson"
)

const geotiffMediaType = "image/tiff; application=geotiff"

// LandsatBandAssets is a mixin containing the band asset links of a Landsat8 scene
type LandsatBandAssets struct {
	Coastal      url.URL
	Blue         url.URL
	Green        url.URL
	Red          url.URL
	NIR          url.URL
	SWIR1        url.URL
	SWIR2        url.URL
	Panchromatic url.URL
	Cirrus       url.URL
	TIRS1        url.URL
	TIRS2        url.URL
}

type bandSuffixDestination struct {
	BandSuffix  string
	Destination *url.URL
}

// NewLandsatBandAssets creates a new LandsatBandAssets by inferring the band
// file locations from the scene's asset folder URL
func NewLandsatBandAssets(sceneFolderURL string, id string) (*LandsatBandAssets, error) {
	baseURL, err := url.Parse(sceneFolderURL)
	if baseURL == nil || baseURL.String() == "" {
		err = errors.New("No base scene asset folder could be parsed")
	}
	if err != nil {
		return nil, err
	}

	assets := LandsatBandAssets{}

	suffixes := []bandSuffixDestination{
		bandSuffixDestination{"B1", &assets.Coastal},
		bandSuffixDestination{"B2", &assets.Blue},
		bandSuffixDestination{"B3", &assets.Green},
		bandSuffixDestination{"B4", &assets.Red},
		bandSuffixDestination{"B5", &assets.NIR},
		bandSuffixDestination{"B6", &assets.SWIR1},
		bandSuffixDestination{"B7", &assets.SWIR2},
		bandSuffixDestination{"B8", &assets.Panchromatic},
		bandSuffixDestination{"B9", &assets.Cirrus},
		bandSuffixDestination{"B10", &assets.TIRS1},
		bandSuffixDestination{"B11", &assets.TIRS2},
	}

	for _, dest := range suffixes {
		filename := fmt.Sprintf("%s_%s.TIF", id, dest.BandSuffix)
		fileURL, _ := url.Parse("./" + filename)
		*dest.Destination = *baseURL.ResolveReference(fileURL)
	}

	return &assets, nil
}

// Apply implements the GeoJSONFeatureMixin interface
func (lba LandsatBandAssets) Apply(feature *geojson.Feature) error {
	assets := map[string]map[string]string{}
	for name, location := range map[string]url.URL{
		"coastal":      lba.Coastal,
		"blue":         lba.Blue,
		"green":        lba.Green,
		"red":          lba.Red,
		"nir":          lba.NIR,
		"swir1":        lba.SWIR1,
		"swir2":        lba.SWIR2,
		"panchromatic": lba.Panchromatic,
		"cirrus":       lba.Cirrus,
		"tirs1":        lba.TIRS1,
		"tirs2":        lba.TIRS2,
	} {
		assets[name] = map[string]string{
			"href": location.String(),
			"type": geotiffMediaType,
		}
	}
	feature.Properties["assets"] = assets
	return nil
}

// FootprintProvenance is a mixin recording which source provided a scene's
// footprint and what corrections were applied to it
type FootprintProvenance struct {
	Source      string
	Corrections []string
}

// Apply implements the GeoJSONFeatureMixin interface
func (fp FootprintProvenance) Apply(feature *geojson.Feature) error {
	feature.Properties["footprint:source"] = fp.Source
	if len(fp.Corrections) > 0 {
		feature.Properties["footprint:corrections"] = fp.Corrections
	}
	return nil
}
