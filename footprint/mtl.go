package footprint

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/venicegeo/landsat-stac-gen/util"
)

// MTLSource derives a footprint from the product corner coordinates in a
// scene's MTL metadata file. It is the terminal fallback: every distributed
// scene carries an MTL file.
type MTLSource struct{}

// Name implements the Source interface
func (s MTLSource) Name() string {
	return "mtl-corners"
}

type sceneMTL struct {
	LandsatMetadataFile struct {
		ProjectionAttributes struct {
			CornerUpperLeftLon  float64 `json:"CORNER_UL_LON_PRODUCT,string"`
			CornerUpperLeftLat  float64 `json:"CORNER_UL_LAT_PRODUCT,string"`
			CornerUpperRightLon float64 `json:"CORNER_UR_LON_PRODUCT,string"`
			CornerUpperRightLat float64 `json:"CORNER_UR_LAT_PRODUCT,string"`
			CornerLowerLeftLon  float64 `json:"CORNER_LL_LON_PRODUCT,string"`
			CornerLowerLeftLat  float64 `json:"CORNER_LL_LAT_PRODUCT,string"`
			CornerLowerRightLon float64 `json:"CORNER_LR_LON_PRODUCT,string"`
			CornerLowerRightLat float64 `json:"CORNER_LR_LAT_PRODUCT,string"`
		} `json:"PROJECTION_ATTRIBUTES"`
	} `json:"LANDSAT_METADATA_FILE"`
}

// Footprint implements the Source interface
func (s MTLSource) Footprint(ctx *Context, scene SceneRef) ([][]float64, error) {
	if scene.URL == "" {
		return nil, ErrFootprintUnavailable
	}

	baseURL, err := url.Parse(scene.URL)
	if err != nil {
		return nil, util.LogSimpleErr(ctx, fmt.Sprintf("Failed to parse scene URL %v.", scene.URL), err)
	}
	relativeURL, _ := url.Parse(fmt.Sprintf("%s_MTL.json", scene.ID))
	mtlURL := baseURL.ResolveReference(relativeURL).String()

	util.LogAudit(ctx, util.LogAuditInput{Actor: "anon user", Action: "GET", Actee: mtlURL, Message: "Requesting scene MTL metadata", Severity: util.INFO})
	var mtl sceneMTL
	response, err := util.ReqByObjJSON("GET", mtlURL, "", nil, &mtl)
	if response != nil && response.StatusCode == http.StatusNotFound {
		return nil, ErrFootprintUnavailable
	}
	if err != nil {
		return nil, util.LogSimpleErr(ctx, fmt.Sprintf("Failed to retrieve MTL metadata for scene %v. ", scene.ID), err)
	}

	pa := mtl.LandsatMetadataFile.ProjectionAttributes
	if pa.CornerUpperLeftLon == 0 && pa.CornerUpperLeftLat == 0 &&
		pa.CornerLowerRightLon == 0 && pa.CornerLowerRightLat == 0 {
		mtlErr := util.Error{LogMsg: "Scene MTL metadata carries no product corner coordinates",
			SimpleMsg: "The scene's MTL metadata carries no product corner coordinates.",
			URL:       mtlURL}
		return nil, mtlErr.Log(ctx, "")
	}

	return [][]float64{
		{pa.CornerUpperLeftLon, pa.CornerUpperLeftLat},
		{pa.CornerLowerLeftLon, pa.CornerLowerLeftLat},
		{pa.CornerLowerRightLon, pa.CornerLowerRightLat},
		{pa.CornerUpperRightLon, pa.CornerUpperRightLat},
		{pa.CornerUpperLeftLon, pa.CornerUpperLeftLat},
	}, nil
}
