package footprint

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const mtlSceneID = "LC08_L2SP_147044_20201207_20210313_02_SR"

// Corner coordinates are quoted in Collection 2 MTL JSON
const sampleMTL = `{
	"LANDSAT_METADATA_FILE": {
		"PROJECTION_ATTRIBUTES": {
			"CORNER_UL_LAT_PRODUCT": "24.33569",
			"CORNER_UL_LON_PRODUCT": "84.42438",
			"CORNER_UR_LAT_PRODUCT": "24.33732",
			"CORNER_UR_LON_PRODUCT": "86.73732",
			"CORNER_LL_LAT_PRODUCT": "22.20357",
			"CORNER_LL_LON_PRODUCT": "84.43078",
			"CORNER_LR_LAT_PRODUCT": "22.20503",
			"CORNER_LR_LON_PRODUCT": "86.71282"
		}
	}
}`

type mockMTLHandler struct{}

func (h mockMTLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/scenes/" + mtlSceneID + "/" + mtlSceneID + "_MTL.json":
		w.Write([]byte(sampleMTL))
	case "/scenes/empty/empty_MTL.json":
		w.Write([]byte(`{"LANDSAT_METADATA_FILE": {"PROJECTION_ATTRIBUTES": {}}}`))
	default:
		http.NotFound(w, r)
	}
}

func TestMTLSource_CornerFootprint(t *testing.T) {
	server := httptest.NewServer(mockMTLHandler{})
	defer server.Close()

	scene := SceneRef{ID: mtlSceneID, URL: server.URL + "/scenes/" + mtlSceneID + "/"}
	ring, err := MTLSource{}.Footprint(&Context{}, scene)
	assert.Nil(t, err, "%v", err)
	assert.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[4], "ring is not closed")
	assert.Equal(t, []float64{84.42438, 24.33569}, ring[0])
	assert.Equal(t, []float64{86.71282, 22.20503}, ring[2])
}

func TestMTLSource_NoURLIsUnavailable(t *testing.T) {
	_, err := MTLSource{}.Footprint(&Context{}, SceneRef{ID: mtlSceneID})
	assert.Equal(t, ErrFootprintUnavailable, err)
}

func TestMTLSource_MissingFileIsUnavailable(t *testing.T) {
	server := httptest.NewServer(mockMTLHandler{})
	defer server.Close()

	scene := SceneRef{ID: "LC08_NOPE", URL: server.URL + "/scenes/LC08_NOPE/"}
	_, err := MTLSource{}.Footprint(&Context{}, scene)
	assert.Equal(t, ErrFootprintUnavailable, err)
}

func TestMTLSource_NoCornersIsError(t *testing.T) {
	server := httptest.NewServer(mockMTLHandler{})
	defer server.Close()

	scene := SceneRef{ID: "empty", URL: server.URL + "/scenes/empty/"}
	_, err := MTLSource{}.Footprint(&Context{}, scene)
	assert.NotNil(t, err, "MTL without corners did not cause an error")
	assert.Contains(t, err.Error(), "corner coordinates")
}
