package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUSGSStacAPIURL_Default(t *testing.T) {
	os.Unsetenv(USGS_STAC_API_URL)
	assert.Equal(t, defaultUSGSStacAPIURL, GetUSGSStacAPIURL())

	os.Setenv(USGS_STAC_API_URL, "https://stac.example.localdomain")
	defer os.Unsetenv(USGS_STAC_API_URL)
	assert.Equal(t, "https://stac.example.localdomain", GetUSGSStacAPIURL())
}

func TestUseUSGSFootprint(t *testing.T) {
	os.Unsetenv(USE_USGS_FOOTPRINT)
	assert.True(t, UseUSGSFootprint(), "unset USE_USGS_FOOTPRINT should prefer the published footprint")

	os.Setenv(USE_USGS_FOOTPRINT, "false")
	defer os.Unsetenv(USE_USGS_FOOTPRINT)
	assert.False(t, UseUSGSFootprint())
}

func TestGetFootprintPrecision(t *testing.T) {
	os.Unsetenv(FOOTPRINT_PRECISION)
	assert.Equal(t, DefaultFootprintPrecision, GetFootprintPrecision())

	os.Setenv(FOOTPRINT_PRECISION, "4")
	defer os.Unsetenv(FOOTPRINT_PRECISION)
	assert.Equal(t, 4, GetFootprintPrecision())

	os.Setenv(FOOTPRINT_PRECISION, "-2")
	assert.Equal(t, DefaultFootprintPrecision, GetFootprintPrecision())

	os.Setenv(FOOTPRINT_PRECISION, "lots")
	assert.Equal(t, DefaultFootprintPrecision, GetFootprintPrecision())
}
