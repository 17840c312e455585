package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSceneTime(t *testing.T) {
	expected := time.Date(2020, 12, 4, 5, 33, 27, 0, time.UTC)

	for _, input := range []string{
		"2020-12-04T05:33:27Z",
		"2020-12-04T05:33:27",
		"2020-12-04 05:33:27",
	} {
		parsed, err := ParseSceneTime(input)
		assert.Nil(t, err, "failed to parse `%s`", input)
		assert.Equal(t, expected, parsed, "wrong result for `%s`", input)
	}
}

func TestParseSceneTime_DateOnly(t *testing.T) {
	parsed, err := ParseSceneTime("2020-12-04")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2020, 12, 4, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseSceneTime_Invalid(t *testing.T) {
	_, err := ParseSceneTime("04/12/2020")
	assert.NotNil(t, err)
}
