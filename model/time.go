package model

import (
	"fmt"
	"time"
)

// Scene acquisition datetimes arrive in several shapes depending on where the
// metadata came from: the USGS STAC API emits RFC3339, MTL files carry bare
// dates, and the AWS scene list uses a space-separated timestamp. None of them
// are guaranteed, so we parse leniently against all known layouts.

var sceneTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSceneTime is a drop-in replacement for time.Parse, but matching against multiple possible scene metadata time formats
func ParseSceneTime(sceneTime string) (time.Time, error) {
	for _, layout := range sceneTimeLayouts {
		if output, err := time.Parse(layout, sceneTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", sceneTime)
}
