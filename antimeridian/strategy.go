package antimeridian

import (
	"fmt"
	"strings"
)

// Strategy selects how a footprint crossing the antimeridian is represented
type Strategy string

const (
	// StrategyNormalize keeps a single polygon by shifting longitudes across the meridian
	StrategyNormalize Strategy = "NORMALIZE"
	// StrategySplit cuts the footprint at the meridian into a multi-polygon
	StrategySplit Strategy = "SPLIT"

	// legacyWrapStrategy is the pre-split-era name for NORMALIZE, still accepted from configuration
	legacyWrapStrategy = "WRAP"
)

// ParseStrategy resolves a configured strategy name. The empty string resolves
// to the NORMALIZE default. Legacy names resolve to their replacement along
// with a deprecation advisory.
func ParseStrategy(name string) (Strategy, []Advisory, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", string(StrategyNormalize):
		return StrategyNormalize, nil, nil
	case string(StrategySplit):
		return StrategySplit, nil, nil
	case legacyWrapStrategy:
		advisory := Advisory{Code: StrategyDeprecated, Message: "antimeridian strategy WRAP is deprecated; use NORMALIZE"}
		return StrategyNormalize, []Advisory{advisory}, nil
	}
	return "", nil, fmt.Errorf("unknown antimeridian strategy: %q", name)
}
