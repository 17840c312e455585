package footprint

import (
	"errors"
	"fmt"

	"github.com/venicegeo/landsat-stac-gen/util"
)

// ErrFootprintUnavailable signals that a source holds no footprint for the
// requested scene. It is a trigger for the next source in the priority list,
// not a failure.
var ErrFootprintUnavailable = errors.New("no footprint available from this source")

// SceneRef identifies a scene to the footprint sources
type SceneRef struct {
	// ID is the scene product identifier, e.g. LC08_L2SP_047027_20201204_20210313_02_SR
	ID string
	// URL is the base URL of the scene's asset folder, used for metadata
	// derivation; it may be empty when only remote lookup is wanted
	URL string
}

// Source provides raw footprint rings from one backing location
type Source interface {
	Name() string
	Footprint(ctx *Context, scene SceneRef) ([][]float64, error)
}

// Resolver tries each source in priority order. A source reporting
// ErrFootprintUnavailable falls through to the next one; any other error
// aborts resolution.
type Resolver struct {
	Sources []Source
}

// Resolve returns the first footprint ring any source can provide, along with
// the name of the source that provided it
func (r Resolver) Resolve(ctx *Context, scene SceneRef) ([][]float64, string, error) {
	for _, source := range r.Sources {
		ring, err := source.Footprint(ctx, scene)
		if errors.Is(err, ErrFootprintUnavailable) {
			util.LogInfo(ctx, fmt.Sprintf("No footprint for %s from source %s; trying next source", scene.ID, source.Name()))
			continue
		}
		if err != nil {
			return nil, source.Name(), err
		}
		return ring, source.Name(), nil
	}
	return nil, "", fmt.Errorf("no source could provide a footprint for scene %s", scene.ID)
}

// NewResolver builds the standard source priority list: any extra sources
// (e.g. a local footprint index) first, then the USGS STAC API, then local
// derivation from MTL corner coordinates. With preferRemote false only local
// derivation is consulted.
func NewResolver(preferRemote bool, extra ...Source) Resolver {
	var sources []Source
	if preferRemote {
		sources = append(sources, extra...)
		sources = append(sources, USGSSource{})
	}
	sources = append(sources, MTLSource{})
	return Resolver{Sources: sources}
}
