package footprint

import (
	"github.com/venicegeo/landsat-stac-gen/util"
)

// Context is the context for a footprint resolution operation
type Context struct {
	USGSStacAPIURL string
	sessionID      string
}

// AppName returns the name of this application
func (c *Context) AppName() string {
	return "landsat-stac-gen"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}
