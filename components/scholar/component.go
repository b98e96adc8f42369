package scholar

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-semfield/pkg/semantic"
)

// Component wraps the scholar lookup handler, its configuration, and routing
// helpers. Construction resolves every registry prefix the component depends
// on, so a misconfigured registry fails here rather than on the first
// request.
type Component struct {
	api *api
}

// New constructs the component with default options plus any overrides.
func New(fns ...OptionFn) (*Component, error) {
	a, err := newAPI(NewOptions(fns...))
	if err != nil {
		return nil, err
	}
	return &Component{api: a}, nil
}

// MustNew panics when construction fails. Component construction happens at
// service startup, where a broken registry configuration should be fatal.
func MustNew(fns ...OptionFn) *Component {
	c, err := New(fns...)
	if err != nil {
		panic(err)
	}
	return c
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.api.opts })
}

// Handler returns the net/http handler for the lookup endpoint only.
func (c *Component) Handler() http.Handler {
	return c.api.lookupHandler()
}

// Model returns the bound Scholar model backing validation and the served
// document.
func (c *Component) Model() *semantic.Model {
	return c.api.model
}

// Document returns the OpenAPI document describing the component.
func (c *Component) Document() (*openapi3.T, error) {
	return c.api.buildDocument()
}

// RegisterRoutes mounts the lookup endpoint, /openapi.json, /docs, and the
// root redirect under basePath. It returns the mounted patterns.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	return c.api.registerRoutes(mux, basePath)
}
