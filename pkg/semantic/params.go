package semantic

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-semfield/pkg/registry"
)

// NewPathParameter builds a path parameter named name, annotated from the
// registry record for prefix. Path parameters are always required.
func NewPathParameter(reg registry.Registry, name, prefix string, opts ...Option) (*openapi3.Parameter, error) {
	return newParameter(reg, openapi3.NewPathParameter(name), prefix, applyOptions(opts))
}

// NewQueryParameter builds an annotated query parameter.
func NewQueryParameter(reg registry.Registry, name, prefix string, opts ...Option) (*openapi3.Parameter, error) {
	return newParameter(reg, openapi3.NewQueryParameter(name), prefix, applyOptions(opts))
}

// NewHeaderParameter builds an annotated header parameter.
func NewHeaderParameter(reg registry.Registry, name, prefix string, opts ...Option) (*openapi3.Parameter, error) {
	return newParameter(reg, openapi3.NewHeaderParameter(name), prefix, applyOptions(opts))
}

func newParameter(reg registry.Registry, param *openapi3.Parameter, prefix string, o options) (*openapi3.Parameter, error) {
	schema, rec, err := annotatedSchema(reg, prefix, o)
	if err != nil {
		return nil, err
	}

	param.Schema = schema.NewRef()
	param.Description = schema.Description
	if o.required != nil && param.In != openapi3.ParameterInPath {
		param.Required = *o.required
	}
	param.Extensions = extensionBlock(rec, o.extensions)
	return param, nil
}

// NewJSONBody builds an annotated JSON request body whose schema is the
// semantic string schema for prefix.
func NewJSONBody(reg registry.Registry, prefix string, opts ...Option) (*openapi3.RequestBody, error) {
	o := applyOptions(opts)
	schema, rec, err := annotatedSchema(reg, prefix, o)
	if err != nil {
		return nil, err
	}
	return newBody(openapi3.NewContentWithJSONSchema(schema), schema, rec, o), nil
}

// NewFormBody builds an annotated form-urlencoded request body.
func NewFormBody(reg registry.Registry, prefix string, opts ...Option) (*openapi3.RequestBody, error) {
	o := applyOptions(opts)
	schema, rec, err := annotatedSchema(reg, prefix, o)
	if err != nil {
		return nil, err
	}
	return newBody(openapi3.NewContentWithFormDataSchema(schema), schema, rec, o), nil
}

func newBody(content openapi3.Content, schema *openapi3.Schema, rec registry.Record, o options) *openapi3.RequestBody {
	body := openapi3.NewRequestBody().WithDescription(schema.Description)
	body.Content = content
	if o.required != nil {
		body.Required = *o.required
	}
	body.Extensions = extensionBlock(rec, o.extensions)
	return body
}
