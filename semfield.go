// Package semfield annotates OpenAPI fields and parameters with metadata from
// the Bioregistry, a registry of semantic identifier prefixes. The root
// package binds the annotators in pkg/semantic to the embedded registry
// snapshot; use pkg/semantic directly to inject a different registry.
package semfield

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-semfield/pkg/registry"
	"github.com/goliatone/go-semfield/pkg/semantic"
)

// Option re-exports the annotation override type.
type Option = semantic.Option

// ModelBinding re-exports the field-to-prefix binding type.
type ModelBinding = semantic.ModelBinding

// Prefix and CURIE re-export the canonical value types.
type (
	Prefix = semantic.Prefix
	CURIE  = semantic.CURIE
)

// Registry returns the embedded registry snapshot shared by the convenience
// wrappers.
func Registry() (*registry.Snapshot, error) {
	return registry.Default()
}

// Field builds an annotated string schema for prefix against the embedded
// registry.
func Field(prefix string, opts ...Option) (*openapi3.Schema, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return semantic.NewSchema(reg, prefix, opts...)
}

// MustField panics when annotation fails; intended for package-level field
// declarations where a bad prefix should stop the service from starting.
func MustField(prefix string, opts ...Option) *openapi3.Schema {
	schema, err := Field(prefix, opts...)
	if err != nil {
		panic(err)
	}
	return schema
}

// PathParameter builds an annotated path parameter.
func PathParameter(name, prefix string, opts ...Option) (*openapi3.Parameter, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return semantic.NewPathParameter(reg, name, prefix, opts...)
}

// QueryParameter builds an annotated query parameter.
func QueryParameter(name, prefix string, opts ...Option) (*openapi3.Parameter, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return semantic.NewQueryParameter(reg, name, prefix, opts...)
}

// HeaderParameter builds an annotated header parameter.
func HeaderParameter(name, prefix string, opts ...Option) (*openapi3.Parameter, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return semantic.NewHeaderParameter(reg, name, prefix, opts...)
}

// JSONBody builds an annotated JSON request body.
func JSONBody(prefix string, opts ...Option) (*openapi3.RequestBody, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return semantic.NewJSONBody(reg, prefix, opts...)
}

// FormBody builds an annotated form-urlencoded request body.
func FormBody(prefix string, opts ...Option) (*openapi3.RequestBody, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return semantic.NewFormBody(reg, prefix, opts...)
}

// ParsePrefix canonicalises a prefix against the embedded registry.
func ParsePrefix(raw string) (Prefix, error) {
	reg, err := registry.Default()
	if err != nil {
		return "", err
	}
	return semantic.ParsePrefix(reg, raw)
}

// ParseCURIE validates and canonicalises a compact URI against the embedded
// registry.
func ParseCURIE(raw string) (CURIE, error) {
	reg, err := registry.Default()
	if err != nil {
		return "", err
	}
	return semantic.ParseCURIE(reg, raw)
}

// BuildModel resolves bindings against the embedded registry and returns the
// bound model.
func BuildModel(name string, bindings []ModelBinding, opts ...semantic.ModelOption) (*semantic.Model, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return semantic.BuildModel(reg, name, bindings, opts...)
}
