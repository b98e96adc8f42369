package semantic

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-semfield/pkg/registry"
)

// ExtensionKey is the vendor extension slot attached to every annotated
// schema and parameter.
const ExtensionKey = "bioregistry"

type options struct {
	title       *string
	description *string
	pattern     *string
	example     any
	required    *bool
	extensions  map[string]any
}

// Option overrides a registry-derived attribute on an annotated schema or
// parameter. Caller-supplied values always win over record values; the
// bioregistry extension block is attached regardless.
type Option func(*options)

// WithTitle overrides the record display name.
func WithTitle(title string) Option {
	return func(o *options) { o.title = &title }
}

// WithDescription overrides the generated HTML description.
func WithDescription(description string) Option {
	return func(o *options) { o.description = &description }
}

// WithPattern overrides the record validation pattern.
func WithPattern(pattern string) Option {
	return func(o *options) { o.pattern = &pattern }
}

// WithExample overrides the record example value.
func WithExample(example any) Option {
	return func(o *options) { o.example = example }
}

// WithRequired marks a parameter or body as required. Path parameters are
// always required regardless of this option.
func WithRequired(required bool) Option {
	return func(o *options) { o.required = &required }
}

// WithExtension attaches an additional vendor extension entry. The
// bioregistry block cannot be displaced; writes to its key are ignored.
func WithExtension(key string, value any) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = map[string]any{}
		}
		o.extensions[key] = value
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return o
}

// NewSchema builds a string schema annotated with the registry record for
// prefix. An unregistered prefix is a caller-configuration error and fails
// immediately; it is meant to surface at field-declaration time, never while
// serving requests.
func NewSchema(reg registry.Registry, prefix string, opts ...Option) (*openapi3.Schema, error) {
	schema, _, err := annotatedSchema(reg, prefix, applyOptions(opts))
	return schema, err
}

// MustNewSchema panics when annotation fails. Field declarations run at
// service startup, so a panic here is the Go analogue of failing the schema
// build.
func MustNewSchema(reg registry.Registry, prefix string, opts ...Option) *openapi3.Schema {
	schema, err := NewSchema(reg, prefix, opts...)
	if err != nil {
		panic(err)
	}
	return schema
}

func annotatedSchema(reg registry.Registry, prefix string, o options) (*openapi3.Schema, registry.Record, error) {
	if reg == nil {
		return nil, registry.Record{}, errors.New("semantic: registry is required")
	}
	rec, err := reg.Resolve(prefix)
	if err != nil {
		return nil, registry.Record{}, err
	}

	schema := openapi3.NewStringSchema()

	if o.title != nil {
		schema.Title = *o.title
	} else {
		schema.Title = rec.Name
	}

	if o.description != nil {
		schema.Description = *o.description
	} else {
		schema.Description = Describe(rec)
	}

	if o.pattern != nil {
		schema.Pattern = *o.pattern
	} else if rec.Pattern != "" {
		schema.Pattern = rec.Pattern
	}

	if o.example != nil {
		schema.Example = o.example
	} else if example := rec.Example(); example != "" {
		schema.Example = example
	}

	schema.Extensions = extensionBlock(rec, o.extensions)
	return schema, rec, nil
}

// extensionBlock merges caller extensions with the mandatory bioregistry
// entry. The bioregistry entry is additive and never skipped.
func extensionBlock(rec registry.Record, extra map[string]any) map[string]any {
	ext := make(map[string]any, len(extra)+1)
	for key, value := range extra {
		if key == ExtensionKey {
			continue
		}
		ext[key] = value
	}

	mappings := make(map[string]string, len(rec.Mappings))
	for from, to := range rec.Mappings {
		mappings[from] = to
	}

	block := map[string]any{
		"prefix":   rec.Prefix,
		"mappings": mappings,
	}
	if len(rec.Examples) > 0 {
		block["examples"] = append([]string(nil), rec.Examples...)
	}
	ext[ExtensionKey] = block
	return ext
}
