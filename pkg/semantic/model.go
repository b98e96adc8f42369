package semantic

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-semfield/pkg/registry"
)

// ModelBinding declares that a model field carries identifiers from a
// registry prefix. An empty Prefix means the field name itself is the prefix,
// preserving the "field name is the lookup key" ergonomics while keeping the
// mapping explicit at schema-definition time.
type ModelBinding struct {
	Field    string
	Prefix   string
	Required bool
}

type boundField struct {
	name     string
	required bool
	record   registry.Record
}

type plainField struct {
	name     string
	required bool
	example  string
}

type modelOptions struct {
	plain []plainField
}

// ModelOption customises a model beyond its semantic bindings.
type ModelOption func(*modelOptions)

// WithPlainField declares an unannotated string property on the model. Plain
// fields participate in required checks but carry no registry constraint.
func WithPlainField(name string, required bool) ModelOption {
	return func(o *modelOptions) {
		o.plain = append(o.plain, plainField{name: name, required: required})
	}
}

// WithPlainFieldExample declares an unannotated string property with a
// documentation example.
func WithPlainFieldExample(name string, required bool, example string) ModelOption {
	return func(o *modelOptions) {
		o.plain = append(o.plain, plainField{name: name, required: required, example: example})
	}
}

// Model is a schema whose bound fields validate against registry patterns.
// All prefix resolution happens in BuildModel; validation afterwards is pure
// string matching with no further registry access.
type Model struct {
	name   string
	bound  []boundField
	plain  []plainField
	schema *openapi3.Schema
}

// BuildModel resolves every binding against the registry and constructs the
// model schema. An unresolvable binding is a declaration-time configuration
// error: the schema cannot be built and the error is returned immediately.
func BuildModel(reg registry.Registry, name string, bindings []ModelBinding, opts ...ModelOption) (*Model, error) {
	if reg == nil {
		return nil, errors.New("semantic: registry is required")
	}
	if name == "" {
		return nil, errors.New("semantic: model name is required")
	}

	var mo modelOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&mo)
	}

	m := &Model{name: name, plain: mo.plain}
	seen := make(map[string]bool, len(bindings)+len(mo.plain))

	schema := openapi3.NewObjectSchema()
	schema.Title = name

	for _, binding := range bindings {
		if binding.Field == "" {
			return nil, fmt.Errorf("semantic: model %s: binding has an empty field name", name)
		}
		if seen[binding.Field] {
			return nil, fmt.Errorf("semantic: model %s: duplicate field %q", name, binding.Field)
		}
		seen[binding.Field] = true

		prefix := binding.Prefix
		if prefix == "" {
			prefix = binding.Field
		}
		fieldSchema, rec, err := annotatedSchema(reg, prefix, options{})
		if err != nil {
			return nil, fmt.Errorf("semantic: model %s: field %q: %w", name, binding.Field, err)
		}

		m.bound = append(m.bound, boundField{
			name:     binding.Field,
			required: binding.Required,
			record:   rec,
		})
		schema.Properties[binding.Field] = fieldSchema.NewRef()
		if binding.Required {
			schema.Required = append(schema.Required, binding.Field)
		}
	}

	for _, pf := range mo.plain {
		if seen[pf.name] {
			return nil, fmt.Errorf("semantic: model %s: duplicate field %q", name, pf.name)
		}
		seen[pf.name] = true

		fieldSchema := openapi3.NewStringSchema()
		if pf.example != "" {
			fieldSchema.Example = pf.example
		}
		schema.Properties[pf.name] = fieldSchema.NewRef()
		if pf.required {
			schema.Required = append(schema.Required, pf.name)
		}
	}

	m.schema = schema
	return m, nil
}

// MustBuildModel panics when the model cannot be built. Bindings are declared
// at startup, so the panic mirrors a fatal schema-construction failure.
func MustBuildModel(reg registry.Registry, name string, bindings []ModelBinding, opts ...ModelOption) *Model {
	m, err := BuildModel(reg, name, bindings, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Schema returns the annotated object schema for the model.
func (m *Model) Schema() *openapi3.Schema { return m.schema }

// Validate checks values against the model. Required fields must be present
// and non-empty; bound values must fully match their record's pattern; keys
// not declared on the model are rejected. Values are never canonicalised.
func (m *Model) Validate(values map[string]string) error {
	if m == nil {
		return errors.New("semantic: model is nil")
	}

	declared := make(map[string]bool, len(m.bound)+len(m.plain))

	for _, field := range m.bound {
		declared[field.name] = true
		value, ok := values[field.name]
		if !ok || value == "" {
			if field.required {
				return fmt.Errorf("semantic: model %s: missing required field %q", m.name, field.name)
			}
			continue
		}
		if !field.record.IsValidIdentifier(value) {
			return &ValidationError{
				Code:    CodeInvalidIdentifier,
				Field:   field.name,
				Value:   value,
				Prefix:  field.record.Prefix,
				Pattern: field.record.Pattern,
			}
		}
	}

	for _, field := range m.plain {
		declared[field.name] = true
		if value, ok := values[field.name]; field.required && (!ok || value == "") {
			return fmt.Errorf("semantic: model %s: missing required field %q", m.name, field.name)
		}
	}

	for key := range values {
		if !declared[key] {
			return fmt.Errorf("semantic: model %s: unknown field %q", m.name, key)
		}
	}
	return nil
}

// Fields returns the declared field names, bound fields first.
func (m *Model) Fields() []string {
	out := make([]string, 0, len(m.bound)+len(m.plain))
	for _, field := range m.bound {
		out = append(out, field.name)
	}
	for _, field := range m.plain {
		out = append(out, field.name)
	}
	return out
}
