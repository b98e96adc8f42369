// Package semantic annotates OpenAPI schemas and request parameters with
// metadata resolved from a registry of semantic identifier prefixes: display
// name, description, validation pattern, example values, and a "bioregistry"
// vendor extension carrying the canonical prefix and cross-registry mappings.
//
// The package also provides value-level validation: Prefix and CURIE parsing
// with canonicalisation, and bound models that resolve field-name to prefix
// bindings once at construction time and validate values against the
// resolved patterns afterwards.
//
// Every entry point takes a registry.Registry so callers can substitute a
// fixture registry in tests; the module root wraps these with the embedded
// default snapshot.
package semantic
