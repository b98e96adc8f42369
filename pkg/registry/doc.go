// Package registry models the Bioregistry lookup capability consumed by the
// semantic annotators: a prefix resolves to a Record carrying display name,
// description, validation pattern, examples, and cross-registry mappings.
//
// The package ships an embedded snapshot of the registry data it needs by
// default, and a Loader that can read larger snapshots from files, fs.FS
// entries, or URLs in JSON or YAML form. Callers that need different data
// (fixtures, private registries) implement the Registry interface directly.
package registry
