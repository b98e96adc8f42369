// Package scholar is the demonstration service for the semantic annotators:
// a single endpoint that resolves a researcher's cross-references from
// Wikidata given an ORCID identifier.
//
// The component validates the path parameter against the registry pattern for
// orcid, issues one SPARQL query against the public Wikidata query service,
// and maps the first result row onto the Scholar model. It also serves the
// OpenAPI document describing itself, built with the semantic annotators so
// every field carries the bioregistry extension block.
package scholar
