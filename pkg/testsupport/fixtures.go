// Package testsupport provides deterministic fixtures shared by tests across
// the module, chiefly a small registry snapshot so tests never depend on the
// full embedded data set.
package testsupport

import "github.com/goliatone/go-semfield/pkg/registry"

// FixtureRecords returns the record definitions behind FixtureRegistry.
func FixtureRecords() []registry.Record {
	return []registry.Record{
		{
			Prefix:      "orcid",
			Name:        "Open Researcher and Contributor",
			Description: "ORCID provides a persistent digital identifier for researchers.",
			Pattern:     `\d{4}-\d{4}-\d{4}-\d{3}(\d|X)`,
			Examples:    []string{"0000-0003-4423-4370"},
			Mappings:    map[string]string{"wikidata": "P496", "miriam": "orcid"},
		},
		{
			Prefix:      "github",
			Name:        "GitHub",
			Description: "GitHub accounts are identified by a login handle.",
			Pattern:     `[0-9A-Za-z][0-9A-Za-z-]{0,38}`,
			Examples:    []string{"cthoyt"},
			Mappings:    map[string]string{"wikidata": "P2037"},
		},
		{
			Prefix:      "go",
			Name:        "Gene Ontology",
			Description: "A controlled vocabulary for gene and gene product attributes.",
			Pattern:     `\d{7}`,
			Examples:    []string{"0032571"},
			Synonyms:    []string{"gomf", "gocc", "gobp"},
			Mappings:    map[string]string{"wikidata": "P686", "obofoundry": "GO"},
		},
		{
			// No pattern and no examples, for edge-case coverage.
			Prefix: "sparse",
			Name:   "Sparse Registry Entry",
		},
	}
}

// FixtureRegistry returns a snapshot registry with a handful of well-known
// prefixes. The data is stable so tests can assert on exact values.
func FixtureRegistry() *registry.Snapshot {
	return registry.MustNewSnapshot(FixtureRecords())
}
