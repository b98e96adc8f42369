package scholar

import (
	"github.com/goliatone/go-semfield/pkg/registry"
	"github.com/goliatone/go-semfield/pkg/semantic"
)

// Scholar is a researcher who might hold identifiers on several services.
// Only orcid and name are guaranteed; the cross-reference fields are absent
// when Wikidata has no statement for them.
type Scholar struct {
	ORCID    string `json:"orcid"`
	Name     string `json:"name"`
	GitHub   string `json:"github,omitempty"`
	Scopus   string `json:"scopus,omitempty"`
	Publons  string `json:"publons,omitempty"`
	Semion   string `json:"semion,omitempty"`
	DBLP     string `json:"dblp,omitempty"`
	WOS      string `json:"wos,omitempty"`
	Authorea string `json:"authorea,omitempty"`
}

// scholarBindings maps Scholar JSON fields onto registry prefixes. Fields
// whose name matches their prefix leave Prefix empty.
func scholarBindings() []semantic.ModelBinding {
	return []semantic.ModelBinding{
		{Field: "orcid", Required: true},
		{Field: "github"},
		{Field: "scopus"},
		{Field: "publons", Prefix: "publons.researcher"},
		{Field: "semion"},
		{Field: "dblp", Prefix: "dblp.author"},
		{Field: "wos", Prefix: "wos.researcher"},
		{Field: "authorea", Prefix: "authorea.author"},
	}
}

// NewScholarModel builds the bound schema for Scholar against reg. Failure
// means the registry is missing a prefix the model depends on, which is a
// configuration error surfaced at startup.
func NewScholarModel(reg registry.Registry) (*semantic.Model, error) {
	return semantic.BuildModel(reg, "Scholar", scholarBindings(),
		semantic.WithPlainFieldExample("name", true, "Charles Tapley Hoyt"),
	)
}

// values flattens the scholar into the map shape consumed by Model.Validate.
// Empty optional fields are omitted so they read as absent.
func (s Scholar) values() map[string]string {
	out := map[string]string{
		"orcid": s.ORCID,
		"name":  s.Name,
	}
	optional := map[string]string{
		"github":   s.GitHub,
		"scopus":   s.Scopus,
		"publons":  s.Publons,
		"semion":   s.Semion,
		"dblp":     s.DBLP,
		"wos":      s.WOS,
		"authorea": s.Authorea,
	}
	for key, value := range optional {
		if value != "" {
			out[key] = value
		}
	}
	return out
}

// scholarFromRow maps a SPARQL result row onto a Scholar. Row keys follow the
// query's variable names, which match the model field names.
func scholarFromRow(row map[string]string) Scholar {
	return Scholar{
		ORCID:    row["orcid"],
		Name:     row["name"],
		GitHub:   row["github"],
		Scopus:   row["scopus"],
		Publons:  row["publons"],
		Semion:   row["semion"],
		DBLP:     row["dblp"],
		WOS:      row["wos"],
		Authorea: row["authorea"],
	}
}
