package semantic

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-semfield/pkg/registry"
)

var (
	descPolicyOnce sync.Once
	descPolicy     *bluemonday.Policy
)

// descriptionSanitizer returns the policy applied to registry-sourced free
// text before it is embedded in field descriptions. Registry descriptions may
// carry basic formatting but must not inject scripts or event handlers into
// generated documentation pages.
func descriptionSanitizer() *bluemonday.Policy {
	descPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("p", "i", "em", "b", "strong", "code", "sub", "sup", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		descPolicy = policy
	})
	return descPolicy
}

// Describe renders the HTML description snippet attached to annotated fields:
// a provenance statement linking the registry entry, followed by the record's
// own description of the semantic space.
func Describe(rec registry.Record) string {
	name := html.EscapeString(rec.Name)
	prefix := html.EscapeString(rec.Prefix)
	description := strings.TrimSpace(descriptionSanitizer().Sanitize(rec.Description))

	var b strings.Builder
	fmt.Fprintf(&b, "<p>This field corresponds to a local unique identifier from <i>%s</i>.</p>", name)
	b.WriteString("<h4>Provenance</h4>")
	fmt.Fprintf(&b,
		"<p>The semantics of this field are derived from the <a href=%q><code>%s</code></a> entry in the <a href=%q>Bioregistry</a>: a registry of semantic web and linked open data compact URI (CURIE) prefixes and URI prefixes.</p>",
		rec.URI(), prefix, registry.WebURL,
	)
	if description != "" {
		b.WriteString("<h4>Description of Semantic Space</h4>")
		b.WriteString(description)
	}
	return b.String()
}
