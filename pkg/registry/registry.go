package registry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// WebURL is the public landing page for the registry; record links and error
// guidance are derived from it.
const WebURL = "https://bioregistry.io"

// Registry resolves prefixes to records. Implementations must treat input
// case-insensitively and return the canonical record for synonyms.
type Registry interface {
	Resolve(prefix string) (Record, error)
	Prefixes() []string
}

// Record is the metadata bundle for one registered prefix. Pattern, when
// present, is a regular expression over local identifiers with full-match
// semantics.
type Record struct {
	Prefix      string            `json:"prefix" yaml:"prefix"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Pattern     string            `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Examples    []string          `json:"examples,omitempty" yaml:"examples,omitempty"`
	Mappings    map[string]string `json:"mappings,omitempty" yaml:"mappings,omitempty"`
	Synonyms    []string          `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Homepage    string            `json:"homepage,omitempty" yaml:"homepage,omitempty"`

	re *regexp.Regexp
}

// Example returns the first example local identifier, or "" when the record
// carries none.
func (r Record) Example() string {
	if len(r.Examples) == 0 {
		return ""
	}
	return r.Examples[0]
}

// URI returns the registry entry page for this record.
func (r Record) URI() string {
	return WebURL + "/" + r.Prefix
}

// IsValidIdentifier reports whether localID is a valid local identifier for
// this record. Matching is exact, never substring. Records without a pattern
// accept any non-empty value.
func (r Record) IsValidIdentifier(localID string) bool {
	if localID == "" {
		return false
	}
	if r.re == nil {
		return r.Pattern == ""
	}
	return r.re.MatchString(localID)
}

// NotFoundError is returned when a prefix does not resolve. It is a
// caller-configuration error when raised at field-declaration time, so the
// message points at the registry's lookup and submission channels.
type NotFoundError struct {
	Prefix string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"registry: prefix %q is not registered; check the registry at %s/registry for the correct spelling, or submit a new prefix request at https://github.com/biopragmatics/bioregistry/issues",
		e.Prefix, WebURL,
	)
}

// IsNotFound reports whether err signals an unresolvable prefix.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// normalize canonicalises lookup keys: resolution is case-insensitive and
// tolerant of surrounding whitespace.
func normalize(prefix string) string {
	return strings.ToLower(strings.TrimSpace(prefix))
}
