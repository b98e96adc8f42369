package semantic

import (
	"strings"

	"github.com/goliatone/go-semfield/pkg/registry"
)

// Prefix is a registered registry prefix in canonical casing.
type Prefix string

// CURIE is a compact URI of the form prefix:localIdentifier with the prefix
// in canonical casing.
type CURIE string

// ParsePrefix resolves raw against the registry, case-insensitively, and
// returns the canonical prefix. Unresolvable input yields a ValidationError.
func ParsePrefix(reg registry.Registry, raw string) (Prefix, error) {
	if reg == nil {
		return "", &ValidationError{Code: CodeInvalidPrefix, Value: raw}
	}
	rec, err := reg.Resolve(raw)
	if err != nil {
		return "", &ValidationError{Code: CodeInvalidPrefix, Value: raw}
	}
	return Prefix(rec.Prefix), nil
}

// ParseCURIE validates raw as prefix:localIdentifier. The string is split on
// the last colon; a string without a colon is treated as a local identifier
// with an empty prefix, which fails resolution. The local identifier must
// fully match the resolved record's pattern. On success the CURIE is
// reconstructed with the canonical prefix and the local identifier verbatim.
func ParseCURIE(reg registry.Registry, raw string) (CURIE, error) {
	prefix, localID := partitionCURIE(raw)

	if reg == nil {
		return "", &ValidationError{Code: CodeInvalidCURIE, Value: raw, Prefix: prefix}
	}
	rec, err := reg.Resolve(prefix)
	if err != nil {
		return "", &ValidationError{Code: CodeInvalidCURIE, Value: raw, Prefix: prefix}
	}
	if !rec.IsValidIdentifier(localID) {
		return "", &ValidationError{
			Code:    CodeInvalidCURIE,
			Value:   raw,
			Prefix:  rec.Prefix,
			Pattern: rec.Pattern,
		}
	}
	return CURIE(rec.Prefix + ":" + localID), nil
}

// partitionCURIE splits on the last colon, mirroring rpartition semantics:
// "a:b:c" becomes ("a:b", "c"), "abc" becomes ("", "abc").
func partitionCURIE(raw string) (prefix, localID string) {
	idx := strings.LastIndex(raw, ":")
	if idx < 0 {
		return "", raw
	}
	return raw[:idx], raw[idx+1:]
}

// Prefix returns the prefix portion of the CURIE.
func (c CURIE) Prefix() string {
	prefix, _ := partitionCURIE(string(c))
	return prefix
}

// LocalID returns the local identifier portion of the CURIE.
func (c CURIE) LocalID() string {
	_, localID := partitionCURIE(string(c))
	return localID
}

func (p Prefix) String() string { return string(p) }
func (c CURIE) String() string  { return string(c) }
