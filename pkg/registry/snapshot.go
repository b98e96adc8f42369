package registry

import (
	"fmt"
	"regexp"
	"sort"
)

// Snapshot is an in-memory Registry built from a fixed set of records.
// Construction compiles every pattern up front so malformed registry data
// fails at build time rather than on the first lookup.
type Snapshot struct {
	records map[string]Record
	index   map[string]string
}

// NewSnapshot builds a Snapshot from record definitions. Prefixes and
// synonyms are indexed case-insensitively; the canonical casing is whatever
// the record declares. Duplicate keys and empty prefixes are rejected.
func NewSnapshot(records []Record) (*Snapshot, error) {
	s := &Snapshot{
		records: make(map[string]Record, len(records)),
		index:   make(map[string]string, len(records)),
	}

	for i, rec := range records {
		key := normalize(rec.Prefix)
		if key == "" {
			return nil, fmt.Errorf("registry: record %d has an empty prefix", i)
		}
		if _, dup := s.records[key]; dup {
			return nil, fmt.Errorf("registry: duplicate prefix %q", rec.Prefix)
		}
		if rec.Pattern != "" {
			re, err := regexp.Compile(`\A(?:` + rec.Pattern + `)\z`)
			if err != nil {
				return nil, fmt.Errorf("registry: prefix %q has an invalid pattern: %w", rec.Prefix, err)
			}
			rec.re = re
		}

		s.records[key] = rec
		s.index[key] = key
		for _, synonym := range rec.Synonyms {
			syn := normalize(synonym)
			if syn == "" || syn == key {
				continue
			}
			if existing, dup := s.index[syn]; dup && existing != key {
				return nil, fmt.Errorf("registry: synonym %q of %q collides with %q", synonym, rec.Prefix, existing)
			}
			s.index[syn] = key
		}
	}

	return s, nil
}

// MustNewSnapshot panics when construction fails. Useful for fixtures.
func MustNewSnapshot(records []Record) *Snapshot {
	s, err := NewSnapshot(records)
	if err != nil {
		panic(err)
	}
	return s
}

// Resolve looks up a prefix or synonym, case-insensitively, and returns the
// canonical record.
func (s *Snapshot) Resolve(prefix string) (Record, error) {
	if s == nil {
		return Record{}, &NotFoundError{Prefix: prefix}
	}
	key, ok := s.index[normalize(prefix)]
	if !ok {
		return Record{}, &NotFoundError{Prefix: prefix}
	}
	return s.records[key], nil
}

// Prefixes returns the canonical prefixes in sorted order.
func (s *Snapshot) Prefixes() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Prefix)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}
