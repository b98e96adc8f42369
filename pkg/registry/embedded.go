package registry

import (
	"embed"
	"sync"
)

//go:embed data/bioregistry_snapshot.json
var dataFS embed.FS

const defaultSnapshotPath = "data/bioregistry_snapshot.json"

var (
	defaultOnce     sync.Once
	defaultSnapshot *Snapshot
	defaultErr      error
)

// Default returns the registry built from the embedded snapshot. The snapshot
// is parsed once and shared; Snapshot is read-only after construction so the
// shared value is safe for concurrent use.
func Default() (*Snapshot, error) {
	defaultOnce.Do(func() {
		raw, err := dataFS.ReadFile(defaultSnapshotPath)
		if err != nil {
			defaultErr = err
			return
		}
		defaultSnapshot, defaultErr = Parse(raw)
	})
	return defaultSnapshot, defaultErr
}

// MustDefault panics when the embedded snapshot cannot be parsed. The data is
// embedded at build time, so a failure here is a packaging defect.
func MustDefault() *Snapshot {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}
