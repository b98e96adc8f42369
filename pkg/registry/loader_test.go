package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

const jsonSnapshot = `{
  "records": [
    {"prefix": "orcid", "name": "ORCID", "pattern": "\\d{4}-\\d{4}-\\d{4}-\\d{3}(\\d|X)"},
    {"prefix": "github", "name": "GitHub"}
  ]
}`

const yamlSnapshot = `records:
  - prefix: orcid
    name: ORCID
    pattern: '\d{4}-\d{4}-\d{4}-\d{3}(\d|X)'
    examples:
      - 0000-0003-4423-4370
  - prefix: github
    name: GitHub
`

func TestParseJSONAndYAML(t *testing.T) {
	for name, payload := range map[string]string{
		"json": jsonSnapshot,
		"yaml": yamlSnapshot,
	} {
		snap, err := Parse([]byte(payload))
		if err != nil {
			t.Fatalf("%s: parse: %v", name, err)
		}
		if snap.Len() != 2 {
			t.Fatalf("%s: expected 2 records, got %d", name, snap.Len())
		}
		rec, err := snap.Resolve("ORCID")
		if err != nil {
			t.Fatalf("%s: resolve: %v", name, err)
		}
		if !rec.IsValidIdentifier("0000-0003-4423-4370") {
			t.Fatalf("%s: expected pattern to survive the round trip", name)
		}
	}
}

func TestParseBareRecordList(t *testing.T) {
	snap, err := Parse([]byte(`[{"prefix": "go", "name": "Gene Ontology"}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if snap.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", snap.Len())
	}
}

func TestParseRejectsEmptyAndGarbage(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := Parse([]byte(`{"records": []}`)); err == nil {
		t.Fatal("expected error for empty record list")
	}
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestLoaderFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.yaml")
	if err := os.WriteFile(path, []byte(yamlSnapshot), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewLoader(LoaderOptions{})
	snap, err := loader.Load(context.Background(), SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", snap.Len())
	}
}

func TestLoaderFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"registry/snapshot.json": &fstest.MapFile{Data: []byte(jsonSnapshot)},
	}

	loader := NewLoader(LoaderOptions{FS: fsys})
	snap, err := loader.Load(context.Background(), SourceFromFS("registry/snapshot.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := snap.Resolve("github"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
}

func TestLoaderFSSourceRequiresFS(t *testing.T) {
	loader := NewLoader(LoaderOptions{})
	if _, err := loader.Load(context.Background(), SourceFromFS("snapshot.json")); err == nil {
		t.Fatal("expected error when LoaderOptions.FS is unset")
	}
}

func TestLoaderURLSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(jsonSnapshot))
	}))
	defer srv.Close()

	loader := NewLoader(LoaderOptions{HTTPClient: srv.Client()})
	snap, err := loader.Load(context.Background(), SourceFromURL(srv.URL+"/snapshot.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", snap.Len())
	}
}

func TestLoaderURLSourceRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	loader := NewLoader(LoaderOptions{HTTPClient: srv.Client()})
	if _, err := loader.Load(context.Background(), SourceFromURL(srv.URL)); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestDetectFormat(t *testing.T) {
	if got := DetectFormat("snapshot.yaml"); got != "yaml" {
		t.Fatalf("expected yaml, got %q", got)
	}
	if got := DetectFormat("snapshot.yml"); got != "yaml" {
		t.Fatalf("expected yaml, got %q", got)
	}
	if got := DetectFormat("snapshot.json"); got != "json" {
		t.Fatalf("expected json, got %q", got)
	}
	if got := DetectFormat("https://example.org/registry"); got != "json" {
		t.Fatalf("expected json fallback, got %q", got)
	}
}
