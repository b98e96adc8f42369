package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultHTTPTimeout = 30 * time.Second

// snapshotFile is the on-disk shape of a registry snapshot.
type snapshotFile struct {
	Records []Record `json:"records" yaml:"records"`
}

// LoaderOptions configures snapshot loading.
type LoaderOptions struct {
	// FS backs SourceKindFS sources.
	FS fs.FS
	// HTTPClient is used for URL sources. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// HTTPTimeout bounds URL fetches. Defaults to 30s; zero keeps the default,
	// negative disables the bound.
	HTTPTimeout time.Duration
}

// Loader reads registry snapshots from files, fs.FS entries, or URLs and
// builds Snapshot registries from them. Snapshots may be JSON or YAML.
type Loader struct {
	options LoaderOptions
}

// NewLoader constructs a Loader with the supplied options.
func NewLoader(options LoaderOptions) *Loader {
	if options.HTTPClient == nil {
		options.HTTPClient = http.DefaultClient
	}
	if options.HTTPTimeout == 0 {
		options.HTTPTimeout = defaultHTTPTimeout
	}
	return &Loader{options: options}
}

// Load fetches the snapshot payload identified by src and builds a Snapshot.
func (l *Loader) Load(ctx context.Context, src Source) (*Snapshot, error) {
	if l == nil {
		return nil, errors.New("registry loader: loader is nil")
	}
	if src == nil {
		return nil, errors.New("registry loader: source is required")
	}

	raw, err := l.fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func (l *Loader) fetch(ctx context.Context, src Source) ([]byte, error) {
	switch src.Kind() {
	case SourceKindFile:
		return l.loadFile(ctx, src.Location())
	case SourceKindFS:
		return l.loadFS(ctx, src.Location())
	case SourceKindURL:
		return l.loadURL(ctx, src.Location())
	default:
		return nil, fmt.Errorf("registry loader: unsupported source kind %q", src.Kind())
	}
}

func (l *Loader) loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("registry loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func (l *Loader) loadFS(ctx context.Context, name string) ([]byte, error) {
	if l.options.FS == nil {
		return nil, errors.New("registry loader: fs source requires LoaderOptions.FS")
	}
	if name == "" {
		return nil, errors.New("registry loader: fs entry name is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(l.options.FS, name)
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) ([]byte, error) {
	if rawURL == "" {
		return nil, errors.New("registry loader: url is required")
	}

	reqCtx := ctx
	if l.options.HTTPTimeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, l.options.HTTPTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.options.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("registry loader: unexpected status " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Parse decodes a snapshot payload (JSON or YAML) and builds a Snapshot.
// Payloads may be a {"records": [...]} document or a bare record list.
func Parse(raw []byte) (*Snapshot, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("registry loader: snapshot payload is empty")
	}

	var file snapshotFile
	var records []Record

	if trimmed[0] == '{' || trimmed[0] == '[' {
		var err error
		if trimmed[0] == '[' {
			err = json.Unmarshal(trimmed, &records)
		} else {
			err = json.Unmarshal(trimmed, &file)
			records = file.Records
		}
		if err != nil {
			return nil, fmt.Errorf("registry loader: decode json snapshot: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(trimmed, &file); err != nil {
			yamlErr := err
			if err := yaml.Unmarshal(trimmed, &records); err != nil {
				return nil, fmt.Errorf("registry loader: decode yaml snapshot: %w", yamlErr)
			}
		} else {
			records = file.Records
		}
	}

	if len(records) == 0 {
		return nil, errors.New("registry loader: snapshot contains no records")
	}
	return NewSnapshot(records)
}

// DetectFormat reports "json" or "yaml" for a snapshot location based on its
// extension, defaulting to json. Parse sniffs the payload itself; this is for
// callers that want to label a source before loading it.
func DetectFormat(location string) string {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
