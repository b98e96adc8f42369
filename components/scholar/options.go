package scholar

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/goliatone/go-semfield/pkg/registry"
)

// DefaultEndpoint is the public Wikidata SPARQL query service.
const DefaultEndpoint = "https://query.wikidata.org/sparql"

const (
	defaultRoutePath = "/api/orcid/{orcid}"
	defaultTimeout   = 3 * time.Second
)

// GuardFunc can reject a request before any upstream work happens. Returning
// an error that satisfies HTTPError controls the status code.
type GuardFunc func(r *http.Request) error

type Options struct {
	// RoutePath is the ServeMux pattern for the lookup endpoint. It must
	// contain an {orcid} segment.
	RoutePath string
	// Endpoint is the SPARQL query service URL.
	Endpoint string
	// Timeout bounds the outbound query. There is no retry; a hung upstream
	// call is bounded only by this value.
	Timeout time.Duration
	// HTTPClient issues the outbound query. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Registry resolves the prefixes the Scholar model binds. Defaults to the
	// embedded snapshot.
	Registry registry.Registry
	// Guard, when set, runs before each lookup.
	Guard GuardFunc
	// Logger receives outbound call logging. Defaults to slog.Default().
	Logger *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath: defaultRoutePath,
		Endpoint:  DefaultEndpoint,
		Timeout:   defaultTimeout,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithEndpoint(endpoint string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Endpoint = endpoint
	}
}

func WithTimeout(timeout time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}

func WithRegistry(reg registry.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Registry = reg
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
