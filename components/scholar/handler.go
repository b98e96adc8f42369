package scholar

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-semfield/pkg/registry"
	"github.com/goliatone/go-semfield/pkg/semantic"
)

// HTTPError lets guard errors carry their own status code.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError wraps an error with an HTTP status code.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type errorResponse struct {
	Error   string `json:"error"`
	Pattern string `json:"pattern,omitempty"`
}

// api holds the request-independent state: the resolved orcid record, the
// bound Scholar model, and the upstream client. All registry resolution
// happens here, at construction, never per request.
type api struct {
	opts   Options
	orcid  registry.Record
	model  *semantic.Model
	client *Client
}

func newAPI(opts Options) (*api, error) {
	opts = NewOptions(func(o *Options) { *o = opts })

	reg := opts.Registry
	if reg == nil {
		snapshot, err := registry.Default()
		if err != nil {
			return nil, err
		}
		reg = snapshot
	}
	opts.Registry = reg

	orcidRecord, err := reg.Resolve("orcid")
	if err != nil {
		return nil, err
	}
	model, err := NewScholarModel(reg)
	if err != nil {
		return nil, err
	}

	return &api{
		opts:   opts,
		orcid:  orcidRecord,
		model:  model,
		client: NewClient(opts),
	}, nil
}

// NewHandler builds the lookup handler with default options plus any
// overrides. Registry resolution failures are declaration-time configuration
// errors, so they panic: the service must not come up with a broken schema.
func NewHandler(fns ...OptionFn) http.Handler {
	a, err := newAPI(NewOptions(fns...))
	if err != nil {
		panic(err)
	}
	return a.lookupHandler()
}

func (a *api) lookupHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if a.opts.Guard != nil {
			if err := a.opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		orcid := r.PathValue("orcid")
		if !a.orcid.IsValidIdentifier(orcid) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:   "invalid orcid identifier: " + orcid,
				Pattern: a.orcid.Pattern,
			})
			return
		}

		person, err := a.client.ScholarByORCID(r.Context(), orcid)
		if err != nil {
			a.writeLookupError(w, orcid, err)
			return
		}

		if err := a.model.Validate(person.values()); err != nil {
			a.opts.Logger.Warn("upstream row failed model validation", "orcid", orcid, "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream returned a malformed record"})
			return
		}

		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSON(w, http.StatusOK, person)
	})
}

func (a *api) writeLookupError(w http.ResponseWriter, orcid string, err error) {
	if errors.Is(err, ErrNoMatch) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no researcher found for orcid " + orcid})
		return
	}
	a.opts.Logger.Error("sparql lookup failed", "orcid", orcid, "error", err)
	writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream query failed"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
