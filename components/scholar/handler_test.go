package scholar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testMux(t *testing.T, payload string, fns ...OptionFn) (*http.ServeMux, *httptest.Server) {
	t.Helper()
	srv := sparqlStub(t, payload)
	t.Cleanup(srv.Close)

	component, err := New(append([]OptionFn{
		WithEndpoint(srv.URL),
		WithHTTPClient(srv.Client()),
	}, fns...)...)
	if err != nil {
		t.Fatalf("new component: %v", err)
	}

	mux := http.NewServeMux()
	if _, err := component.RegisterRoutes(mux, ""); err != nil {
		t.Fatalf("register routes: %v", err)
	}
	return mux, srv
}

func TestHandlerReturnsScholar(t *testing.T) {
	mux, _ := testMux(t, sparqlRow)

	req := httptest.NewRequest(http.MethodGet, "/api/orcid/0000-0003-4423-4370", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var person Scholar
	if err := json.NewDecoder(rec.Body).Decode(&person); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if person.ORCID != "0000-0003-4423-4370" || person.Name != "Charles Tapley Hoyt" {
		t.Fatalf("unexpected payload: %#v", person)
	}
	if person.GitHub != "cthoyt" {
		t.Fatalf("expected github cross-reference, got %#v", person)
	}
}

func TestHandlerRejectsMalformedORCID(t *testing.T) {
	mux, _ := testMux(t, sparqlRow)

	req := httptest.NewRequest(http.MethodGet, "/api/orcid/0000-0003-4423-4370XXX", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var payload errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Pattern == "" {
		t.Fatal("expected the error to name the expected pattern")
	}
}

func TestHandlerNoMatchIs404(t *testing.T) {
	mux, _ := testMux(t, sparqlEmpty)

	req := httptest.NewRequest(http.MethodGet, "/api/orcid/0000-0003-4423-4370", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandlerUpstreamFailureIs502(t *testing.T) {
	mux, srv := testMux(t, sparqlRow)
	srv.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/orcid/0000-0003-4423-4370", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestHandlerMalformedRowIs502(t *testing.T) {
	// The row satisfies the query shape but carries an identifier that fails
	// the github pattern, so model validation rejects it.
	row := `{"results": {"bindings": [{
		"orcid": {"value": "0000-0003-4423-4370"},
		"name": {"value": "Charles Tapley Hoyt"},
		"github": {"value": "-starts-with-dash"}
	}]}}`
	mux, _ := testMux(t, row)

	req := httptest.NewRequest(http.MethodGet, "/api/orcid/0000-0003-4423-4370", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandlerGuardRejects(t *testing.T) {
	mux, _ := testMux(t, sparqlRow, WithGuard(func(r *http.Request) error {
		return StatusError{Code: http.StatusTeapot}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orcid/0000-0003-4423-4370", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected guard status to pass through, got %d", rec.Code)
	}
}

func TestRootRedirectsToDocs(t *testing.T) {
	mux, _ := testMux(t, sparqlRow)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/docs" {
		t.Fatalf("expected redirect to /docs, got %q", got)
	}
}

func TestDocsPageServed(t *testing.T) {
	mux, _ := testMux(t, sparqlRow)

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type: %q", ct)
	}
}

func TestMountPathUnderBase(t *testing.T) {
	srv := sparqlStub(t, sparqlRow)
	t.Cleanup(srv.Close)

	component, err := New(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new component: %v", err)
	}

	mux := http.NewServeMux()
	patterns, err := component.RegisterRoutes(mux, "/demo")
	if err != nil {
		t.Fatalf("register routes: %v", err)
	}
	want := "GET /demo/api/orcid/{orcid}"
	found := false
	for _, pattern := range patterns {
		if pattern == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q in %v", want, patterns)
	}

	req := httptest.NewRequest(http.MethodGet, "/demo/api/orcid/0000-0003-4423-4370", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 under base path, got %d", rec.Code)
	}
}
