package scholar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrNoMatch is returned when the query service has no entity for the
// requested identifier. The upstream silently returns an empty result set in
// that case, so the client makes the condition explicit instead of reading
// past the end of the rows.
var ErrNoMatch = errors.New("scholar: no match found")

// sparqlFormat selects a researcher's cross-references by ORCID. Variable
// names match the Scholar model field names so rows map positionally onto the
// model. The identifier is validated against the orcid pattern before it is
// interpolated.
const sparqlFormat = `SELECT * WHERE {
  VALUES ?orcid { "%s" }
  ?entity wdt:P496 ?orcid ;
          rdfs:label ?name .
  FILTER (lang(?name) = 'en')
  OPTIONAL { ?entity wdt:P2037 ?github . }
  OPTIONAL { ?entity wdt:P1153 ?scopus . }
  OPTIONAL { ?entity wdt:P3829 ?publons . }
  OPTIONAL { ?entity wdt:P7671 ?semion . }
  OPTIONAL { ?entity wdt:P2456 ?dblp . }
  OPTIONAL { ?entity wdt:P1053 ?wos . }
  OPTIONAL { ?entity wdt:P5039 ?authorea . }
}
LIMIT 1
`

type sparqlResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// Client performs the single outbound lookup against the SPARQL endpoint.
// One synchronous call per request; no retries, no caching.
type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient builds a Client from a prepared Options value.
func NewClient(opts Options) *Client {
	opts = NewOptions(func(o *Options) { *o = opts })
	return &Client{
		httpClient: opts.HTTPClient,
		endpoint:   opts.Endpoint,
		timeout:    opts.Timeout,
		logger:     opts.Logger,
	}
}

// ScholarByORCID queries the knowledge base for the researcher with the given
// ORCID and maps the first result row onto a Scholar. Transport failures
// propagate; an empty result set returns ErrNoMatch.
func (c *Client) ScholarByORCID(ctx context.Context, orcid string) (Scholar, error) {
	if c == nil {
		return Scholar{}, errors.New("scholar: client is nil")
	}

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	query := url.Values{}
	query.Set("query", fmt.Sprintf(sparqlFormat, orcid))
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return Scholar{}, fmt.Errorf("scholar: build query request: %w", err)
	}
	req.Header.Set("Accept", "application/sparql-results+json")

	c.logger.Debug("querying sparql endpoint", "endpoint", c.endpoint, "orcid", orcid)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Scholar{}, fmt.Errorf("scholar: query %s: %w", c.endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Scholar{}, fmt.Errorf("scholar: query %s: unexpected status %s", c.endpoint, resp.Status)
	}

	var payload sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Scholar{}, fmt.Errorf("scholar: decode query response: %w", err)
	}

	if len(payload.Results.Bindings) == 0 {
		return Scholar{}, ErrNoMatch
	}

	row := make(map[string]string, len(payload.Results.Bindings[0]))
	for key, cell := range payload.Results.Bindings[0] {
		row[key] = cell.Value
	}

	c.logger.Debug("mapped sparql row", "orcid", orcid, "columns", len(row))
	return scholarFromRow(row), nil
}
