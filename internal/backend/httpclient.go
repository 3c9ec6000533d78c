package backend

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserAgent is sent with every request; the version is filled in by the CLI.
var UserAgent = "fitdash-cli/dev"

// HTTP implements API over REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://fit.example.com")
	baseURL string
	// endpoints contains the URL paths for the API endpoints
	endpoints Endpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

var _ API = (*HTTP)(nil)

// New creates an HTTP API client with the given base URL, endpoints and timeout.
// A non-positive timeout uses 10 seconds.
func New(baseURL string, endpoints Endpoints, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client: &http.Client{
			Timeout:   timeout,
			Transport: &standardHeaders{base: http.DefaultTransport},
		},
	}
}

// url joins the base URL with an endpoint path.
func (h *HTTP) url(path string) string {
	return h.baseURL + path
}

// standardHeaders decorates every outgoing request with the CLI's
// User-Agent and a fresh X-Request-ID.
type standardHeaders struct {
	base http.RoundTripper
}

func (t *standardHeaders) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", UserAgent)
	}
	if r.Header.Get("X-Request-ID") == "" {
		r.Header.Set("X-Request-ID", uuid.NewString())
	}
	if r.Header.Get("Accept") == "" {
		r.Header.Set("Accept", "application/json")
	}
	return t.base.RoundTrip(r)
}
