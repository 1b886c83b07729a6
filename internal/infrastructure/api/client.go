package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBasePath = "/api/v1"

// RequestObserver receives one callback per completed (or failed) request.
type RequestObserver interface {
	ObserveRequest(operation string, statusCode int, duration time.Duration, err error)
}

// Client talks to the document-management backend. All operations normalize
// failures into the domain error taxonomy; none of them retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	observer   RequestObserver
}

// Options tune the client. The zero value is usable.
type Options struct {
	// HTTPClient overrides the default client (30s timeout).
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	// RateLimit caps outbound requests per second; zero disables limiting.
	RateLimit rate.Limit
	// RateBurst is the limiter burst; defaults to 1 when limiting is on.
	RateBurst int

	Logger   *slog.Logger
	Observer RequestObserver
}

// New builds a client for a backend base URL such as
// "http://localhost:8080". The /api/v1 prefix is appended here.
func New(baseURL string, options Options) *Client {
	httpClient := options.HTTPClient
	if httpClient == nil {
		timeout := options.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if options.RateLimit > 0 {
		burst := options.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(options.RateLimit, burst)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + defaultBasePath,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
		observer:   options.Observer,
	}
}
