package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public PokeAPI endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// defaultTimeout bounds a single request round trip.
	defaultTimeout = 30 * time.Second

	// Connection pool bounds. A single shared client is expected to be
	// reused across many logical requests.
	maxConnsPerHost     = 10
	maxIdleConnsPerHost = 5
	idleConnTimeout     = 90 * time.Second

	// defaultBatchLimit caps in-flight requests per GetMultiple call.
	defaultBatchLimit = 10
)

// Client is a PokeAPI client with lazy connection management, bounded
// retry on transient failures and a typed error taxonomy.
type Client struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	retry      RetryPolicy
	batchLimit int
	logger     zerolog.Logger

	mu         sync.Mutex
	httpClient *http.Client
}

// NewClient creates a new PokeAPI client. The connection is opened lazily
// on first use or by an explicit Start.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("pokeapi base URL is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	options := clientOptions{
		timeout:    defaultTimeout,
		userAgent:  "pokedex-mcp",
		retry:      DefaultRetryPolicy(),
		batchLimit: defaultBatchLimit,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL:    baseURL,
		timeout:    options.timeout,
		userAgent:  options.userAgent,
		retry:      options.retry,
		batchLimit: options.batchLimit,
		logger:     logger,
		httpClient: options.httpClient,
	}, nil
}

// Start opens the underlying HTTP connection pool. It is idempotent:
// calling it on a started client is a no-op.
func (c *Client) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient != nil {
		return
	}

	c.httpClient = &http.Client{
		Timeout: c.timeout,
		Transport: &http.Transport{
			MaxConnsPerHost:     maxConnsPerHost,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	}
	c.logger.Info().Str("base_url", c.baseURL).Msg("PokeAPI client started")
}

// Close releases the connection pool and clears the handle. It is
// idempotent and safe to call on a client that was never started. A
// subsequent request re-opens the pool.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient == nil {
		return
	}
	c.httpClient.CloseIdleConnections()
	c.httpClient = nil
	c.logger.Info().Msg("PokeAPI client closed")
}

// conn returns the HTTP client, starting it if needed.
func (c *Client) conn() *http.Client {
	c.mu.Lock()
	client := c.httpClient
	c.mu.Unlock()
	if client != nil {
		return client
	}
	c.Start()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.httpClient
}

// get issues a GET against base_url/endpoint with retry on transient
// failures and returns the raw response body.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	var body []byte
	err := doWithRetry(ctx, c.retry, c.logger, Retryable, func() error {
		var reqErr error
		body, reqErr = c.doRequest(ctx, endpoint)
		return reqErr
	})
	return body, err
}

// doRequest performs a single attempt and classifies the outcome into
// the error taxonomy.
func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	url := c.baseURL + "/" + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("url", url).Msg("Making PokeAPI request")

	resp, err := c.conn().Do(req)
	if err != nil {
		return nil, classifyTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindGeneric, Endpoint: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &APIError{Kind: KindNotFound, StatusCode: resp.StatusCode, Endpoint: endpoint}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &APIError{Kind: KindRateLimited, StatusCode: resp.StatusCode, Endpoint: endpoint}
	case resp.StatusCode >= 400:
		return nil, &APIError{Kind: KindGeneric, StatusCode: resp.StatusCode, Endpoint: endpoint, Body: string(body)}
	}

	return body, nil
}

// classifyTransportError maps network-level failures onto the taxonomy:
// timeouts are retryable Timeout errors, everything else is a retryable
// connection-level Generic error.
func classifyTransportError(endpoint string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &APIError{Kind: KindTimeout, Endpoint: endpoint, Err: err}
	}
	return &APIError{Kind: KindGeneric, Endpoint: endpoint, Err: err}
}

// GetPokemon fetches a Pokemon by name or numeric ID. Identifiers are
// lower-cased before the request.
func (c *Client) GetPokemon(ctx context.Context, identifier string) (*Pokemon, error) {
	endpoint := "pokemon/" + strings.ToLower(strings.TrimSpace(identifier))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	pokemon, err := decodePokemon(endpoint, body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("name", pokemon.Name).Int("id", pokemon.ID).Msg("Fetched Pokemon")
	return pokemon, nil
}

// GetSpecies fetches species classification data by name or numeric ID.
func (c *Client) GetSpecies(ctx context.Context, identifier string) (*Species, error) {
	endpoint := "pokemon-species/" + strings.ToLower(strings.TrimSpace(identifier))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	species, err := decodeSpecies(endpoint, body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("name", species.Name).Int("id", species.ID).Msg("Fetched Pokemon species")
	return species, nil
}

// Search returns one page of the Pokemon index. Limit and offset are
// passed through unvalidated; the upstream is authoritative and rejects
// bad ranges with a Generic error.
func (c *Client) Search(ctx context.Context, limit, offset int) (*SearchResult, error) {
	endpoint := fmt.Sprintf("pokemon?limit=%d&offset=%d", limit, offset)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	result, err := decodeSearchResult(endpoint, body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", result.Count).Int("returned", len(result.Results)).Msg("Pokemon search completed")
	return result, nil
}

// GetTypeInfo fetches raw type data, including damage relations. The
// shape is consumed only for display, so it stays an untyped mapping.
func (c *Client) GetTypeInfo(ctx context.Context, typeName string) (map[string]any, error) {
	endpoint := "type/" + strings.ToLower(strings.TrimSpace(typeName))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}

	return data, nil
}
