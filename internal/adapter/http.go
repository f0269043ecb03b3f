package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	signInPath  = "/api/auth/signin"
	refreshPath = "/api/auth/refresh"

	traceIDHeader = "X-Trace-ID"
)

// publicEndpoints never raise the unauthorized notification. A 401 there
// means bad credentials or a dead refresh token.
var publicEndpoints = map[string]struct{}{
	signInPath:  {},
	refreshPath: {},
}

// UnauthorizedHandler is notified once for every 401 received on a
// non-public endpoint. err is an [*UnauthorizedError].
type UnauthorizedHandler func(err error)

// HTTPGateway issues authenticated JSON requests against the metering API.
// It is safe for concurrent use.
type HTTPGateway struct {
	client  *utils.HTTPClient
	traceID *utils.UUIDGenerator

	mu             sync.RWMutex
	token          string
	onUnauthorized UnauthorizedHandler

	logger *logger.Logger
}

// NewHTTPGateway constructs an [HTTPGateway] for adapterCfg.HTTPAddress.
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPGateway(adapterCfg config.ClientAdapter, logger *logger.Logger) (*HTTPGateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	g := &HTTPGateway{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		traceID: utils.NewUUIDGenerator(),
		logger:  logger,
	}
	g.client.OnBeforeRequest(g.decorateRequest)

	return g, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header of
// subsequent requests. An empty token stops sending the header.
func (g *HTTPGateway) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the gateway.
func (g *HTTPGateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// OnUnauthorized registers the single unauthorized handler, replacing any
// previous one. A nil handler disables notifications.
func (g *HTTPGateway) OnUnauthorized(handler UnauthorizedHandler) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onUnauthorized = handler
}

// Get issues GET path with the given query and decodes the body into out.
func (g *HTTPGateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues POST path with body encoded as JSON and decodes the response
// into out.
func (g *HTTPGateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues PUT path with body encoded as JSON.
func (g *HTTPGateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues PATCH path with body encoded as JSON.
func (g *HTTPGateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues DELETE path and decodes the response into out, if any.
func (g *HTTPGateway) Delete(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req := g.client.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		g.logger.Debug().
			Str("func", "HTTPGateway.do").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("request failed")

		if errors.Is(err, ErrUnauthorized) && !isPublicEndpoint(path) {
			g.notifyUnauthorized(&UnauthorizedError{Token: resp.Request.Token, Err: err})
		}
		return err
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecodeResponse, method, path, err)
	}

	return nil
}

func (g *HTTPGateway) notifyUnauthorized(err error) {
	g.mu.RLock()
	handler := g.onUnauthorized
	g.mu.RUnlock()

	if handler != nil {
		handler(err)
	}
}

// decorateRequest attaches the trace id and, outside the public endpoints,
// the bearer token.
func (g *HTTPGateway) decorateRequest(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(traceIDHeader) == "" {
		req.SetHeader(traceIDHeader, g.traceID.Generate())
	}

	if isPublicEndpoint(req.URL) {
		return nil
	}
	if token := g.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return nil
}

func isPublicEndpoint(path string) bool {
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	}
	_, ok := publicEndpoints[strings.TrimRight(path, "/")]
	return ok
}
