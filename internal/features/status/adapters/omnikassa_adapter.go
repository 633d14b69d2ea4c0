package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"omnikassa-status/internal/core/config"
	"omnikassa-status/internal/core/httpclient"
	"omnikassa-status/internal/core/logger"
	"omnikassa-status/internal/core/proxy"
	"omnikassa-status/internal/features/status/domain"

	"go.uber.org/zap"
)

// StatusEndpointPath is appended verbatim to the configured base URL.
const StatusEndpointPath = "/order/server/api/events/results/merchant.order.status.changed"

// maxErrorBodyLen caps how much of a non-2xx body is kept on UnexpectedStatusError.
const maxErrorBodyLen = 512

// OmnikassaAdapter implements the StatusProvider interface against the Omnikassa REST API.
type OmnikassaAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the gateway root, e.g. https://betalen.rabobank.nl/omnikassa-api.
	baseURL string
	logger  *zap.Logger
}

// NewOmnikassaAdapter creates a new OmnikassaAdapter with a timeout-bounded client.
func NewOmnikassaAdapter(cfg config.OmnikassaConfig, proxySettings proxy.Settings) *OmnikassaAdapter {
	return &OmnikassaAdapter{
		client:  httpclient.NewClient(cfg.Timeout(), proxySettings),
		baseURL: cfg.URL,
		logger:  logger.Named("omnikassa"),
	}
}

// EndpointURL returns the status endpoint for the configured base URL.
func (a *OmnikassaAdapter) EndpointURL() string {
	return a.baseURL + StatusEndpointPath
}

// FetchStatus requests the order status with the notification token as bearer credential
// and decodes the body as a generic JSON object.
func (a *OmnikassaAdapter) FetchStatus(ctx context.Context, token string) (domain.StatusDocument, error) {
	endpoint := a.EndpointURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{URL: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		a.logger.Warn("Omnikassa returned unexpected status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("url", endpoint),
		)
		return nil, &domain.UnexpectedStatusError{
			StatusCode: resp.StatusCode,
			Body:       truncate(body, maxErrorBodyLen),
		}
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &domain.DecodeError{Err: err}
	}

	doc, ok := payload.(map[string]interface{})
	if !ok {
		return nil, &domain.ShapeError{Path: "$", Reason: "not an object"}
	}

	a.logger.Debug("Order status fetched", zap.String("url", endpoint))

	return domain.StatusDocument(doc), nil
}

func truncate(body []byte, n int) string {
	if len(body) > n {
		return string(body[:n])
	}
	return string(body)
}
