package httpclient

import (
	"net/http"
	"strings"
	"time"

	"omnikassa-status/internal/core/logger"
	"omnikassa-status/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs outbound requests without exposing credentials.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient")

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.String("auth_scheme", authScheme(req.Header.Get("Authorization"))),
	}

	log.Debug("HTTP Request Started", fields...)

	resp, err := lrt.Proxied.RoundTrip(req)

	fields = append(fields, zap.Duration("duration", time.Since(start)))

	if err != nil {
		log.Error("HTTP Request Failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	log.Debug("HTTP Request Completed", append(fields, zap.Int("status_code", resp.StatusCode))...)

	return resp, nil
}

// authScheme returns the scheme part of an Authorization header value.
func authScheme(header string) string {
	if header == "" {
		return "none"
	}
	scheme, _, _ := strings.Cut(header, " ")
	return scheme
}

// NewClient returns an http.Client with logging middleware and a bounded timeout.
// Requests go through the proxy described by settings when one is configured.
func NewClient(timeout time.Duration, settings proxy.Settings) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if u := settings.URL(); u != nil {
		transport.Proxy = http.ProxyURL(u)
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: transport,
		},
		Timeout: timeout,
	}
}
