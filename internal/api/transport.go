package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/johanforsgren/tokendash/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// LoggingTransport wraps an http.RoundTripper, tags every request with a
// request ID and writes one log line per request and per response.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func NewLoggingTransport(transport http.RoundTripper) *LoggingTransport {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &LoggingTransport{
		Transport: transport,
	}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(requestIDHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(requestIDHeader, uuid.NewString())
	}
	id := req.Header.Get(requestIDHeader)

	logger.LogHTTP("%s -> %s %s headers={%s} body=%d bytes",
		id, req.Method, req.URL.Redacted(), formatHeaders(req.Header), req.ContentLength)

	start := time.Now()
	resp, err := t.Transport.RoundTrip(req)
	duration := time.Since(start).Round(time.Millisecond)

	if err != nil {
		logger.LogError("HTTP_REQUEST", fmt.Sprintf("%s %s %s", id, req.Method, req.URL.Path), err)
		return nil, err
	}

	logger.LogHTTP("%s <- %s %s %s (%v)", id, req.Method, req.URL.Path, resp.Status, duration)
	return resp, nil
}

func formatHeaders(header http.Header) string {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		value := strings.Join(header[name], ",")
		if isSensitiveHeader(name) {
			value = "[REDACTED]"
		}
		parts = append(parts, name+": "+value)
	}
	return strings.Join(parts, "; ")
}

func isSensitiveHeader(name string) bool {
	switch strings.ToLower(name) {
	case "authorization", "x-api-key", "api-key", "x-auth-token", "cookie", "set-cookie":
		return true
	}
	return false
}
