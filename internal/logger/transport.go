package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Transport is an http.RoundTripper that logs every outbound gateway request.
// Only method, host, path, status and duration are logged; bodies carry
// credentials and card data and never reach the log.
type Transport struct {
	Base http.RoundTripper
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	log := FromCtx(r.Context())

	resp, err := t.base().RoundTrip(r)

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("host", r.URL.Host),
		zap.String("path", r.URL.Path),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		log.Warn("outgoing request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	log.Debug("outgoing request", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}
