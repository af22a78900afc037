// Package httpclient builds the HTTP client used to reach the course-listing service.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// Config holds transport and request timeouts.
type Config struct {
	// Timeout bounds the whole request, including reading the body.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// DefaultConfig returns timeouts suited to a single interactive fetch.
func DefaultConfig() Config {
	return Config{
		Timeout:             10 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
	}
}

// WithTimeout returns a copy of cfg whose overall and header timeouts are
// capped at timeout. Non-positive values leave cfg unchanged.
func (cfg Config) WithTimeout(timeout time.Duration) Config {
	if timeout <= 0 {
		return cfg
	}
	cfg.Timeout = timeout
	if cfg.ResponseHeader > timeout {
		cfg.ResponseHeader = timeout
	}
	if cfg.DialTimeout > timeout {
		cfg.DialTimeout = timeout
	}
	return cfg
}

// New builds an *http.Client from cfg.
func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
