// Package http holds HTTP plumbing shared by the server and the storefront client.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client with a total request timeout and bounded
// dial and TLS handshake times. http.DefaultClient has no timeout at all.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
