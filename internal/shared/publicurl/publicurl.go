// Package publicurl builds fully-addressable URLs for stored asset paths.
package publicurl

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultProfilePhoto is served when a user never uploaded a photo.
const DefaultProfilePhoto = "imagenes/perfil-default.png"

// BaseURL returns "<scheme>://<host>" of the request from its TLS state and
// Host header. Forwarded headers are ignored.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// Source decides the public base URL of incoming requests.
// A fixed URL wins. Otherwise X-Forwarded-Proto and X-Forwarded-Host are
// honored only when the direct peer is a trusted proxy.
type Source struct {
	fixed   string
	proxies []string
	trusted []netip.Prefix
}

// NewSource parses trustedProxies as IPs or CIDRs.
func NewSource(fixed string, trustedProxies []string) (*Source, error) {
	s := &Source{fixed: strings.TrimRight(strings.TrimSpace(fixed), "/")}
	if s.fixed != "" && !IsAbsolute(s.fixed) {
		return nil, fmt.Errorf("public base url %q must start with http:// or https://", fixed)
	}
	for _, p := range trustedProxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		prefix, err := parsePrefix(p)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", p, err)
		}
		s.proxies = append(s.proxies, p)
		s.trusted = append(s.trusted, prefix)
	}
	return s, nil
}

func parsePrefix(p string) (netip.Prefix, error) {
	if strings.Contains(p, "/") {
		return netip.ParsePrefix(p)
	}
	addr, err := netip.ParseAddr(p)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// TrustedProxies returns the accepted proxy list as configured.
func (s *Source) TrustedProxies() []string {
	return s.proxies
}

// BaseURL returns the public base URL for r.
func (s *Source) BaseURL(r *http.Request) string {
	if s.fixed != "" {
		return s.fixed
	}
	base := BaseURL(r)
	if !s.fromTrustedProxy(r) {
		return base
	}
	scheme, host, _ := strings.Cut(base, "://")
	if p := firstValue(r.Header.Get("X-Forwarded-Proto")); p == "http" || p == "https" {
		scheme = p
	}
	if h := firstValue(r.Header.Get("X-Forwarded-Host")); h != "" {
		host = h
	}
	return scheme + "://" + host
}

func (s *Source) fromTrustedProxy(r *http.Request) bool {
	if len(s.trusted) == 0 {
		return false
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		host = strings.TrimSpace(r.RemoteAddr)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range s.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func firstValue(h string) string {
	v, _, _ := strings.Cut(h, ",")
	return strings.TrimSpace(v)
}

type baseURLKey struct{}

// WithBaseURL stores base in ctx for FromRequest.
func WithBaseURL(ctx context.Context, base string) context.Context {
	return context.WithValue(ctx, baseURLKey{}, base)
}

// FromRequest returns the base URL stored in the request context, or
// BaseURL(r) when none was stored.
func FromRequest(r *http.Request) string {
	if base, ok := r.Context().Value(baseURLKey{}).(string); ok && base != "" {
		return base
	}
	return BaseURL(r)
}

// Join appends a stored relative path to base, normalizing separators.
func Join(base, path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// Resolve is Join that passes absolute URLs through untouched.
func Resolve(base, path string) string {
	if IsAbsolute(path) {
		return path
	}
	return Join(base, path)
}

// ResolvePhoto resolves a profile photo path, falling back to the default
// placeholder when the user has none.
func ResolvePhoto(base string, path *string) string {
	if path == nil || *path == "" {
		return Join(base, DefaultProfilePhoto)
	}
	return Resolve(base, *path)
}

// IsAbsolute reports whether p already carries an http(s) scheme.
func IsAbsolute(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}
