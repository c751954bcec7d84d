package api

import (
	"net"
	"net/http"
	"strings"
)

// clientKey derives the rate-limit key for a request: the first forwarded-for
// address, then X-Real-IP, then the direct connection address, then a shared
// "unknown" sentinel. Requests without any address share one bucket; that is
// a known weakness of the unauthenticated model, kept on purpose.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
