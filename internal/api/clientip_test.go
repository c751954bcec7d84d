package api

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientKey(t *testing.T) {
	t.Run("first forwarded-for entry wins", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		r.Header.Set("X-Real-IP", "198.51.100.2")
		assert.Equal(t, "203.0.113.7", clientKey(r))
	})

	t.Run("falls back to x-real-ip", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", nil)
		r.Header.Set("X-Real-IP", "198.51.100.2")
		assert.Equal(t, "198.51.100.2", clientKey(r))
	})

	t.Run("falls back to direct connection address", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "192.0.2.9:4321"
		assert.Equal(t, "192.0.2.9", clientKey(r))
	})

	t.Run("unknown sentinel when nothing is present", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = ""
		assert.Equal(t, "unknown", clientKey(r))
	})
}
