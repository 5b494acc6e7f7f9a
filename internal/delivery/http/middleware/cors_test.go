package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	handler := CORS([]string{"https://dash.test/", " "}, next)

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"preflight allowed", http.MethodOptions, "https://dash.test", http.StatusNoContent, "https://dash.test"},
		{"preflight other origin", http.MethodOptions, "https://evil.test", http.StatusNoContent, ""},
		{"simple allowed", http.MethodGet, "https://dash.test", http.StatusOK, "https://dash.test"},
		{"simple other origin", http.MethodGet, "https://evil.test", http.StatusOK, ""},
		{"no origin", http.MethodGet, "", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test/acara", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.method == http.MethodOptions && tt.wantAllow != "" {
				assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			}
			if tt.method == http.MethodGet && tt.wantAllow != "" {
				assert.Equal(t, "X-Request-Id", rr.Header().Get("Access-Control-Expose-Headers"))
			}
		})
	}
}

func TestCORS_PreflightDoesNotReachHandler(t *testing.T) {
	called := false
	handler := CORS([]string{"https://dash.test"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	req := httptest.NewRequest(http.MethodOptions, "http://test/acara", nil)
	req.Header.Set("Origin", "https://dash.test")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, corsAllowHeaders, rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
}
