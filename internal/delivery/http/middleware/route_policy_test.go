package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutePolicy(t *testing.T) {
	policy := NewRoutePolicy(
		Protect(http.MethodGet, "/users"),
		Protect(http.MethodPost, "/auth/logout"),
		ProtectAll("/admin"),
	)

	tests := []struct {
		name      string
		method    string
		path      string
		protected bool
	}{
		{"method and prefix match", http.MethodGet, "/users", true},
		{"different method", http.MethodPost, "/users", false},
		{"protected logout", http.MethodPost, "/auth/logout", true},
		{"unlisted path", http.MethodPost, "/login", false},
		{"all methods prefix get", http.MethodGet, "/admin/settings", true},
		{"all methods prefix delete", http.MethodDelete, "/admin", true},
		{"root", http.MethodGet, "/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			assert.Equal(t, tt.protected, policy.Protected(req))
		})
	}
}
