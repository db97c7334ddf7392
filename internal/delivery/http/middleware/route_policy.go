package middleware

import (
	"net/http"
	"strings"
)

// RoutePolicy is the explicit table of protected resources consulted by the
// auth guard. Protection lives in one place instead of per-route opt-in
// scattered across the router.
type RoutePolicy struct {
	rules []Rule
}

// Rule matches a request by method and path prefix. An empty method matches
// every method.
type Rule struct {
	Method string
	Prefix string
}

func NewRoutePolicy(rules ...Rule) *RoutePolicy {
	return &RoutePolicy{rules: rules}
}

// Protect builds a rule for a single method and path prefix.
func Protect(method, prefix string) Rule {
	return Rule{Method: method, Prefix: prefix}
}

// ProtectAll builds a rule covering every method on a path prefix.
func ProtectAll(prefix string) Rule {
	return Rule{Prefix: prefix}
}

// Protected reports whether the request targets a protected resource.
func (p *RoutePolicy) Protected(r *http.Request) bool {
	for _, rule := range p.rules {
		if rule.Method != "" && rule.Method != r.Method {
			continue
		}
		if strings.HasPrefix(r.URL.Path, rule.Prefix) {
			return true
		}
	}
	return false
}
