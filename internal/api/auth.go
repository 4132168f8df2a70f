package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
)

// DefaultTenantClaim is the token claim holding the caller's tenant.
const DefaultTenantClaim = "tenant_id"

// OIDCConfig holds OIDC authentication settings.
type OIDCConfig struct {
	IssuerURL string
	Audience  string
	Enabled   bool

	// TenantClaim names the claim carrying the tenant id, a string or a list
	// of strings. Defaults to DefaultTenantClaim.
	TenantClaim string
}

type contextKey string

const (
	ctxTenantIDs contextKey = "tenant_ids"
	ctxUserID    contextKey = "user_id"
)

// TenantsFromContext returns the tenants the caller may query.
func TenantsFromContext(ctx context.Context) []string {
	v, _ := ctx.Value(ctxTenantIDs).([]string)
	return v
}

// UserFromContext extracts the user ID from the request context.
func UserFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxUserID).(string)
	return v
}

// oidcAuth returns middleware that verifies JWT Bearer tokens using OIDC discovery.
// The tenant claim ends up in the request context. The /health endpoint
// bypasses authentication.
func oidcAuth(provider *oidc.Provider, audience, tenantClaim string) func(http.Handler) http.Handler {
	verifier := provider.Verifier(&oidc.Config{ClientID: audience})
	if tenantClaim == "" {
		tenantClaim = DefaultTenantClaim
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v1/health" {
				next.ServeHTTP(w, r)
				return
			}

			scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				writeError(w, http.StatusUnauthorized, "missing or malformed bearer token")
				return
			}

			token, err := verifier.Verify(r.Context(), raw)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token: "+err.Error())
				return
			}

			var claims map[string]any
			if err := token.Claims(&claims); err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			ctx := r.Context()
			if tenants := claimStrings(claims[tenantClaim]); len(tenants) > 0 {
				ctx = context.WithValue(ctx, ctxTenantIDs, tenants)
			}
			userID := token.Subject
			if userID == "" {
				userID, _ = claims["email"].(string)
			}
			if userID != "" {
				ctx = context.WithValue(ctx, ctxUserID, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimStrings reads a string or string-list claim.
func claimStrings(v any) []string {
	switch c := v.(type) {
	case string:
		if c != "" {
			return []string{c}
		}
	case []any:
		var out []string
		for _, e := range c {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
