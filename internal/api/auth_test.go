package api

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procrest/engine-client-go/internal/query"
	"github.com/procrest/engine-client-go/internal/remote"
	"github.com/procrest/engine-client-go/internal/testutil"
	"github.com/procrest/engine-client-go/internal/transport"
)

const testAudience = "engine-gateway"

// fakeIssuer is an OIDC discovery endpoint backed by one RSA key.
type fakeIssuer struct {
	*httptest.Server
	key *rsa.PrivateKey
}

func newFakeIssuer(t *testing.T) *fakeIssuer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	iss := &fakeIssuer{key: key}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /.well-known/openid-configuration", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"issuer":   iss.URL,
			"jwks_uri": iss.URL + "/keys",
		})
	})
	mux.HandleFunc("GET /keys", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{
			Key: &key.PublicKey, KeyID: "k1", Algorithm: string(jose.RS256), Use: "sig",
		}}})
	})
	iss.Server = httptest.NewServer(mux)
	t.Cleanup(iss.Close)
	return iss
}

// token signs claims on top of a valid issuer, audience and lifetime.
func (i *fakeIssuer) token(t *testing.T, claims map[string]any) string {
	t.Helper()
	now := time.Now()
	all := map[string]any{
		"iss": i.URL,
		"aud": testAudience,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
	for k, v := range claims {
		all[k] = v
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.RS256, Key: i.key},
		(&jose.SignerOptions{}).WithHeader("kid", "k1"),
	)
	require.NoError(t, err)
	raw, err := jwt.Signed(signer).Claims(all).Serialize()
	require.NoError(t, err)
	return raw
}

func (i *fakeIssuer) provider(t *testing.T) *oidc.Provider {
	t.Helper()
	p, err := oidc.NewProvider(oidc.InsecureIssuerURLContext(t.Context(), i.URL), i.URL)
	require.NoError(t, err)
	return p
}

func TestOIDCAuth(t *testing.T) {
	iss := newFakeIssuer(t)
	caller := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"tenants": strings.Join(TenantsFromContext(r.Context()), ","),
			"user":    UserFromContext(r.Context()),
		})
	})
	handler := oidcAuth(iss.provider(t), testAudience, "")(caller)

	tests := []struct {
		name        string
		path        string
		auth        string
		wantStatus  int
		wantTenants string
		wantUser    string
	}{
		{
			name:        "single tenant claim",
			path:        "/api/v1/tasks",
			auth:        "Bearer " + iss.token(t, map[string]any{"sub": "user-123", "tenant_id": "acme"}),
			wantStatus:  http.StatusOK,
			wantTenants: "acme",
			wantUser:    "user-123",
		},
		{
			name: "tenant list claim",
			path: "/api/v1/incidents",
			auth: "Bearer " + iss.token(t, map[string]any{
				"email": "ops@example.com", "tenant_id": []string{"acme", "globex"},
			}),
			wantStatus:  http.StatusOK,
			wantTenants: "acme,globex",
			wantUser:    "ops@example.com",
		},
		{
			name:       "no header",
			path:       "/api/v1/tasks",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "basic credentials",
			path:       "/api/v1/tasks",
			auth:       "Basic ZGVtbzpkZW1v",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired",
			path: "/api/v1/tasks",
			auth: "Bearer " + iss.token(t, map[string]any{
				"sub": "user-123",
				"iat": time.Now().Add(-2 * time.Hour).Unix(),
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other audience",
			path:       "/api/v1/tasks",
			auth:       "Bearer " + iss.token(t, map[string]any{"sub": "user-123", "aud": "billing"}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "health is public",
			path:       "/api/v1/health",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			var got map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantTenants, got["tenants"])
			assert.Equal(t, tt.wantUser, got["user"])
		})
	}
}

func TestCustomTenantClaim(t *testing.T) {
	iss := newFakeIssuer(t)
	var seen []string
	handler := oidcAuth(iss.provider(t), testAudience, "org")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = TenantsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer "+iss.token(t, map[string]any{"sub": "u", "org": "initech", "tenant_id": "acme"}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"initech"}, seen)
}

type scopedEnv struct {
	srv  *Server
	iss  *fakeIssuer
	fake *testutil.FakeEngine
}

func newScopedEnv(t *testing.T) scopedEnv {
	t.Helper()
	iss := newFakeIssuer(t)
	fake := testutil.NewFixtureEngine(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := transport.New(transport.Options{
		BaseURL:    fake.BaseURL(),
		HTTPClient: fake.Client(),
		Logger:     logger,
	})
	require.NoError(t, err)

	srv, err := New(t.Context(), remote.New(client, query.WithLogger(logger)), Options{
		OIDC:   OIDCConfig{Enabled: true, IssuerURL: iss.URL, Audience: testAudience},
		Logger: logger,
	})
	require.NoError(t, err)
	return scopedEnv{srv: srv, iss: iss, fake: fake}
}

func (e scopedEnv) get(t *testing.T, path string, claims map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+e.iss.token(t, claims))
	w := httptest.NewRecorder()
	e.srv.ServeHTTP(w, req)
	return w
}

func TestQueriesAreScopedToTokenTenant(t *testing.T) {
	env := newScopedEnv(t)
	claims := map[string]any{"sub": "user-123", "tenant_id": "acme"}

	w := env.get(t, "/api/v1/tasks?assignee=demo", claims)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t,
		`{"assignee":"demo","tenantIdIn":["acme"],"sorting":[{"sortBy":"created","sortOrder":"desc"}]}`,
		string(env.fake.Last(t).Body))

	w = env.get(t, "/api/v1/process-definitions", claims)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme", env.fake.Last(t).Query.Get("tenantIdIn"))
}

func TestTokenWithoutTenantIsForbidden(t *testing.T) {
	env := newScopedEnv(t)

	w := env.get(t, "/api/v1/stats", map[string]any{"sub": "user-123"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, env.fake.Requests())
}

func TestScopedVariablesHideForeignInstances(t *testing.T) {
	env := newScopedEnv(t)
	env.fake.Respond(http.MethodPost, testutil.RESTRoot+"/process-instance/count", http.StatusOK, map[string]int{"count": 0})

	w := env.get(t, "/api/v1/process-instances/"+testutil.FixtureProcessInstanceID+"/variables",
		map[string]any{"sub": "user-123", "tenant_id": "globex"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, env.fake.Requests(), 1)
}

func TestClaimStrings(t *testing.T) {
	assert.Equal(t, []string{"acme"}, claimStrings("acme"))
	assert.Equal(t, []string{"a", "b"}, claimStrings([]any{"a", "", 3, "b"}))
	assert.Nil(t, claimStrings(""))
	assert.Nil(t, claimStrings(42))
}
