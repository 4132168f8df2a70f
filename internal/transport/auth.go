package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Auth modes.
const (
	AuthNone   = "none"
	AuthBasic  = "basic"
	AuthBearer = "bearer"
	AuthOAuth2 = "oauth2"
)

// Auth configures how the client authenticates against the engine.
type Auth struct {
	Mode string

	// basic
	Username string
	Password string

	// bearer
	Token string

	// oauth2 client credentials
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

func (a Auth) roundTripper(base http.RoundTripper, timeout time.Duration) (http.RoundTripper, error) {
	switch a.Mode {
	case "", AuthNone:
		return base, nil
	case AuthBasic:
		if a.Username == "" {
			return nil, fmt.Errorf("transport: basic auth requires a username")
		}
		return basicAuthTransport{base: base, username: a.Username, password: a.Password}, nil
	case AuthBearer:
		if a.Token == "" {
			return nil, fmt.Errorf("transport: bearer auth requires a token")
		}
		return &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: a.Token}),
			Base:   base,
		}, nil
	case AuthOAuth2:
		if a.TokenURL == "" || a.ClientID == "" {
			return nil, fmt.Errorf("transport: oauth2 auth requires token URL and client id")
		}
		cc := clientcredentials.Config{
			ClientID:     a.ClientID,
			ClientSecret: a.ClientSecret,
			TokenURL:     a.TokenURL,
			Scopes:       a.Scopes,
		}
		// token requests go through base, not the oauth2 transport
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient,
			&http.Client{Transport: base, Timeout: timeout})
		return &oauth2.Transport{Source: cc.TokenSource(ctx), Base: base}, nil
	}
	return nil, fmt.Errorf("transport: unknown auth mode %q", a.Mode)
}

type basicAuthTransport struct {
	base               http.RoundTripper
	username, password string
}

func (t basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.SetBasicAuth(t.username, t.password)
	return t.base.RoundTrip(r)
}

// RequestIDHeader correlates engine calls with client logs.
const RequestIDHeader = "X-Request-ID"

type requestIDTransport struct {
	base http.RoundTripper
}

func (t requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set(RequestIDHeader, uuid.NewString())
	return t.base.RoundTrip(r)
}
