// Package config provides application configuration loaded from an optional
// YAML file and ENGINE_* environment variables.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/procrest/engine-client-go/internal/ratelimit"
	"github.com/procrest/engine-client-go/internal/transport"
)

// EnvPrefix prefixes every environment variable: auth.mode is ENGINE_AUTH_MODE.
const EnvPrefix = "ENGINE"

// Config holds all application configuration.
type Config struct {
	// Engine connection.
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Auth              transport.Auth
	ErrorDecoding     transport.ErrorDecoding
	DeserializeValues bool

	LogLevel    string
	OTelEnabled bool

	// Gateway settings.
	APIPort      string
	CORSOrigins  []string
	OIDCIssuer   string
	OIDCAudience string
	QueryBudget  int
	BudgetWindow time.Duration
}

// Transport returns the transport options described by c.
func (c Config) Transport() transport.Options {
	return transport.Options{
		BaseURL:           c.BaseURL,
		Timeout:           c.Timeout,
		Auth:              c.Auth,
		Rates:             ratelimit.UniformRates(c.RequestsPerSecond),
		ErrorDecoding:     c.ErrorDecoding,
		DeserializeValues: c.DeserializeValues,
	}
}

// OIDCEnabled reports whether the gateway verifies bearer tokens.
func (c Config) OIDCEnabled() bool {
	return c.OIDCIssuer != ""
}

func defaults(v *viper.Viper) {
	v.SetDefault("base_url", "http://localhost:8080/engine-rest")
	v.SetDefault("timeout", "30s")
	v.SetDefault("requests_per_second", 20)
	v.SetDefault("auth.mode", transport.AuthNone)
	v.SetDefault("error_decoding.enabled", true)
	v.SetDefault("error_decoding.http_codes", "400,500")
	v.SetDefault("error_decoding.wrap_exceptions", true)
	v.SetDefault("deserialize_values", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("otel.enabled", false)
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.cors_origins", "")
	v.SetDefault("budget.max_queries", 0)
	v.SetDefault("budget.window", "1h")

	for _, key := range []string{
		"auth.username", "auth.password", "auth.token",
		"auth.token_url", "auth.client_id", "auth.client_secret", "auth.scopes",
		"oidc.issuer", "oidc.audience",
	} {
		v.SetDefault(key, "")
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the YAML file at path and then the environment. Environment
// variables win over the file. An empty path skips the file.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return fromViper(v)
}

// LoadFromEnv reads configuration from environment variables with sensible defaults.
func LoadFromEnv() (Config, error) {
	return Load("")
}

func fromViper(v *viper.Viper) (Config, error) {
	timeout, err := duration(v, "timeout")
	if err != nil {
		return Config{}, err
	}
	window, err := duration(v, "budget.window")
	if err != nil {
		return Config{}, err
	}
	codes, err := intList(v, "error_decoding.http_codes")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:           strings.TrimRight(v.GetString("base_url"), "/"),
		Timeout:           timeout,
		RequestsPerSecond: v.GetFloat64("requests_per_second"),
		Auth: transport.Auth{
			Mode:         strings.ToLower(v.GetString("auth.mode")),
			Username:     v.GetString("auth.username"),
			Password:     v.GetString("auth.password"),
			Token:        v.GetString("auth.token"),
			TokenURL:     v.GetString("auth.token_url"),
			ClientID:     v.GetString("auth.client_id"),
			ClientSecret: v.GetString("auth.client_secret"),
			Scopes:       stringList(v, "auth.scopes"),
		},
		ErrorDecoding: transport.ErrorDecoding{
			Enabled:        v.GetBool("error_decoding.enabled"),
			HTTPCodes:      codes,
			WrapExceptions: v.GetBool("error_decoding.wrap_exceptions"),
		},
		DeserializeValues: v.GetBool("deserialize_values"),
		LogLevel:          v.GetString("log_level"),
		OTelEnabled:       v.GetBool("otel.enabled"),
		APIPort:           v.GetString("api.port"),
		CORSOrigins:       stringList(v, "api.cors_origins"),
		OIDCIssuer:        v.GetString("oidc.issuer"),
		OIDCAudience:      v.GetString("oidc.audience"),
		QueryBudget:       v.GetInt("budget.max_queries"),
		BudgetWindow:      window,
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: invalid ENGINE_BASE_URL %q (must be an http or https URL)", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: ENGINE_TIMEOUT must be positive")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("config: ENGINE_REQUESTS_PER_SECOND must not be negative")
	}
	switch c.Auth.Mode {
	case transport.AuthNone:
	case transport.AuthBasic:
		if c.Auth.Username == "" {
			return fmt.Errorf("config: ENGINE_AUTH_USERNAME required for basic auth")
		}
	case transport.AuthBearer:
		if c.Auth.Token == "" {
			return fmt.Errorf("config: ENGINE_AUTH_TOKEN required for bearer auth")
		}
	case transport.AuthOAuth2:
		if c.Auth.TokenURL == "" || c.Auth.ClientID == "" {
			return fmt.Errorf("config: ENGINE_AUTH_TOKEN_URL and ENGINE_AUTH_CLIENT_ID required for oauth2 auth")
		}
	default:
		return fmt.Errorf("config: invalid ENGINE_AUTH_MODE %q (must be none, basic, bearer or oauth2)", c.Auth.Mode)
	}
	if c.OIDCIssuer != "" && c.OIDCAudience == "" {
		return fmt.Errorf("config: ENGINE_OIDC_AUDIENCE required when ENGINE_OIDC_ISSUER is set")
	}
	if c.QueryBudget < 0 {
		return fmt.Errorf("config: ENGINE_BUDGET_MAX_QUERIES must not be negative")
	}
	return nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

// stringList accepts a YAML sequence or a comma separated string.
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case string:
		raw = strings.Split(val, ",")
	default:
		raw = v.GetStringSlice(key)
	}
	var out []string
	for _, s := range raw {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func intList(v *viper.Viper, key string) ([]int, error) {
	var out []int
	for _, s := range stringList(v, key) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("config: %s: invalid number %q", key, s)
		}
		out = append(out, n)
	}
	return out, nil
}
