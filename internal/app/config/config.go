package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPageURL = "http://localhost:5173/dashboards"

	defaultAPITimeout          = 10 * time.Second
	defaultRequestRetries      = 2
	defaultInitialRetryBackoff = 100 * time.Millisecond
	defaultMaxRetryBackoff     = time.Second

	defaultAuthTimeout = 10 * time.Second
	defaultTokenCookie = "token"

	defaultOptionsTTL = 5 * time.Minute

	defaultInmemCacheNumCounters = 10000
	defaultInmemCacheMaxCost     = 1000
	defaultInmemCacheBufferItems = 64
)

// Environment variables overriding the file values.
const (
	EnvAPIBaseURL      = "DASHBOARDS_API_BASE_URL"
	EnvIdentityBaseURL = "DASHBOARDS_IDENTITY_BASE_URL"
	EnvPortalBaseURL   = "DASHBOARDS_PORTAL_BASE_URL"
	EnvPageURL         = "DASHBOARDS_PAGE_URL"
	EnvSessionToken    = "DASHBOARDS_SESSION_TOKEN"
)

type Config struct {
	App     App      `yaml:"app"`
	API     API      `yaml:"api"`
	Auth    Auth     `yaml:"auth"`
	Cache   Cache    `yaml:"cache"`
	Forms   Forms    `yaml:"forms"`
	Debug   Debug    `yaml:"debug"`
	Tracing *Tracing `yaml:"tracing"`
}

type App struct {
	// PageURL is the address the UI is considered to be served at.
	PageURL string `yaml:"page_url"`
}

type API struct {
	BaseURL             string        `yaml:"base_url"`
	Timeout             time.Duration `yaml:"timeout"`
	RequestRetries      int           `yaml:"request_retries"`
	InitialRetryBackoff time.Duration `yaml:"initial_retry_backoff"`
	MaxRetryBackoff     time.Duration `yaml:"max_retry_backoff"`
}

type Auth struct {
	IdentityBaseURL string            `yaml:"identity_base_url"`
	PortalBaseURL   string            `yaml:"portal_base_url"`
	Timeout         time.Duration     `yaml:"timeout"`
	LocalHosts      []string          `yaml:"local_hosts"`
	Cookies         map[string]string `yaml:"cookies"`
	TokenCookie     string            `yaml:"token_cookie"`
	JWTSecretKey    string            `yaml:"jwt_secret_key"`
}

type InmemoryCache struct {
	NumCounters int64 `yaml:"num_counters"`
	MaxCost     int64 `yaml:"max_cost"`
	BufferItems int64 `yaml:"buffer_items"`
}

type Redis struct {
	Addr            string        `yaml:"addr"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	Timeout         time.Duration `yaml:"timeout"`
	MaxRetries      int           `yaml:"max_retries"`
	MinRetryBackoff time.Duration `yaml:"min_retry_backoff"`
	MaxRetryBackoff time.Duration `yaml:"max_retry_backoff"`
}

type Cache struct {
	OptionsTTL time.Duration `yaml:"options_ttl"`
	Inmemory   InmemoryCache `yaml:"inmemory"`
	Redis      *Redis        `yaml:"redis"`
}

type Forms struct {
	// CheckDateOrder rejects drafts whose data_from is after data_to.
	CheckDateOrder bool `yaml:"check_date_order"`
}

type Debug struct {
	Addr string `yaml:"addr"`
}

type TracingJaeger struct {
	AgentHost string `yaml:"agent_host"`
	AgentPort string `yaml:"agent_port"`
}

type TracingSampler struct {
	Param float64 `yaml:"param"`
}

type Tracing struct {
	ServiceName string         `yaml:"service_name"`
	Jaeger      TracingJaeger  `yaml:"jaeger"`
	Sampler     TracingSampler `yaml:"sampler"`
}

// FromFile parse config from config path.
func FromFile(cfgPath string) (Config, error) {
	cfgBytes, err := os.ReadFile(cfgPath) //nolint:gosec
	if err != nil {
		return Config{}, fmt.Errorf("error reading file: %s", err)
	}

	cfg, err := parse(cfgBytes)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing file: %s", err)
	}

	applyEnv(&cfg, os.LookupEnv)

	if err := setDefaults(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parse(cfg []byte) (Config, error) {
	result := Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(cfg))
	decoder.KnownFields(true)
	if err := decoder.Decode(&result); err != nil {
		return result, fmt.Errorf("error parsing config: %w", err)
	}

	return result, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIBaseURL); ok {
		cfg.API.BaseURL = v
	}
	if v, ok := lookup(EnvIdentityBaseURL); ok {
		cfg.Auth.IdentityBaseURL = v
	}
	if v, ok := lookup(EnvPortalBaseURL); ok {
		cfg.Auth.PortalBaseURL = v
	}
	if v, ok := lookup(EnvPageURL); ok {
		cfg.App.PageURL = v
	}
	if v, ok := lookup(EnvSessionToken); ok && v != "" {
		if cfg.Auth.Cookies == nil {
			cfg.Auth.Cookies = make(map[string]string)
		}
		name := cfg.Auth.TokenCookie
		if name == "" {
			name = defaultTokenCookie
		}
		cfg.Auth.Cookies[name] = v
	}
}

func setDefaults(cfg *Config) error {
	if cfg.App.PageURL == "" {
		cfg.App.PageURL = defaultPageURL
	}
	if _, err := url.Parse(cfg.App.PageURL); err != nil {
		return fmt.Errorf("invalid app.page_url: %w", err)
	}

	if cfg.API.BaseURL == "" {
		return fmt.Errorf("empty api.base_url (set it in the config or via %s)", EnvAPIBaseURL)
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.API.RequestRetries < 0 {
		cfg.API.RequestRetries = 0
	} else if cfg.API.RequestRetries == 0 {
		cfg.API.RequestRetries = defaultRequestRetries
	}
	if cfg.API.InitialRetryBackoff <= 0 {
		cfg.API.InitialRetryBackoff = defaultInitialRetryBackoff
	}
	if cfg.API.MaxRetryBackoff <= 0 {
		cfg.API.MaxRetryBackoff = defaultMaxRetryBackoff
	}

	if cfg.Auth.Timeout <= 0 {
		cfg.Auth.Timeout = defaultAuthTimeout
	}
	if cfg.Auth.TokenCookie == "" {
		cfg.Auth.TokenCookie = defaultTokenCookie
	}

	if cfg.Cache.OptionsTTL <= 0 {
		cfg.Cache.OptionsTTL = defaultOptionsTTL
	}
	if cfg.Cache.Inmemory.NumCounters <= 0 {
		cfg.Cache.Inmemory.NumCounters = defaultInmemCacheNumCounters
	}
	if cfg.Cache.Inmemory.MaxCost <= 0 {
		cfg.Cache.Inmemory.MaxCost = defaultInmemCacheMaxCost
	}
	if cfg.Cache.Inmemory.BufferItems <= 0 {
		cfg.Cache.Inmemory.BufferItems = defaultInmemCacheBufferItems
	}

	return nil
}
