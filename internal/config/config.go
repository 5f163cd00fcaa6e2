// Package config loads the connection profile used by ewsctl.
//
// A profile is assembled in layers, later layers winning:
//
//  1. DefaultProfile
//  2. the TOML file (~/.config/ewsctl/config.toml unless given)
//  3. a .env file in the working directory
//  4. EWS_* environment variables
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/ews-go/ews"
	"github.com/custodia-labs/ews-go/ews/auth"
	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/logger"
)

// AuthKind selects the credential type.
type AuthKind string

// Supported credential types.
const (
	AuthNTLM   AuthKind = "ntlm"
	AuthBasic  AuthKind = "basic"
	AuthOAuth2 AuthKind = "oauth2"
)

// ErrInvalidProfile is wrapped by every Validate failure.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Auth holds the credentials of a profile. Which fields matter depends on
// Kind.
type Auth struct {
	Kind         AuthKind `toml:"kind"`
	Username     string   `toml:"username"`
	Password     string   `toml:"password,omitempty"`
	Domain       string   `toml:"domain,omitempty"`
	Tenant       string   `toml:"tenant,omitempty"`
	ClientID     string   `toml:"client_id,omitempty"`
	ClientSecret string   `toml:"client_secret,omitempty"`
}

// Profile is everything ewsctl needs to talk to one mailbox.
type Profile struct {
	// Endpoint is the EWS URL. When empty, it is found through autodiscover
	// for Email.
	Endpoint      string  `toml:"endpoint"`
	Email         string  `toml:"email"`
	ServerVersion string  `toml:"server_version"`
	Impersonate   string  `toml:"impersonate,omitempty"`
	Timeout       string  `toml:"timeout"`
	RateLimit     float64 `toml:"rate_limit"`
	Proxy         string  `toml:"proxy,omitempty"`
	// Store is the path of the SQLite cursor store.
	Store string `toml:"store"`
	Auth  Auth   `toml:"auth"`
}

// DefaultProfile returns a profile with every default filled in.
func DefaultProfile() *Profile {
	return &Profile{
		ServerVersion: string(ews.DefaultServerVersion),
		Timeout:       "2m",
		RateLimit:     ews.DefaultRateLimit.RequestsPerSecond,
		Store:         filepath.Join(configDir(), "cursors.db"),
		Auth:          Auth{Kind: AuthNTLM},
	}
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "ewsctl")
	}
	return ".ewsctl"
}

// DefaultPath returns the default location of the profile file.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// Options controls Load.
type Options struct {
	// Path of the TOML file. Empty means DefaultPath, which may be absent.
	Path string
	// EnvFile is the dotenv file to read. Empty means ".env", which may be
	// absent.
	EnvFile string
	// LookupEnv replaces os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load builds the profile from its layers. It does not validate it.
func Load(opts Options) (*Profile, error) {
	p := DefaultProfile()

	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := p.readFile(path, explicit); err != nil {
		return nil, err
	}

	envFile, explicitEnv := opts.EnvFile, opts.EnvFile != ""
	if !explicitEnv {
		envFile = ".env"
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if explicitEnv || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		dotenv = map[string]string{}
	} else {
		logger.Debug("config: loaded %d values from %s", len(dotenv), envFile)
	}

	osLookup := opts.LookupEnv
	if osLookup == nil {
		osLookup = os.LookupEnv
	}
	p.applyEnv(func(key string) (string, bool) {
		if v, ok := osLookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
	return p, nil
}

func (p *Profile) readFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read profile %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("parse profile %s: %w", path, err)
	}
	logger.Debug("config: loaded profile from %s", path)
	return nil
}

func (p *Profile) applyEnv(lookup func(string) (string, bool)) {
	strs := []struct {
		key string
		dst *string
	}{
		{"EWS_ENDPOINT", &p.Endpoint},
		{"EWS_EMAIL", &p.Email},
		{"EWS_SERVER_VERSION", &p.ServerVersion},
		{"EWS_IMPERSONATE", &p.Impersonate},
		{"EWS_TIMEOUT", &p.Timeout},
		{"EWS_PROXY", &p.Proxy},
		{"EWS_STORE", &p.Store},
		{"EWS_USERNAME", &p.Auth.Username},
		{"EWS_PASSWORD", &p.Auth.Password},
		{"EWS_DOMAIN", &p.Auth.Domain},
		{"EWS_TENANT", &p.Auth.Tenant},
		{"EWS_CLIENT_ID", &p.Auth.ClientID},
		{"EWS_CLIENT_SECRET", &p.Auth.ClientSecret},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok {
			*s.dst = strings.TrimSpace(v)
		}
	}
	if v, ok := lookup("EWS_AUTH"); ok {
		p.Auth.Kind = AuthKind(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := lookup("EWS_RATE_LIMIT"); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			p.RateLimit = f
		} else {
			logger.Warn("config: ignoring EWS_RATE_LIMIT=%q: %v", v, err)
		}
	}
}

var serverVersions = map[string]ews.ServerVersion{
	string(ews.Exchange2007):    ews.Exchange2007,
	string(ews.Exchange2007SP1): ews.Exchange2007SP1,
	string(ews.Exchange2010):    ews.Exchange2010,
	string(ews.Exchange2010SP1): ews.Exchange2010SP1,
	string(ews.Exchange2010SP2): ews.Exchange2010SP2,
	string(ews.Exchange2013):    ews.Exchange2013,
	string(ews.Exchange2013SP1): ews.Exchange2013SP1,
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, fmt.Sprintf(format, args...))
}

// Validate checks the profile. A password is not required here since it
// may still be prompted for.
func (p *Profile) Validate() error {
	if p.Endpoint == "" && p.Email == "" {
		return invalid("endpoint or email is required")
	}
	if p.Endpoint != "" {
		u, err := url.Parse(p.Endpoint)
		if err != nil {
			return invalid("endpoint: %v", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return invalid("endpoint must use http or https")
		}
	}
	if p.Email != "" {
		at := strings.LastIndex(p.Email, "@")
		if at < 1 || at == len(p.Email)-1 {
			return invalid("email %q is not an SMTP address", p.Email)
		}
	}
	if _, ok := serverVersions[p.ServerVersion]; !ok {
		return invalid("unknown server version %q", p.ServerVersion)
	}
	if _, err := p.TimeoutDuration(); err != nil {
		return invalid("timeout: %v", err)
	}
	if p.RateLimit < 0 {
		return invalid("rate_limit must not be negative")
	}
	if p.Proxy != "" {
		if _, err := url.Parse(p.Proxy); err != nil {
			return invalid("proxy: %v", err)
		}
	}

	switch p.Auth.Kind {
	case AuthNTLM, AuthBasic:
		if p.Auth.Username == "" {
			return invalid("auth.username is required for %s", p.Auth.Kind)
		}
	case AuthOAuth2:
		if p.Auth.Tenant == "" || p.Auth.ClientID == "" || p.Auth.ClientSecret == "" {
			return invalid("oauth2 needs auth.tenant, auth.client_id and auth.client_secret")
		}
	default:
		return invalid("unknown auth kind %q", p.Auth.Kind)
	}
	return nil
}

// TimeoutDuration parses Timeout. Empty means no timeout.
func (p *Profile) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", p.Timeout)
	}
	return d, nil
}

// NeedsPassword reports whether a password-based credential has none.
func (p *Profile) NeedsPassword() bool {
	return (p.Auth.Kind == AuthNTLM || p.Auth.Kind == AuthBasic) && p.Auth.Password == ""
}

// Credentials builds the authenticator for the profile.
func (p *Profile) Credentials() (transport.Authenticator, error) {
	switch p.Auth.Kind {
	case AuthNTLM:
		return auth.NewNTLM(p.Auth.Username, p.Auth.Password, p.Auth.Domain), nil
	case AuthBasic:
		return auth.NewBasic(p.Auth.Username, p.Auth.Password), nil
	case AuthOAuth2:
		return auth.NewOAuth2(p.Auth.Tenant, p.Auth.ClientID, p.Auth.ClientSecret), nil
	default:
		return nil, invalid("unknown auth kind %q", p.Auth.Kind)
	}
}

// ServiceOptions turns the profile into options for ews.NewService.
func (p *Profile) ServiceOptions() ([]ews.Option, error) {
	opts := []ews.Option{ews.WithServerVersion(serverVersions[p.ServerVersion])}

	timeout, err := p.TimeoutDuration()
	if err != nil {
		return nil, invalid("timeout: %v", err)
	}
	if timeout > 0 {
		opts = append(opts, ews.WithTimeout(timeout))
	}
	if p.RateLimit > 0 {
		burst := ews.DefaultRateLimit.BurstSize
		if int(p.RateLimit) > burst {
			burst = int(p.RateLimit)
		}
		opts = append(opts, ews.WithRateLimit(ews.RateLimitConfig{RequestsPerSecond: p.RateLimit, BurstSize: burst}))
	}
	if p.Impersonate != "" {
		opts = append(opts, ews.WithImpersonation(ews.ImpersonatePrimarySMTPAddress, p.Impersonate))
	}
	if p.Proxy != "" {
		u, err := url.Parse(p.Proxy)
		if err != nil {
			return nil, invalid("proxy: %v", err)
		}
		opts = append(opts, ews.WithProxy(u))
	}
	return opts, nil
}

// Save writes the profile to path as TOML, leaving out the password and
// client secret.
func (p *Profile) Save(path string) error {
	cp := *p
	cp.Auth.Password = ""
	cp.Auth.ClientSecret = ""
	data, err := toml.Marshal(&cp)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write profile %s: %w", path, err)
	}
	return nil
}
