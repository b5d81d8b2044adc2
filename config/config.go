// Package config loads the client configuration from YAML or TOML files and
// the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file configuration.
const (
	EnvAccountID  = "BPOST_ACCOUNT_ID"
	EnvPassphrase = "BPOST_PASSPHRASE"
	EnvBaseURL    = "BPOST_BASE_URL"
)

// Defaults applied to values the configuration leaves unset.
const (
	DefaultBaseURL        = "https://api.bpost.be/services/shm"
	DefaultTimeout        = 10 * time.Second
	DefaultMaxConcurrency = 4
	DefaultLogLevel       = "info"
)

// Config is the client configuration.
type Config struct {
	AccountID      string   `yaml:"accountId" toml:"accountId"`
	Passphrase     string   `yaml:"passphrase" toml:"passphrase"`
	BaseURL        string   `yaml:"baseUrl" toml:"baseUrl"`
	Port           int      `yaml:"port" toml:"port"`
	Timeout        Duration `yaml:"timeout" toml:"timeout"`
	UserAgent      string   `yaml:"userAgent" toml:"userAgent"`
	MaxConcurrency int      `yaml:"maxConcurrency" toml:"maxConcurrency"`
	Schema         Schema   `yaml:"schema" toml:"schema"`
	Log            Log      `yaml:"log" toml:"log"`
}

// Schema overrides the field tables of the XML wire format, for use with a
// different schema version. Empty lists keep the built-in tables.
type Schema struct {
	RepeatedFields []string `yaml:"repeatedFields" toml:"repeatedFields"`
	IntegerFields  []string `yaml:"integerFields" toml:"integerFields"`
	RepeatedGroups []string `yaml:"repeatedGroups" toml:"repeatedGroups"`
}

// Log is the logging configuration.
type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level" toml:"level"`
}

// Duration is a time.Duration written as a duration string, such as `10s`.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q, %w", text, err)
	}
	d.Duration = v
	return nil
}

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// UnmarshalTOML parses a duration string.
func (d *Duration) UnmarshalTOML(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("invalid duration %v, expect a string", value)
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalText returns the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Unmarshaler defines a unmarshal interface, this will be used to parse
// config data.
type Unmarshaler interface {
	// Unmarshal deserializes the data bytes into value parameter.
	Unmarshal(data []byte, value interface{}) error
}

// YamlUnmarshaler is yaml unmarshaler.
type YamlUnmarshaler struct{}

// Unmarshal deserializes the data bytes into parameter val in yaml protocol.
func (yu *YamlUnmarshaler) Unmarshal(data []byte, val interface{}) error {
	return yaml.Unmarshal(data, val)
}

// TomlUnmarshaler is toml unmarshaler.
type TomlUnmarshaler struct{}

// Unmarshal deserializes the data bytes into parameter val in toml protocol.
func (tu *TomlUnmarshaler) Unmarshal(data []byte, val interface{}) error {
	return toml.Unmarshal(data, val)
}

var unmarshalers = map[string]Unmarshaler{
	"yaml": &YamlUnmarshaler{},
	"yml":  &YamlUnmarshaler{},
	"toml": &TomlUnmarshaler{},
}

// Default returns the configuration with every default applied.
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Timeout:        Duration{DefaultTimeout},
		MaxConcurrency: DefaultMaxConcurrency,
		Log:            Log{Level: DefaultLogLevel},
	}
}

// Load reads the configuration file at path. The format is chosen by the
// file extension. `${NAME}` references are expanded from the environment,
// then the BPOST_* variables override the file values.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file, %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := Parse(buf, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s, %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the named format (yaml, yml or toml) on top of the
// defaults and applies the environment overrides.
func Parse(data []byte, format string) (*Config, error) {
	u, ok := unmarshalers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	cfg := Default()
	if err := u.Unmarshal([]byte(expandEnv(string(data))), cfg); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	cfg.repair()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides the credentials and base URL with the BPOST_*
// environment variables that are set.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvAccountID); ok {
		c.AccountID = v
	}
	if v, ok := os.LookupEnv(EnvPassphrase); ok {
		c.Passphrase = v
	}
	if v, ok := os.LookupEnv(EnvBaseURL); ok {
		c.BaseURL = v
	}
}

func (c *Config) repair() {
	if len(c.BaseURL) == 0 {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout.Duration == 0 {
		c.Timeout.Duration = DefaultTimeout
	}
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	if len(c.Log.Level) == 0 {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate reports every invalid value of the configuration.
func (c *Config) Validate() error {
	var errs *multierror.Error
	if len(c.AccountID) == 0 {
		errs = multierror.Append(errs, errors.New("accountId must not be empty"))
	}
	if len(c.Passphrase) == 0 {
		errs = multierror.Append(errs, errors.New("passphrase must not be empty"))
	}
	if u, err := url.Parse(c.BaseURL); err != nil || len(u.Scheme) == 0 || len(u.Host) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("baseUrl %q must be an absolute URL", c.BaseURL))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = multierror.Append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Timeout.Duration < 0 {
		errs = multierror.Append(errs, fmt.Errorf("timeout %s must not be negative", c.Timeout))
	}
	if c.MaxConcurrency < 0 {
		errs = multierror.Append(errs, fmt.Errorf("maxConcurrency %d must not be negative", c.MaxConcurrency))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	return errs.ErrorOrNil()
}

// expandEnv replaces `${NAME}` with the value of the environment variable
// NAME. Other `$` characters are kept as is.
func expandEnv(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			break
		}
		end := strings.Index(s[start+2:], "}")
		if end < 0 {
			break
		}
		b.WriteString(s[:start])
		b.WriteString(os.Getenv(s[start+2 : start+2+end]))
		s = s[start+2+end+1:]
	}
	b.WriteString(s)
	return b.String()
}
