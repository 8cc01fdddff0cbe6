package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/vango-dev/arbor/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "arbor.yaml"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "ARBOR_"

	// DefaultAddr is the default preview server address.
	DefaultAddr = "localhost:4000"

	// DefaultTarget is the id of the mount target in rendered pages.
	DefaultTarget = "arbor-root"

	// DefaultMetricsPath is where the preview server exposes metrics.
	DefaultMetricsPath = "/metrics"
)

// Config is the complete arbor configuration.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Render  RenderConfig  `koanf:"render"`
	Serve   ServeConfig   `koanf:"serve"`
	Publish PublishConfig `koanf:"publish"`

	// configPath is the file the config was loaded from, if any.
	configPath string
}

// LogConfig controls logger construction.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `koanf:"level"`

	// Format is text or json.
	Format string `koanf:"format"`
}

// RenderConfig controls HTML output.
type RenderConfig struct {
	// MarkerComments renders region markers as comments.
	MarkerComments bool `koanf:"marker_comments"`

	// Target is the id of the element the manifest is mounted into.
	Target string `koanf:"target"`
}

// ServeConfig controls the preview server.
type ServeConfig struct {
	Addr        string `koanf:"addr"`
	Watch       bool   `koanf:"watch"`
	MetricsPath string `koanf:"metrics_path"`
}

// PublishConfig controls S3 publishing.
type PublishConfig struct {
	Region string `koanf:"region"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `koanf:"endpoint"`
}

// Defaults returns the built-in configuration values keyed by path.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":              "info",
		"log.format":             "text",
		"render.marker_comments": false,
		"render.target":          DefaultTarget,
		"serve.addr":             DefaultAddr,
		"serve.watch":            false,
		"serve.metrics_path":     DefaultMetricsPath,
		"publish.region":         "",
		"publish.endpoint":       "",
	}
}

// Load reads the configuration. path names an explicit config file; when
// empty, arbor.yaml in the working directory is used if present. flags may
// be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, errors.New("E140").Wrap(err)
	}

	used := findConfigFile(path)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, errors.New("E140").Wrap(err).
				WithDetail("Could not read " + used + ".")
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.New("E140").Wrap(err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKey(f.Name)
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.New("E140").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.New("E140").Wrap(err)
	}
	cfg.configPath = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E141").WithDetail("Got log level " + c.Log.Level + ".")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E140").WithDetail("log.format must be text or json, got " + c.Log.Format + ".")
	}
	if c.Serve.MetricsPath != "" && !strings.HasPrefix(c.Serve.MetricsPath, "/") {
		return errors.New("E140").WithDetail("serve.metrics_path must start with a slash.")
	}
	return nil
}

// findConfigFile returns explicit, or arbor.yaml when it exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	return ""
}

// envKey maps ARBOR_SERVE__METRICS_PATH to serve.metrics_path.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// sections are the top-level keys flags can address.
var sections = []string{"log", "render", "serve", "publish"}

// flagKey maps serve-metrics-path to serve.metrics_path. Flags outside the
// known sections are not configuration.
func flagKey(name string) (string, bool) {
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(name, section+"-"); ok {
			return section + "." + strings.ReplaceAll(rest, "-", "_"), true
		}
	}
	return "", false
}
