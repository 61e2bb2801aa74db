// Package config loads paraflow settings from a TOML file and the environment.
//
// Precedence, lowest first: built-in defaults, the config file, environment
// variables, command-line flags. Flags are applied by the CLI after [Load].
//
//	[render]
//	font_size = 16
//	formats = ["png", "svg"]
//	viz_type = "flowchart"
//	output = "flowchart.png"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	read_timeout = "15s"
//
//	[llm]
//	model = "gpt-4o-mini"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/paraflow/pkg/cache"
	"github.com/matzehuels/paraflow/pkg/errors"
	"github.com/matzehuels/paraflow/pkg/fonts"
	"github.com/matzehuels/paraflow/pkg/graph"
	"github.com/matzehuels/paraflow/pkg/integrations/llm"
	"github.com/matzehuels/paraflow/pkg/pipeline"
	"github.com/matzehuels/paraflow/pkg/render"
)

const appName = "paraflow"

// Config is the complete configuration.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	LLM    LLMConfig    `toml:"llm"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	FontSize   float64  `toml:"font_size"`
	Formats    []string `toml:"formats"`
	VizType    string   `toml:"viz_type"`
	Output     string   `toml:"output"`
	Scale      float64  `toml:"scale"`
	Background string   `toml:"background"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend         string `toml:"backend"`
	Namespace       string `toml:"namespace"`
	Dir             string `toml:"dir"`
	RedisAddr       string `toml:"redis_addr"`
	RedisPassword   string `toml:"redis_password"`
	RedisDB         int    `toml:"redis_db"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
}

// LLMConfig configures process description generation.
type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// Duration is a time.Duration written as a string such as "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			FontSize: fonts.DefaultSize,
			Formats:  []string{pipeline.FormatPNG},
			VizType:  pipeline.DefaultVizType,
			Output:   render.DefaultFilename,
			Scale:    pipeline.DefaultScale,
		},
		Cache: CacheConfig{
			Backend:         cache.BackendFile,
			MongoDatabase:   cache.DefaultMongoDatabase,
			MongoCollection: cache.DefaultMongoCollection,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{15 * time.Second},
			WriteTimeout: Duration{60 * time.Second},
			MaxBodyBytes: 2 << 20,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    llm.DefaultModel,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/paraflow/config.toml, falling back
// to ~/.config/paraflow/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/paraflow, falling back to
// ~/.cache/paraflow.
func DefaultCacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads path over the defaults and applies environment overrides.
// An empty path reads [DefaultPath]; a missing default file is not an error,
// a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := decodeFile(path, explicit, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, explicit bool, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("PARAFLOW_OPENAI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	} else if v := getenv("OPENAI_API_KEY"); v != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = v
	}
	if v := getenv("PARAFLOW_OPENAI_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := getenv("PARAFLOW_CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := getenv("PARAFLOW_CACHE_NAMESPACE"); v != "" {
		c.Cache.Namespace = v
	}
	if v := getenv("PARAFLOW_REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
		if getenv("PARAFLOW_CACHE_BACKEND") == "" {
			c.Cache.Backend = cache.BackendRedis
		}
	}
	if v := getenv("PARAFLOW_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "PARAFLOW_REDIS_DB must be an integer")
		}
		c.Cache.RedisDB = db
	}
	if v := getenv("PARAFLOW_MONGO_URI"); v != "" {
		c.Cache.MongoURI = v
		if getenv("PARAFLOW_CACHE_BACKEND") == "" && getenv("PARAFLOW_REDIS_ADDR") == "" {
			c.Cache.Backend = cache.BackendMongo
		}
	}
	if v := getenv("PARAFLOW_ADDR"); v != "" {
		c.Server.Addr = v
	}
	return nil
}

// Validate reports the first invalid setting as an INVALID_CONFIG error.
func (c *Config) Validate() error {
	invalid := func(err error) error {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid configuration: %s", errors.UserMessage(err))
	}

	if err := errors.ValidateFontSize(c.Render.FontSize); err != nil {
		return invalid(err)
	}
	for _, f := range c.Render.Formats {
		if err := errors.ValidateFormat(f, pipeline.ValidFormats); err != nil {
			return invalid(err)
		}
	}
	if err := errors.ValidateVizType(c.Render.VizType, graph.VizTypes); err != nil {
		return invalid(err)
	}
	if c.Render.Scale <= 0 || c.Render.Scale > 8 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.scale %v out of range (0, 8]", c.Render.Scale)
	}

	if !slices.Contains(cache.Backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (want one of %s)",
			c.Cache.Backend, strings.Join(cache.Backends, ", "))
	}
	if strings.ContainsAny(c.Cache.Namespace, ":/") {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.namespace %q must not contain ':' or '/'", c.Cache.Namespace)
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.Backend == cache.BackendMongo && c.Cache.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.mongo_uri is required for the mongo backend")
	}

	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_body_bytes must be positive")
	}

	if c.LLM.Provider != "openai" {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown llm provider %q (want openai)", c.LLM.Provider)
	}
	if c.LLM.BaseURL != "" {
		if err := errors.ValidateURL(c.LLM.BaseURL); err != nil {
			return invalid(err)
		}
	}
	return nil
}

// CacheOptions converts the cache section for [cache.Open]. The file
// backend falls back to [DefaultCacheDir] when no directory is set.
func (c *Config) CacheOptions() (cache.Options, error) {
	opts := cache.Options{
		Backend: c.Cache.Backend,
		Dir:     c.Cache.Dir,
		Redis: cache.RedisConfig{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
			Prefix:   appName + ":",
		},
		Mongo: cache.MongoConfig{
			URI:        c.Cache.MongoURI,
			Database:   c.Cache.MongoDatabase,
			Collection: c.Cache.MongoCollection,
		},
	}
	if opts.Backend == cache.BackendFile && opts.Dir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return cache.Options{}, err
		}
		opts.Dir = dir
	}
	return opts, nil
}

// Keyer returns the cache keyer, namespaced by cache.namespace when set.
func (c *Config) Keyer() cache.Keyer {
	return cache.WithNamespace(cache.NewDefaultKeyer(), c.Cache.Namespace)
}

// LLMEnabled reports whether an API key is configured.
func (c *Config) LLMEnabled() bool { return c.LLM.APIKey != "" }

// OpenAI converts the llm section for [llm.NewOpenAI].
func (c *Config) OpenAI() llm.Config {
	return llm.Config{
		Model:   c.LLM.Model,
		APIKey:  c.LLM.APIKey,
		BaseURL: c.LLM.BaseURL,
	}
}

// PipelineOptions returns pipeline options seeded from the render section.
func (c *Config) PipelineOptions(text string) pipeline.Options {
	return pipeline.Options{
		Text:       text,
		VizType:    c.Render.VizType,
		FontSize:   c.Render.FontSize,
		Formats:    slices.Clone(c.Render.Formats),
		Scale:      c.Render.Scale,
		Background: c.Render.Background,
	}
}
