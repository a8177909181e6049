// Package config loads subdiag settings from a YAML file and SUBDIAG_ environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dwhensley/subdiag/codec"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SUBDIAG_"

const maxConfigFileSize = 1024 * 1024 // 1MB

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Store kinds.
const (
	StoreLocal  = "local"
	StoreMemory = "memory"
	StoreMinio  = "minio"
	StoreS3     = "s3"
)

// Config is the complete CLI configuration.
type Config struct {
	Store    StoreConfig    `koanf:"store"`
	Log      LogConfig      `koanf:"log"`
	Analyzer AnalyzerConfig `koanf:"analyzer"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// StoreConfig selects where reports are read from and saved to.
type StoreConfig struct {
	Kind      string `koanf:"kind"`
	Root      string `koanf:"root"`
	Bucket    string `koanf:"bucket"`
	Prefix    string `koanf:"prefix"`
	Endpoint  string `koanf:"endpoint"`
	Region    string `koanf:"region"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Insecure  bool   `koanf:"insecure"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// AnalyzerConfig maps onto subdiag.Option values.
type AnalyzerConfig struct {
	Codec       string `koanf:"codec"`
	MaxWorkers  int    `koanf:"max_workers"`
	ReadLimit   int64  `koanf:"read_limit"`
	MemoryLimit int64  `koanf:"memory_limit"`
	Sequential  bool   `koanf:"sequential"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `koanf:"addr"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Store:    StoreConfig{Kind: StoreLocal, Root: "."},
		Log:      LogConfig{Level: "warn", Format: "text"},
		Analyzer: AnalyzerConfig{Codec: codec.Default.Name(), MaxWorkers: 4},
	}
}

// Load reads configuration from path, then applies environment overrides.
//
// Precedence (highest first):
//  1. SUBDIAG_ environment variables (SUBDIAG_STORE_KIND -> store.kind,
//     SUBDIAG_ANALYZER_MAX_WORKERS -> analyzer.max_workers)
//  2. the YAML file at path, skipped when path is empty
//  3. Default
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("%w: config file %s is %d bytes, max %d", ErrInvalid, path, info.Size(), maxConfigFileSize)
	}
	return io.ReadAll(f)
}

// envKey maps SUBDIAG_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case StoreLocal, StoreMemory:
	case StoreMinio:
		if c.Store.Endpoint == "" {
			return fmt.Errorf("%w: store.endpoint is required for %s", ErrInvalid, c.Store.Kind)
		}
		fallthrough
	case StoreS3:
		if c.Store.Bucket == "" {
			return fmt.Errorf("%w: store.bucket is required for %s", ErrInvalid, c.Store.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown store.kind %q", ErrInvalid, c.Store.Kind)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalid, c.Log.Format)
	}

	if _, ok := codec.ByName(c.Analyzer.Codec); !ok {
		return fmt.Errorf("%w: unknown analyzer.codec %q (have %s)", ErrInvalid, c.Analyzer.Codec, strings.Join(codec.Names(), ", "))
	}
	if c.Analyzer.ReadLimit < 0 || c.Analyzer.MemoryLimit < 0 {
		return fmt.Errorf("%w: analyzer limits must not be negative", ErrInvalid)
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return level, nil
}
