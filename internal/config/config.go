// Package config loads the toolkit configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "todi.yaml"

// Store backends.
const (
	BackendJSONL  = "jsonl"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the full toolkit configuration.
type Config struct {
	DataDir   string          `yaml:"data_dir"`
	Store     StoreConfig     `yaml:"store"`
	OCR       OCRConfig       `yaml:"ocr"`
	Synthesis SynthesisConfig `yaml:"synthesis"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Backend string      `yaml:"backend"`
	Path    string      `yaml:"path"`
	Redis   RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// OCRConfig configures the tesseract collaborator.
type OCRConfig struct {
	Command    string `yaml:"command"`
	Lang       string `yaml:"lang"`
	CropHeight int    `yaml:"crop_height"`
}

// SynthesisConfig configures the resynthesis pass.
type SynthesisConfig struct {
	BaseURL     string        `yaml:"base_url"`
	PerExercise int           `yaml:"per_exercise"`
	Seed        uint64        `yaml:"seed"`
	Delay       time.Duration `yaml:"delay"`
	Timeout     time.Duration `yaml:"timeout"`
	Retries     int           `yaml:"retries"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataDir: "scraped",
		Store: StoreConfig{
			Backend: BackendJSONL,
			Path:    "index.jsonlines",
			Redis:   RedisConfig{Addr: "localhost:6379", Key: "todi:records"},
		},
		OCR: OCRConfig{
			Command:    "tesseract",
			Lang:       "nld",
			CropHeight: 40,
		},
		Synthesis: SynthesisConfig{
			BaseURL:     "https://todi.cls.ru.nl",
			PerExercise: 5,
			Seed:        12345,
			Delay:       time.Second,
			Timeout:     30 * time.Second,
			Retries:     3,
		},
		Server: ServerConfig{Port: "8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML or JSON configuration file over the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	// JSON is a subset of YAML.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings no component can work with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendJSONL, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Synthesis.PerExercise < 0 {
		return fmt.Errorf("synthesis.per_exercise must not be negative")
	}
	if c.Synthesis.Delay < 0 {
		return fmt.Errorf("synthesis.delay must not be negative")
	}
	return nil
}

// StorePath is the JSON lines store file, resolved against the data dir unless absolute.
func (c Config) StorePath() string {
	if filepath.IsAbs(c.Store.Path) {
		return c.Store.Path
	}
	return filepath.Join(c.DataDir, c.Store.Path)
}
