package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/todi/internal/config"
	"github.com/aretw0/todi/pkg/adapters/jsonl"
	"github.com/aretw0/todi/pkg/adapters/memory"
	"github.com/aretw0/todi/pkg/adapters/redis"
	"github.com/aretw0/todi/pkg/adapters/synthesis"
	"github.com/aretw0/todi/pkg/adapters/tesseract"
	"github.com/aretw0/todi/pkg/ports"
)

// Options are the settings shared by every command.
type Options struct {
	ConfigPath string
	// DataDir overrides data_dir from the config file when set.
	DataDir string
	Debug   bool
	Out     io.Writer
	// Pretty renders reports as markdown for a terminal.
	Pretty bool
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// LoadConfig reads the configuration file and applies the command line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	return cfg, nil
}

// openStore creates the configured record store. The returned close function is never nil.
func openStore(cfg config.Config) (ports.RecordStore, func() error, error) {
	nop := func() error { return nil }
	switch cfg.Store.Backend {
	case config.BackendJSONL:
		return jsonl.New(cfg.StorePath()), nop, nil
	case config.BackendRedis:
		r := cfg.Store.Redis
		s := redis.New(r.Addr, r.Password, r.DB, redis.WithKey(r.Key))
		return s, s.Close, nil
	case config.BackendMemory:
		return memory.NewStore(), nop, nil
	default:
		return nil, nop, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func newRecognizer(cfg config.Config) *tesseract.Recognizer {
	return tesseract.New(
		tesseract.WithCommand(cfg.OCR.Command),
		tesseract.WithLanguage(cfg.OCR.Lang),
		tesseract.WithCropHeight(cfg.OCR.CropHeight),
	)
}

func newSynthesizer(cfg config.Config, logger *slog.Logger) *synthesis.Client {
	return synthesis.New(
		synthesis.WithBaseURL(cfg.Synthesis.BaseURL),
		synthesis.WithDataDir(cfg.DataDir),
		synthesis.WithTimeout(cfg.Synthesis.Timeout),
		synthesis.WithRetries(cfg.Synthesis.Retries),
		synthesis.WithLogger(logger),
	)
}
