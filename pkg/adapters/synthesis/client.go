// Package synthesis implements ports.Synthesizer against the ToDI resynthesis service.
package synthesis

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/todi/internal/logging"
	"github.com/aretw0/todi/pkg/domain"
	"github.com/go-resty/resty/v2"
)

// OutputDir is the directory under the data dir that receives synthesised media.
const OutputDir = "resynthesized"

// Client queries the synthesis service and downloads the resulting media.
type Client struct {
	http    *resty.Client
	baseURL string
	dataDir string
	logger  *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets the synthesis host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithDataDir sets the directory media paths are relative to.
func WithDataDir(dir string) Option {
	return func(c *Client) {
		c.dataDir = dir
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithRetries sets how many times failed or 5xx requests are retried.
func WithRetries(n int) Option {
	return func(c *Client) {
		c.http.SetRetryCount(n)
	}
}

// WithLogger sets the logger for download failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetTimeout(30 * time.Second).
			SetRetryCount(3).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(5 * time.Second),
		baseURL: DefaultBaseURL,
		dataDir: ".",
		logger:  logging.NewNop(),
	}
	c.http.AddRetryCondition(retryCondition)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func retryCondition(r *resty.Response, err error) bool {
	return err != nil || r.StatusCode() >= 500
}

// Synthesize requests a resynthesis of the exercise utterance with tokens and returns
// the synthetic record. Media that cannot be downloaded is logged and left out; only a
// failed query is an error.
func (c *Client) Synthesize(ctx context.Context, exercise domain.Record, tokens []string, suffix string) (domain.Record, error) {
	queryURL, err := QueryURL(c.baseURL, exercise, tokens)
	if err != nil {
		return domain.Record{}, err
	}

	rec := domain.Record{
		Type:       domain.TypeSynthetic,
		Index:      exercise.Index + "-" + suffix,
		Words:      exercise.Words,
		WordsSep:   exercise.WordsSep,
		ExerciseID: exercise.ExerciseID,
		PageURL:    queryURL,
	}
	rec.SetTodi(tokens)

	resp, err := c.http.R().SetContext(ctx).Get(queryURL)
	if err != nil {
		return domain.Record{}, fmt.Errorf("synthesis request failed: %w", err)
	}
	if resp.IsError() {
		return domain.Record{}, fmt.Errorf("synthesis service returned %s", resp.Status())
	}

	p, err := parsePage(bytes.NewReader(resp.Body()))
	if err != nil {
		return domain.Record{}, err
	}

	if p.SoundURL != "" {
		rec.SoundURL = p.SoundURL
		rec.SoundFile = c.fetch(ctx, p.SoundURL, rec.Index+".wav")
	}
	if p.ImageURL != "" {
		rec.ImageURL = p.ImageURL
		rec.ImageFile = c.fetch(ctx, p.ImageURL, rec.Index+".png")
	}
	return rec, nil
}

// fetch downloads url into OutputDir and returns the data-dir relative path, or "" if
// the download failed.
func (c *Client) fetch(ctx context.Context, url, name string) string {
	rel := filepath.ToSlash(filepath.Join(OutputDir, name))
	if err := c.download(ctx, url, filepath.Join(c.dataDir, OutputDir, name)); err != nil {
		c.logger.Warn("Media download failed", "url", url, "error", err)
		return ""
	}
	return rel
}

func (c *Client) download(ctx context.Context, url, dest string) error {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("unexpected status %s", resp.Status())
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to ensure output directory: %w", err)
	}
	return os.WriteFile(dest, resp.Body(), 0644)
}
