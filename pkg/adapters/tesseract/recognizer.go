// Package tesseract implements ports.Recognizer by running the tesseract CLI on the
// annotation strip at the bottom of an example image.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

const (
	DefaultCommand    = "tesseract"
	DefaultLanguage   = "nld"
	DefaultCropHeight = 40
)

// Recognizer runs OCR through an external tesseract process.
type Recognizer struct {
	command    string
	language   string
	cropHeight int
	tempDir    string
}

// Option configures the recognizer.
type Option func(*Recognizer)

// WithCommand sets the executable to run.
func WithCommand(cmd string) Option {
	return func(r *Recognizer) {
		if cmd != "" {
			r.command = cmd
		}
	}
}

// WithLanguage sets the tesseract language model.
func WithLanguage(lang string) Option {
	return func(r *Recognizer) {
		if lang != "" {
			r.language = lang
		}
	}
}

// WithCropHeight sets how many pixels at the bottom of the image hold the annotation.
// Zero or less disables cropping.
func WithCropHeight(px int) Option {
	return func(r *Recognizer) {
		r.cropHeight = px
	}
}

// WithTempDir sets where cropped images are written. Defaults to os.TempDir.
func WithTempDir(dir string) Option {
	return func(r *Recognizer) {
		r.tempDir = dir
	}
}

// New creates a Recognizer.
func New(opts ...Option) *Recognizer {
	r := &Recognizer{
		command:    DefaultCommand,
		language:   DefaultLanguage,
		cropHeight: DefaultCropHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recognize crops imagePath and returns tesseract's raw text for the strip.
func (r *Recognizer) Recognize(ctx context.Context, imagePath string) (string, error) {
	img, err := loadImage(imagePath)
	if err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp(r.tempDir, "todi-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := writePNG(tmpFile, cropBottom(img, r.cropHeight)); err != nil {
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, r.command, tmpPath, "stdout", "-l", r.language)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ocr failed for %s: %w. Stderr: %s", imagePath, err, stderr.String())
	}
	return stdout.String(), nil
}
