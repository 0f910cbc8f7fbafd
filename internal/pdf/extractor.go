package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/brunoqueiroz/curricula-admin/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	MaxPages  int    // 0 = no limit
}

type ExtractionResult struct {
	Text     string
	Pages    int
	Duration time.Duration
	Warnings []string
}

// Extractor turns a PDF file into plain text by shelling out to poppler's
// pdftotext. Whether the resulting text is usable is not decided here; blank
// output is a valid result and the pipeline classifies it downstream.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewExtractorWithRunner is the test seam.
func NewExtractorWithRunner(cfg Config, r Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = r
	return e
}

var rePages = regexp.MustCompile(`(?m)^Pages:\s+(\d+)`)

// Extract runs pdftotext over the file and returns normalized text.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting pdf text extraction", "path", path, "ext", ext)

	if constants.MapExtToFormat(ext) != constants.PDF {
		e.logger.Error("unsupported extraction extension", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	args := []string{"-layout", "-nopgbrk", "-enc", "UTF-8"}
	if e.cfg.MaxPages > 0 {
		args = append(args, "-l", strconv.Itoa(e.cfg.MaxPages))
	}
	args = append(args, path, "-") // stdout

	out, stderr, err := e.runner.Run(ctx, e.cfg.Pdftotext, args...)
	if err != nil {
		return ExtractionResult{Duration: time.Since(start)},
			fmt.Errorf("pdftotext %s: %w", path, err)
	}

	res := ExtractionResult{
		Text:     Normalize(string(out)),
		Pages:    e.countPages(ctx, path),
		Duration: time.Since(start),
	}
	if len(stderr) > 0 {
		res.Warnings = append(res.Warnings, clip(string(stderr), 1<<10))
	}

	e.logger.Info("pdf text extraction finished",
		"path", path,
		"pages", res.Pages,
		"chars", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// countPages asks pdfinfo-compatible output from pdftotext's sibling; failures
// are non-fatal and reported as 0 pages.
func (e *Extractor) countPages(ctx context.Context, path string) int {
	out, _, err := e.runner.Run(ctx, "pdfinfo", path)
	if err != nil {
		return 0
	}
	m := rePages.FindSubmatch(out)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(string(m[1]))
	return n
}
