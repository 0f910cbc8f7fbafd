package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/brunoqueiroz/curricula-admin/constants"
	"github.com/brunoqueiroz/curricula-admin/internal/auth"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/export"
	"github.com/brunoqueiroz/curricula-admin/internal/llm/gemini"
	"github.com/brunoqueiroz/curricula-admin/internal/pdf"
	"github.com/brunoqueiroz/curricula-admin/internal/pipeline"
	"github.com/brunoqueiroz/curricula-admin/internal/repository"
	"github.com/brunoqueiroz/curricula-admin/internal/review"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir   = flag.String("dir", "", "directory of curriculum PDFs to process (required)")
		dbDSN = flag.String("db", "", "sqlite DSN (defaults to in-memory)")
		out   = flag.String("out", "", "output XLSX file path (defaults to standards.xlsx next to --dir)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "standards.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.Extractor.APIKey == "" {
		printError("Error: GEMINI_API_KEY is required\n")
		os.Exit(1)
	}

	entc, err := repository.OpenSQLite(ctx, *dbDSN, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

	standardsRepo := repository.NewStandardItemRepository(entc, logger)

	textExtractor := pdf.NewExtractor(pdf.Config{
		Pdftotext: cfg.PDF.Pdftotext,
		MaxPages:  cfg.PDF.MaxPages,
	}, logger)
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Extractor.APIKey,
		BaseURL:     cfg.Extractor.BaseURL,
		Model:       cfg.Extractor.Model,
		Temperature: cfg.Extractor.Temperature,
		Timeout:     cfg.Extractor.Timeout,
	}, logger)
	orchestrator := pipeline.NewOrchestrator(textExtractor, geminiClient, logger)

	// Collect PDFs
	var paths []string
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && constants.IsSupportedPath(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("starting batch extraction", "dir", *dir, "files", len(paths))

	// The batch run acts as a service administrator and accepts every
	// candidate of in-domain documents.
	admin := auth.Static{Admin: true}
	processed, skipped, failures, created := 0, 0, 0, 0
	for _, path := range paths {
		if err := auth.Guard(ctx, admin); err != nil {
			logger.Error("batch run lost admin capability", "error", err)
			os.Exit(1)
		}
		outcome := orchestrator.Extract(ctx, path)
		if outcome.State == pipeline.StateFailed {
			logger.Error("extraction failed", "file", outcome.FileName, "error", outcome.Err)
			failures++
			continue
		}
		if !outcome.Commitable() {
			logger.Info("document skipped",
				"file", outcome.FileName,
				"in_domain", outcome.InDomain,
				"message", outcome.Message,
			)
			skipped++
			continue
		}
		session, err := review.NewSession(outcome, logger)
		if err != nil {
			logger.Error("session setup failed", "file", outcome.FileName, "error", err)
			failures++
			continue
		}
		n, err := session.Commit(ctx, standardsRepo)
		created += n
		if err != nil {
			logger.Error("commit stopped mid-batch", "file", outcome.FileName, "created", n, "error", err)
			failures++
			continue
		}
		processed++
	}

	// Export to XLSX
	exporter := export.NewService(standardsRepo, logger)
	xlsxBytes, err := exporter.ExportStandardsXLSX(ctx, false)
	if err != nil {
		logger.Error("failed to export standards", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"files", len(paths),
		"processed", processed,
		"skipped", skipped,
		"failures", failures,
		"standards_created", created,
		"output_file", *out,
	)

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Files scanned: %d\n", len(paths))
	fmt.Printf("- Processed: %d\n", processed)
	fmt.Printf("- Skipped (not curriculum): %d\n", skipped)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Standards created: %d\n", created)
	fmt.Printf("- Output: %s\n", *out)
}
