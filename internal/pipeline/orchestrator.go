package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/brunoqueiroz/curricula-admin/constants"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/llm"
	"github.com/brunoqueiroz/curricula-admin/internal/pdf"
)

// MsgUnreadableDocument is surfaced when a PDF yields no text at all. An
// unreadable scan is indistinguishable from irrelevant content downstream, so
// this is a terminal classification rather than a failure.
const MsgUnreadableDocument = "Não foi possível extrair texto do PDF. O arquivo pode estar corrompido ou protegido."

// TextExtractor is stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (pdf.ExtractionResult, error)
}

// Orchestrator coordinates text extraction then structured extraction and
// folds every failure mode into an Outcome. It performs no persistence.
type Orchestrator struct {
	text     TextExtractor
	fields   llm.CandidateExtractor
	subjects []string
	logger   *slog.Logger
}

func NewOrchestrator(text TextExtractor, fields llm.CandidateExtractor, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		text:     text,
		fields:   fields,
		subjects: constants.SubjectsAsStringSlice(),
		logger:   logger,
	}
}

// Extract runs the full pipeline for one document. The returned outcome is
// always terminal (StateFailed or StateClassified); callers own slot
// publication and the single-upload-in-flight precondition.
func (o *Orchestrator) Extract(ctx context.Context, path string) *Outcome {
	name := filepath.Base(path)

	if !constants.IsSupportedPath(path) {
		o.logger.Warn("pipeline.reject.format", "file", name)
		return &Outcome{
			State:    StateFailed,
			FileName: name,
			Err:      fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filepath.Ext(path)),
		}
	}

	text, err := o.text.Extract(ctx, path)
	if err != nil {
		o.logger.Error("pipeline.text.failed", "file", name, "error", err)
		return &Outcome{
			State:    StateFailed,
			FileName: name,
			Err:      fmt.Errorf("%w: %v", common.ErrUnreadable, err),
		}
	}
	if strings.TrimSpace(text.Text) == "" {
		// Terminal classification, not an error.
		o.logger.Info("pipeline.text.blank", "file", name, "pages", text.Pages)
		return &Outcome{
			State:    StateClassified,
			FileName: name,
			InDomain: false,
			Message:  MsgUnreadableDocument,
		}
	}

	result, _, err := o.fields.ExtractCandidates(ctx, llm.ExtractRequest{
		Text:         text.Text,
		FilenameHint: name,
		Subjects:     o.subjects,
	})
	if err != nil {
		// Propagated verbatim, no retry: the operation is user-triggered and
		// re-triggerable by re-upload.
		o.logger.Error("pipeline.classify.failed", "file", name, "error", err)
		return &Outcome{
			State:    StateFailed,
			FileName: name,
			Err:      fmt.Errorf("%w: %v", common.ErrExtractionService, err),
		}
	}

	candidates := result.Items
	if !result.IsCurriculum && len(candidates) > 0 {
		// A not-in-domain verdict invalidates whatever the extractor emitted.
		o.logger.Warn("pipeline.classify.normalized",
			"file", name, "discarded_items", len(candidates))
		candidates = nil
	}

	o.logger.Info("pipeline.classified",
		"file", name,
		"in_domain", result.IsCurriculum,
		"candidates", len(candidates),
	)
	return &Outcome{
		State:      StateClassified,
		FileName:   name,
		InDomain:   result.IsCurriculum,
		Candidates: candidates,
		Message:    result.Message,
	}
}
