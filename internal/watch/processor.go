package watch

import (
	"context"
	"log/slog"

	"github.com/brunoqueiroz/curricula-admin/internal/auth"
	"github.com/brunoqueiroz/curricula-admin/internal/pipeline"
	"github.com/brunoqueiroz/curricula-admin/internal/review"
)

// Processor drains watcher events through the extraction pipeline and commits
// every candidate of in-domain documents. It is the unattended counterpart of
// the interactive review flow: the operator dropping files into the folder
// stands in for the reviewer, so the full batch is accepted.
type Processor struct {
	orch    *pipeline.Orchestrator
	creator review.CandidateCreator
	auth    auth.Authorizer
	logger  *slog.Logger
}

func NewProcessor(orch *pipeline.Orchestrator, creator review.CandidateCreator, authorizer auth.Authorizer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{orch: orch, creator: creator, auth: authorizer, logger: logger}
}

// Run consumes events until the channel closes or the context is canceled.
// Per-file failures are logged and skipped so one bad document never stalls
// the folder.
func (p *Processor) Run(ctx context.Context, events <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			p.handle(ctx, path)
		}
	}
}

func (p *Processor) handle(ctx context.Context, path string) {
	if err := auth.Guard(ctx, p.auth); err != nil {
		p.logger.Error("watch.forbidden", "file", path, "error", err)
		return
	}

	outcome := p.orch.Extract(ctx, path)
	if outcome.State == pipeline.StateFailed {
		p.logger.Error("watch.extract.failed", "file", outcome.FileName, "error", outcome.Err)
		return
	}
	if !outcome.Commitable() {
		p.logger.Info("watch.skipped",
			"file", outcome.FileName,
			"in_domain", outcome.InDomain,
			"message", outcome.Message,
		)
		return
	}

	session, err := review.NewSession(outcome, p.logger)
	if err != nil {
		p.logger.Error("watch.session.failed", "file", outcome.FileName, "error", err)
		return
	}
	created, err := session.Commit(ctx, p.creator)
	if err != nil {
		p.logger.Error("watch.commit.partial",
			"file", outcome.FileName,
			"created", created,
			"error", err,
		)
		return
	}
	p.logger.Info("watch.commit.ok", "file", outcome.FileName, "created", created)
}
