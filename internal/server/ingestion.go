package server

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	curriculav1 "github.com/brunoqueiroz/curricula-admin/gen/proto/curricula/v1"
	"github.com/brunoqueiroz/curricula-admin/internal/auth"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/pipeline"
	"github.com/brunoqueiroz/curricula-admin/internal/review"
)

// IngestionService drives the extraction pipeline and the review flow over its
// latest outcome. One outcome is live at a time; uploading again replaces it
// along with the selection, and a result from a superseded upload is dropped
// by the slot's generation check.
type IngestionService struct {
	curriculav1.UnimplementedIngestionServiceServer
	orch    *pipeline.Orchestrator
	creator review.CandidateCreator
	auth    auth.Authorizer
	logger  *slog.Logger

	mu      sync.Mutex
	slot    pipeline.Slot
	session *review.Session
}

func NewIngestionService(orch *pipeline.Orchestrator, creator review.CandidateCreator, authorizer auth.Authorizer, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		orch:    orch,
		creator: creator,
		auth:    authorizer,
		logger:  logger,
	}
}

func (s *IngestionService) ExtractDocument(ctx context.Context, req *curriculav1.ExtractDocumentRequest) (*curriculav1.ExtractDocumentResponse, error) {
	if err := auth.Guard(ctx, s.auth); err != nil {
		return nil, common.ToStatus(err)
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("extract request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.mu.Lock()
	gen := s.slot.Begin(path)
	s.session = nil
	s.mu.Unlock()

	outcome := s.orch.Extract(ctx, path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.slot.Publish(gen, outcome) {
		// A newer upload replaced this one while it ran.
		s.logger.Info("extraction superseded", "file", outcome.FileName)
		return nil, status.Error(codes.Aborted, "extraction superseded by a newer upload")
	}
	if outcome.Commitable() {
		session, err := review.NewSession(outcome, s.logger)
		if err != nil {
			return nil, common.ToStatus(err)
		}
		s.session = session
	}
	return &curriculav1.ExtractDocumentResponse{Outcome: s.toPBOutcome(outcome)}, nil
}

func (s *IngestionService) GetOutcome(ctx context.Context, _ *curriculav1.GetOutcomeRequest) (*curriculav1.GetOutcomeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	outcome := s.slot.Current()
	if outcome == nil {
		return nil, status.Error(codes.NotFound, "no extraction outcome")
	}
	return &curriculav1.GetOutcomeResponse{Outcome: s.toPBOutcome(outcome)}, nil
}

func (s *IngestionService) ToggleCandidate(ctx context.Context, req *curriculav1.ToggleCandidateRequest) (*curriculav1.ToggleCandidateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, status.Error(codes.FailedPrecondition, "no review session")
	}
	i := int(req.GetIndex())
	if err := s.session.Toggle(i); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &curriculav1.ToggleCandidateResponse{
		Selected:      s.session.IsSelected(i),
		SelectedCount: int32(len(s.session.SelectedIndices())),
	}, nil
}

func (s *IngestionService) ToggleAll(ctx context.Context, _ *curriculav1.ToggleAllRequest) (*curriculav1.ToggleAllResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, status.Error(codes.FailedPrecondition, "no review session")
	}
	s.session.ToggleAll()
	return &curriculav1.ToggleAllResponse{
		SelectedCount: int32(len(s.session.SelectedIndices())),
	}, nil
}

func (s *IngestionService) SelectAll(ctx context.Context, _ *curriculav1.SelectAllRequest) (*curriculav1.SelectAllResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, status.Error(codes.FailedPrecondition, "no review session")
	}
	s.session.SelectAll()
	return &curriculav1.SelectAllResponse{
		SelectedCount: int32(len(s.session.SelectedIndices())),
	}, nil
}

func (s *IngestionService) SelectNone(ctx context.Context, _ *curriculav1.SelectNoneRequest) (*curriculav1.SelectNoneResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, status.Error(codes.FailedPrecondition, "no review session")
	}
	s.session.SelectNone()
	return &curriculav1.SelectNoneResponse{}, nil
}

func (s *IngestionService) CommitSelected(ctx context.Context, _ *curriculav1.CommitSelectedRequest) (*curriculav1.CommitSelectedResponse, error) {
	if err := auth.Guard(ctx, s.auth); err != nil {
		return nil, common.ToStatus(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, status.Error(codes.FailedPrecondition, "no review session")
	}

	created, err := s.session.Commit(ctx, s.creator)
	resp := &curriculav1.CommitSelectedResponse{CreatedCount: int32(created)}
	if err != nil {
		// Partial success: the committed prefix stays in the database but is
		// no longer selected, so the session survives and a retry resumes at
		// the failing candidate.
		resp.Error = err.Error()
		return resp, nil
	}

	s.slot.Discard()
	s.session = nil
	return resp, nil
}

func (s *IngestionService) DiscardOutcome(ctx context.Context, _ *curriculav1.DiscardOutcomeRequest) (*curriculav1.DiscardOutcomeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot.Discard()
	s.session = nil
	return &curriculav1.DiscardOutcomeResponse{}, nil
}

// toPBOutcome is called with s.mu held.
func (s *IngestionService) toPBOutcome(o *pipeline.Outcome) *curriculav1.Outcome {
	out := &curriculav1.Outcome{
		FileName: o.FileName,
		InDomain: o.InDomain,
		Message:  o.Message,
	}
	switch o.State {
	case pipeline.StateInProgress:
		out.State = curriculav1.Outcome_STATE_IN_PROGRESS
	case pipeline.StateFailed:
		out.State = curriculav1.Outcome_STATE_FAILED
	case pipeline.StateClassified:
		out.State = curriculav1.Outcome_STATE_CLASSIFIED
	}
	if o.Err != nil {
		out.Error = o.Err.Error()
	}
	for i, c := range o.Candidates {
		selected := s.session != nil && s.session.IsSelected(i)
		out.Candidates = append(out.Candidates, &curriculav1.Candidate{
			Code:         c.Code,
			Subject:      c.Subject,
			Description:  c.Description,
			GradeLevel:   c.GradeLevel,
			ThematicUnit: c.ThematicUnit,
			Selected:     selected,
		})
	}
	return out
}
