package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/brunoqueiroz/curricula-admin/internal/entity"
	"github.com/brunoqueiroz/curricula-admin/internal/llm"
	"github.com/brunoqueiroz/curricula-admin/internal/pipeline"
)

// CandidateCreator persists one reviewed candidate as a brand-new record.
// Implementations must never merge into an existing row.
type CandidateCreator interface {
	CreateFromCandidate(ctx context.Context, fields llm.StandardFields) (*entity.StandardItem, error)
}

var (
	ErrNotCommitable = errors.New("outcome has no committable candidates")
	ErrIndexRange    = errors.New("candidate index out of range")
)

// Session owns the selection set for one classified outcome. It is
// single-writer by design: one reviewer interacts with one outcome at a time,
// and the caller serializes access.
type Session struct {
	outcome  *pipeline.Outcome
	selected map[int]struct{}
	logger   *slog.Logger
}

// NewSession starts a review over a commitable outcome with every candidate
// selected, mirroring the default of accepting the whole batch.
func NewSession(outcome *pipeline.Outcome, logger *slog.Logger) (*Session, error) {
	if !outcome.Commitable() {
		return nil, ErrNotCommitable
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		outcome:  outcome,
		selected: make(map[int]struct{}, len(outcome.Candidates)),
		logger:   logger,
	}
	s.SelectAll()
	return s, nil
}

func (s *Session) Candidates() []llm.StandardFields {
	return s.outcome.Candidates
}

func (s *Session) IsSelected(i int) bool {
	_, ok := s.selected[i]
	return ok
}

// Toggle flips membership of index i in the selection set. It is its own
// inverse.
func (s *Session) Toggle(i int) error {
	if i < 0 || i >= len(s.outcome.Candidates) {
		return fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(s.outcome.Candidates))
	}
	if _, ok := s.selected[i]; ok {
		delete(s.selected, i)
	} else {
		s.selected[i] = struct{}{}
	}
	return nil
}

// SelectAll replaces the selection with the full index range.
func (s *Session) SelectAll() {
	s.selected = make(map[int]struct{}, len(s.outcome.Candidates))
	for i := range s.outcome.Candidates {
		s.selected[i] = struct{}{}
	}
}

// SelectNone empties the selection.
func (s *Session) SelectNone() {
	s.selected = make(map[int]struct{})
}

// ToggleAll keys off the current selection: a full selection becomes empty,
// anything partial becomes full.
func (s *Session) ToggleAll() {
	if len(s.selected) == len(s.outcome.Candidates) {
		s.SelectNone()
	} else {
		s.SelectAll()
	}
}

// SelectedIndices returns the selection in original extraction order.
func (s *Session) SelectedIndices() []int {
	out := make([]int, 0, len(s.selected))
	for i := range s.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Commit persists the selected candidates one by one, strictly in extraction
// order, stopping at the first failure. It returns how many creates succeeded
// and the failure, if any; prior successes are never rolled back. Each
// committed candidate leaves the selection, so after a mid-batch failure only
// the uncommitted tail stays selected and a retry resumes at the failing
// candidate instead of duplicating the committed prefix.
func (s *Session) Commit(ctx context.Context, creator CandidateCreator) (int, error) {
	indices := s.SelectedIndices()
	created := 0
	for _, i := range indices {
		fields := s.outcome.Candidates[i]
		if _, err := creator.CreateFromCandidate(ctx, fields); err != nil {
			s.logger.Error("review.commit.failed",
				"index", i,
				"code", fields.Code,
				"created", created,
				"selected", len(indices),
				"error", err,
			)
			return created, fmt.Errorf("candidate %d (%s): %w", i, fields.Code, err)
		}
		created++
		delete(s.selected, i)
	}
	s.logger.Info("review.commit.ok", "created", created, "selected", len(indices))
	return created, nil
}
