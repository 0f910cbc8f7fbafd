package review

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoqueiroz/curricula-admin/internal/entity"
	"github.com/brunoqueiroz/curricula-admin/internal/llm"
	"github.com/brunoqueiroz/curricula-admin/internal/pipeline"
)

type fakeCreator struct {
	created []string
	failAt  int // 1-based call number that fails; 0 = never
	calls   int
}

func (f *fakeCreator) CreateFromCandidate(_ context.Context, fields llm.StandardFields) (*entity.StandardItem, error) {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return nil, errors.New("unique constraint violated")
	}
	f.created = append(f.created, fields.Code)
	return &entity.StandardItem{Code: fields.Code}, nil
}

func classifiedOutcome(codes ...string) *pipeline.Outcome {
	items := make([]llm.StandardFields, len(codes))
	for i, c := range codes {
		items[i] = llm.StandardFields{Code: c}
	}
	return &pipeline.Outcome{
		State:      pipeline.StateClassified,
		FileName:   "bncc.pdf",
		InDomain:   true,
		Candidates: items,
	}
}

func TestNewSessionSelectsEverything(t *testing.T) {
	s, err := NewSession(classifiedOutcome("A001", "B002", "C003"), nil)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, s.SelectedIndices())
}

func TestNewSessionRejectsNonCommitable(t *testing.T) {
	cases := map[string]*pipeline.Outcome{
		"failed":              {State: pipeline.StateFailed, Err: errors.New("boom")},
		"out of domain":       {State: pipeline.StateClassified, InDomain: false},
		"in domain, no items": {State: pipeline.StateClassified, InDomain: true},
	}
	for name, outcome := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewSession(outcome, nil)
			assert.ErrorIs(t, err, ErrNotCommitable)
		})
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s, err := NewSession(classifiedOutcome("A001", "B002"), nil)
	require.NoError(t, err)

	require.NoError(t, s.Toggle(1))
	assert.False(t, s.IsSelected(1))

	require.NoError(t, s.Toggle(1))
	assert.True(t, s.IsSelected(1))
}

func TestToggleOutOfRange(t *testing.T) {
	s, err := NewSession(classifiedOutcome("A001"), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Toggle(-1), ErrIndexRange)
	assert.ErrorIs(t, s.Toggle(1), ErrIndexRange)
}

func TestToggleAll(t *testing.T) {
	s, err := NewSession(classifiedOutcome("A001", "B002", "C003"), nil)
	require.NoError(t, err)

	// Full selection collapses to empty.
	s.ToggleAll()
	assert.Empty(t, s.SelectedIndices())

	// Empty is partial, so it fills back up.
	s.ToggleAll()
	assert.Equal(t, []int{0, 1, 2}, s.SelectedIndices())

	// Partial also fills up.
	require.NoError(t, s.Toggle(1))
	s.ToggleAll()
	assert.Equal(t, []int{0, 1, 2}, s.SelectedIndices())
}

func TestCommitRespectsSelectionAndOrder(t *testing.T) {
	s, err := NewSession(classifiedOutcome("A001", "B002", "C003", "D004", "E005"), nil)
	require.NoError(t, err)
	require.NoError(t, s.Toggle(1))
	require.NoError(t, s.Toggle(3))

	creator := &fakeCreator{}
	created, err := s.Commit(context.Background(), creator)

	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Equal(t, []string{"A001", "C003", "E005"}, creator.created,
		"commit walks the selection in extraction order")
}

func TestCommitStopsAtFirstFailure(t *testing.T) {
	s, err := NewSession(classifiedOutcome("A001", "B002", "C003", "D004"), nil)
	require.NoError(t, err)

	creator := &fakeCreator{failAt: 3}
	created, err := s.Commit(context.Background(), creator)

	require.Error(t, err)
	assert.Equal(t, 2, created, "the committed prefix stays")
	assert.Equal(t, []string{"A001", "B002"}, creator.created)
	assert.Equal(t, 3, creator.calls, "nothing after the failure is attempted")
	assert.Contains(t, err.Error(), "C003")
}

func TestCommitRetryResumesAfterFailure(t *testing.T) {
	s, err := NewSession(classifiedOutcome("A001", "B002", "C003"), nil)
	require.NoError(t, err)

	creator := &fakeCreator{failAt: 2}
	created, err := s.Commit(context.Background(), creator)
	require.Error(t, err)
	require.Equal(t, 1, created)
	assert.Equal(t, []int{1, 2}, s.SelectedIndices(),
		"the committed prefix must drop out of the selection")

	// A blind retry picks up at the failing candidate; A001 is not re-created.
	retry := &fakeCreator{}
	created, err = s.Commit(context.Background(), retry)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, []string{"B002", "C003"}, retry.created)
	assert.Empty(t, s.SelectedIndices())
}

func TestCommitEmptySelection(t *testing.T) {
	s, err := NewSession(classifiedOutcome("A001", "B002"), nil)
	require.NoError(t, err)
	s.SelectNone()

	creator := &fakeCreator{}
	created, err := s.Commit(context.Background(), creator)

	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 0, creator.calls)
}

func TestCommitDuplicateCodesStayDistinct(t *testing.T) {
	s, err := NewSession(classifiedOutcome("EF01MA01", "EF01MA01"), nil)
	require.NoError(t, err)

	creator := &fakeCreator{}
	created, err := s.Commit(context.Background(), creator)

	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, []string{"EF01MA01", "EF01MA01"}, creator.created)
}

func ExampleSession_Commit() {
	outcome := classifiedOutcome("EF01LP01", "EF01LP02")
	s, _ := NewSession(outcome, nil)
	created, _ := s.Commit(context.Background(), &fakeCreator{})
	fmt.Println(created)
	// Output: 2
}
