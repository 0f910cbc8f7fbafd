package pipeline

import (
	"sync"

	"github.com/brunoqueiroz/curricula-admin/internal/llm"
)

// State is the lifecycle of one extraction attempt.
type State int

const (
	StateInProgress State = iota
	StateFailed
	StateClassified
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "IN_PROGRESS"
	case StateFailed:
		return "FAILED"
	default:
		return "CLASSIFIED"
	}
}

// Outcome is the terminal (or pending) result of one document upload. Exactly
// one outcome is live per slot; a new extraction replaces it.
type Outcome struct {
	State    State
	FileName string

	// StateFailed
	Err error

	// StateClassified
	InDomain   bool
	Candidates []llm.StandardFields
	Message    string
}

// Commitable reports whether a review session may commit from this outcome.
func (o *Outcome) Commitable() bool {
	return o != nil && o.State == StateClassified && o.InDomain && len(o.Candidates) > 0
}

// Slot holds the single live outcome. Publishing is last-write-wins: a result
// carrying a stale generation is dropped, which is how a superseded extraction
// dies quietly without network-level cancellation.
type Slot struct {
	mu      sync.Mutex
	gen     uint64
	current *Outcome
}

// Begin registers a new extraction attempt, replacing whatever was live, and
// returns the generation token the eventual result must present.
func (s *Slot) Begin(fileName string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.current = &Outcome{State: StateInProgress, FileName: fileName}
	return s.gen
}

// Publish installs the outcome if gen is still current. Returns false when the
// result arrived too late and was dropped.
func (s *Slot) Publish(gen uint64, o *Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.current = o
	return true
}

// Current returns the live outcome, or nil when nothing has been uploaded or
// the last outcome was discarded.
func (s *Slot) Current() *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Discard clears the slot and invalidates any in-flight extraction.
func (s *Slot) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.current = nil
}
