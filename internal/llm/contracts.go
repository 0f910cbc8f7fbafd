package llm

import "context"

// StandardFields is the normalized shape we want from the extractor for one
// BNCC competency/skill. Only the alphanumeric code is mandatory; the rest is
// best-effort.
type StandardFields struct {
	Code         string `json:"code"`                    // e.g. EF01MA01
	Subject      string `json:"subject,omitempty"`       // componente curricular
	Description  string `json:"description,omitempty"`   // habilidade text
	GradeLevel   string `json:"grade_level,omitempty"`   // ano/série
	ThematicUnit string `json:"thematic_unit,omitempty"` // unidade temática
}

// ExtractionResult is the structured extractor's verdict for one document.
// IsCurriculum is the in-domain classification: when false, Items carries no
// trustworthy content and callers must treat the document as unrelated.
type ExtractionResult struct {
	IsCurriculum bool             `json:"is_curriculum"`
	Items        []StandardFields `json:"items"`
	Message      string           `json:"message,omitempty"`
}

type ExtractRequest struct {
	Text         string
	FilenameHint string
	Subjects     []string // canonical curricular components to steer labeling
}

// CandidateExtractor is the interface the pipeline depends on.
type CandidateExtractor interface {
	ExtractCandidates(ctx context.Context, req ExtractRequest) (ExtractionResult, []byte /*rawJSON*/, error)
}
