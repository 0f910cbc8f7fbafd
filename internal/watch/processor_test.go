package watch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoqueiroz/curricula-admin/internal/auth"
	"github.com/brunoqueiroz/curricula-admin/internal/entity"
	"github.com/brunoqueiroz/curricula-admin/internal/llm"
	"github.com/brunoqueiroz/curricula-admin/internal/pdf"
	"github.com/brunoqueiroz/curricula-admin/internal/pipeline"
)

type fakeText struct {
	text string
}

func (f fakeText) Extract(context.Context, string) (pdf.ExtractionResult, error) {
	return pdf.ExtractionResult{Text: f.text}, nil
}

type fakeExtractor struct {
	result llm.ExtractionResult
}

func (f fakeExtractor) ExtractCandidates(context.Context, llm.ExtractRequest) (llm.ExtractionResult, []byte, error) {
	return f.result, nil, nil
}

type countingCreator struct {
	codes []string
}

func (c *countingCreator) CreateFromCandidate(_ context.Context, fields llm.StandardFields) (*entity.StandardItem, error) {
	c.codes = append(c.codes, fields.Code)
	return &entity.StandardItem{Code: fields.Code}, nil
}

func runProcessor(t *testing.T, p *Processor, paths ...string) {
	t.Helper()
	events := make(chan string, len(paths))
	for _, path := range paths {
		events <- path
	}
	close(events)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Run(ctx, events)
}

func TestProcessorCommitsWholeBatch(t *testing.T) {
	orch := pipeline.NewOrchestrator(fakeText{text: "BNCC"}, fakeExtractor{result: llm.ExtractionResult{
		IsCurriculum: true,
		Items: []llm.StandardFields{
			{Code: "EF01MA01"},
			{Code: "EF01MA02"},
		},
	}}, nil)
	creator := &countingCreator{}
	p := NewProcessor(orch, creator, auth.Static{Admin: true}, nil)

	runProcessor(t, p, "/drop/bncc.pdf")

	assert.Equal(t, []string{"EF01MA01", "EF01MA02"}, creator.codes)
}

func TestProcessorSkipsOutOfDomain(t *testing.T) {
	orch := pipeline.NewOrchestrator(fakeText{text: "recipes"}, fakeExtractor{result: llm.ExtractionResult{
		IsCurriculum: false,
		Message:      "não é currículo",
	}}, nil)
	creator := &countingCreator{}
	p := NewProcessor(orch, creator, auth.Static{Admin: true}, nil)

	runProcessor(t, p, "/drop/recipes.pdf")

	assert.Empty(t, creator.codes)
}

func TestProcessorSkipsUnsupportedFiles(t *testing.T) {
	orch := pipeline.NewOrchestrator(fakeText{text: "x"}, fakeExtractor{}, nil)
	creator := &countingCreator{}
	p := NewProcessor(orch, creator, auth.Static{Admin: true}, nil)

	runProcessor(t, p, "/drop/notes.txt")

	assert.Empty(t, creator.codes)
}

func TestProcessorRequiresAdminCapability(t *testing.T) {
	orch := pipeline.NewOrchestrator(fakeText{text: "BNCC"}, fakeExtractor{result: llm.ExtractionResult{
		IsCurriculum: true,
		Items:        []llm.StandardFields{{Code: "EF01MA01"}},
	}}, nil)
	creator := &countingCreator{}
	p := NewProcessor(orch, creator, auth.Static{Admin: false}, nil)

	runProcessor(t, p, "/drop/bncc.pdf")

	require.Empty(t, creator.codes, "nothing persists without the admin capability")
}
