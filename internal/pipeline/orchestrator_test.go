package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/llm"
	"github.com/brunoqueiroz/curricula-admin/internal/pdf"
)

type fakeText struct {
	result pdf.ExtractionResult
	err    error
}

func (f fakeText) Extract(context.Context, string) (pdf.ExtractionResult, error) {
	return f.result, f.err
}

type fakeExtractor struct {
	result llm.ExtractionResult
	err    error
	calls  int
}

func (f *fakeExtractor) ExtractCandidates(_ context.Context, _ llm.ExtractRequest) (llm.ExtractionResult, []byte, error) {
	f.calls++
	return f.result, nil, f.err
}

func TestExtractRejectsUnsupportedFormat(t *testing.T) {
	ex := &fakeExtractor{}
	o := NewOrchestrator(fakeText{}, ex, nil)

	out := o.Extract(context.Background(), "/tmp/notes.docx")

	assert.Equal(t, StateFailed, out.State)
	assert.ErrorIs(t, out.Err, common.ErrUnsupportedFormat)
	assert.Equal(t, 0, ex.calls, "extractor must not run for rejected formats")
}

func TestExtractUnreadableFile(t *testing.T) {
	o := NewOrchestrator(fakeText{err: errors.New("pdftotext: damaged file")}, &fakeExtractor{}, nil)

	out := o.Extract(context.Background(), "/tmp/doc.pdf")

	assert.Equal(t, StateFailed, out.State)
	assert.ErrorIs(t, out.Err, common.ErrUnreadable)
}

func TestExtractBlankTextIsTerminalClassification(t *testing.T) {
	ex := &fakeExtractor{}
	o := NewOrchestrator(fakeText{result: pdf.ExtractionResult{Text: "  \n\t "}}, ex, nil)

	out := o.Extract(context.Background(), "/tmp/scan.pdf")

	assert.Equal(t, StateClassified, out.State)
	assert.False(t, out.InDomain)
	assert.Nil(t, out.Err)
	assert.Equal(t, MsgUnreadableDocument, out.Message)
	assert.Equal(t, 0, ex.calls, "blank text never reaches the extraction service")
}

func TestExtractServiceFailurePropagates(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("503 from upstream")}
	o := NewOrchestrator(fakeText{result: pdf.ExtractionResult{Text: "some content"}}, ex, nil)

	out := o.Extract(context.Background(), "/tmp/doc.pdf")

	assert.Equal(t, StateFailed, out.State)
	assert.ErrorIs(t, out.Err, common.ErrExtractionService)
	assert.Equal(t, 1, ex.calls, "no retry on service failure")
}

func TestExtractInDomainKeepsCandidates(t *testing.T) {
	ex := &fakeExtractor{result: llm.ExtractionResult{
		IsCurriculum: true,
		Items: []llm.StandardFields{
			{Code: "EF01MA01", Subject: "Matemática"},
			{Code: "EF01MA01", Subject: "Matemática"},
		},
	}}
	o := NewOrchestrator(fakeText{result: pdf.ExtractionResult{Text: "BNCC"}}, ex, nil)

	out := o.Extract(context.Background(), "/tmp/bncc.pdf")

	require.Equal(t, StateClassified, out.State)
	assert.True(t, out.InDomain)
	assert.Len(t, out.Candidates, 2, "duplicate codes are distinct candidates")
	assert.True(t, out.Commitable())
}

func TestExtractOutOfDomainDiscardsCandidates(t *testing.T) {
	ex := &fakeExtractor{result: llm.ExtractionResult{
		IsCurriculum: false,
		Items:        []llm.StandardFields{{Code: "EF01MA01"}},
		Message:      "documento não parece ser um currículo",
	}}
	o := NewOrchestrator(fakeText{result: pdf.ExtractionResult{Text: "recipe book"}}, ex, nil)

	out := o.Extract(context.Background(), "/tmp/recipes.pdf")

	require.Equal(t, StateClassified, out.State)
	assert.False(t, out.InDomain)
	assert.Empty(t, out.Candidates)
	assert.False(t, out.Commitable())
	assert.Equal(t, "documento não parece ser um currículo", out.Message)
}

func TestSlotLastWriteWins(t *testing.T) {
	var s Slot

	gen1 := s.Begin("a.pdf")
	gen2 := s.Begin("b.pdf")

	assert.False(t, s.Publish(gen1, &Outcome{State: StateClassified, FileName: "a.pdf"}),
		"stale generation must be dropped")
	assert.True(t, s.Publish(gen2, &Outcome{State: StateClassified, FileName: "b.pdf"}))

	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "b.pdf", cur.FileName)
}

func TestSlotDiscardInvalidatesInFlight(t *testing.T) {
	var s Slot

	gen := s.Begin("a.pdf")
	s.Discard()

	assert.Nil(t, s.Current())
	assert.False(t, s.Publish(gen, &Outcome{State: StateClassified}))
	assert.Nil(t, s.Current())
}
