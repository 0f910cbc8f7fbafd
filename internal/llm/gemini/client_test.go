package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoqueiroz/curricula-admin/internal/llm"
)

func geminiResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": content}}}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gemini-2.0-flash",
	}, nil)
}

func TestExtractCandidatesHappyPath(t *testing.T) {
	var gotPath, gotKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_, _ = w.Write([]byte(geminiResponse(
			`{"is_curriculum": true, "items": [{"code": "EF01MA01", "subject": "Matemática"}]}`)))
	})

	result, _, err := c.ExtractCandidates(context.Background(), llm.ExtractRequest{
		Text:     "BNCC excerpt",
		Subjects: []string{"Matemática"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.True(t, result.IsCurriculum)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "EF01MA01", result.Items[0].Code)
}

func TestExtractCandidatesLenientSanitize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		// Lowercase code fails strict validation; the lenient pass salvages it.
		_, _ = w.Write([]byte(geminiResponse(
			`{"is_curriculum": true, "items": [{"code": " ef01lp02 "}, {"code": "!!"}]}`)))
	})

	result, _, err := c.ExtractCandidates(context.Background(), llm.ExtractRequest{Text: "x"})
	require.NoError(t, err)

	assert.True(t, result.IsCurriculum)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "EF01LP02", result.Items[0].Code)
}

func TestExtractCandidatesStrictItemsRejectsNonConforming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(geminiResponse(
			`{"is_curriculum": true, "items": [{"code": " ef01lp02 "}]}`)))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		StrictItems: true,
	}, nil)

	_, _, err := c.ExtractCandidates(context.Background(), llm.ExtractRequest{Text: "x"})
	assert.ErrorContains(t, err, "schema validation failed",
		"strict mode must not salvage a malformed code")
}

func TestExtractCandidatesOutOfDomain(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(geminiResponse(
			`{"is_curriculum": false, "items": [], "message": "não é um documento curricular"}`)))
	})

	result, _, err := c.ExtractCandidates(context.Background(), llm.ExtractRequest{Text: "x"})
	require.NoError(t, err)

	assert.False(t, result.IsCurriculum)
	assert.Empty(t, result.Items)
	assert.Equal(t, "não é um documento curricular", result.Message)
}

func TestExtractCandidatesUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, _, err := c.ExtractCandidates(context.Background(), llm.ExtractRequest{Text: "x"})
	assert.Error(t, err)
}

func TestExtractCandidatesEmptyResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, _, err := c.ExtractCandidates(context.Background(), llm.ExtractRequest{Text: "x"})
	assert.ErrorContains(t, err, "no candidates")
}
