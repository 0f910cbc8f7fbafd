package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeItemsNormalizesCodes(t *testing.T) {
	doc := []byte(`{
		"is_curriculum": true,
		"items": [
			{"code": " ef01ma01 ", "subject": "Matemática"},
			{"code": "EF01LP05", "description": "  trailing  "}
		]
	}`)

	cleaned, dropped, err := SanitizeItems(doc)
	require.NoError(t, err)
	assert.Empty(t, dropped)

	var out ExtractionResult
	require.NoError(t, json.Unmarshal(cleaned, &out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, "EF01MA01", out.Items[0].Code)
	assert.Equal(t, "trailing", out.Items[1].Description)
}

func TestSanitizeItemsDropsUnsalvageable(t *testing.T) {
	doc := []byte(`{
		"is_curriculum": true,
		"items": [
			{"code": "EF01MA01"},
			{"code": "??"},
			{"code": ""},
			"not an object",
			{"code": "EF02CI03"}
		]
	}`)

	cleaned, dropped, err := SanitizeItems(doc)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, dropped)

	var out ExtractionResult
	require.NoError(t, json.Unmarshal(cleaned, &out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, "EF01MA01", out.Items[0].Code)
	assert.Equal(t, "EF02CI03", out.Items[1].Code)
}

func TestSanitizeItemsClearsNullishOptionalFields(t *testing.T) {
	doc := []byte(`{
		"is_curriculum": true,
		"items": [
			{"code": "EF01MA01", "subject": "null", "grade_level": "", "thematic_unit": null}
		]
	}`)

	cleaned, _, err := SanitizeItems(doc)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	item := m["items"].([]any)[0].(map[string]any)
	assert.NotContains(t, item, "subject")
	assert.NotContains(t, item, "grade_level")
	assert.NotContains(t, item, "thematic_unit")
}

func TestSanitizeItemsNeverAltersVerdict(t *testing.T) {
	doc := []byte(`{"is_curriculum": false, "items": [{"code": "bad"}], "message": "não é currículo"}`)

	cleaned, _, err := SanitizeItems(doc)
	require.NoError(t, err)

	var out ExtractionResult
	require.NoError(t, json.Unmarshal(cleaned, &out))
	assert.False(t, out.IsCurriculum)
	assert.Equal(t, "não é currículo", out.Message)
}

func TestSchemaAcceptsSanitizedOutput(t *testing.T) {
	schema := BuildStandardsJSONSchema([]string{"Matemática", "Língua Portuguesa"})

	doc := []byte(`{
		"is_curriculum": true,
		"items": [{"code": "ef01ma01", "subject": "Matemática"}]
	}`)
	// Raw output fails on the lowercase code, the sanitized pass succeeds.
	require.Error(t, ValidateAgainstSchema(schema, doc))

	cleaned, _, err := SanitizeItems(doc)
	require.NoError(t, err)
	assert.NoError(t, ValidateAgainstSchema(schema, cleaned))
}

func TestSchemaRejectsMissingVerdict(t *testing.T) {
	schema := BuildStandardsJSONSchema(nil)
	assert.Error(t, ValidateAgainstSchema(schema, []byte(`{"items": []}`)))
}

func TestSchemaRejectsUnknownProperties(t *testing.T) {
	schema := BuildStandardsJSONSchema(nil)
	assert.Error(t, ValidateAgainstSchema(schema, []byte(`{"is_curriculum": true, "items": [], "extra": 1}`)))
}
