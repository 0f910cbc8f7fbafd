package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedPath(t *testing.T) {
	assert.True(t, IsSupportedPath("/uploads/bncc.pdf"))
	assert.True(t, IsSupportedPath("/uploads/BNCC.PDF"))
	assert.False(t, IsSupportedPath("/uploads/bncc.docx"))
	assert.False(t, IsSupportedPath("/uploads/bncc"))
	assert.False(t, IsSupportedPath(""))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".pdf"))
	assert.Equal(t, PDF, MapExtToFormat("PDF"))
	assert.Equal(t, UNKNOWN, MapExtToFormat(".jpg"))
}

func TestSubjectsAsStringSlice(t *testing.T) {
	subjects := SubjectsAsStringSlice()
	assert.Contains(t, subjects, "Matemática")
	assert.Contains(t, subjects, "Língua Portuguesa")
	assert.Len(t, subjects, 10)
}
