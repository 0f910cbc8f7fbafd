package constants

import (
	"path/filepath"
	"strings"
)

// Document formats accepted by the ingestion pipeline. Curriculum documents
// are distributed as PDF; everything else is rejected up front.
const (
	PDF     = "PDF"
	UNKNOWN = "UNKNOWN"
)

// AllowedExtensions holds the file extensions accepted for curriculum ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a document format.
func MapExtToFormat(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return PDF
	}
	return UNKNOWN
}

// IsSupportedPath reports whether the path carries an ingestible extension.
func IsSupportedPath(path string) bool {
	_, ok := AllowedExtensions[NormalizeExt(filepath.Ext(path))]
	return ok
}
