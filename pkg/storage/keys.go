package storage

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectKey builds <kind>/<owner>/<uuid><ext>. ext includes the dot.
func ObjectKey(kind, ownerID, ext string) string {
	return kind + "/" + SanitizeSegment(ownerID) + "/" + uuid.NewString() + strings.ToLower(ext)
}

// SanitizeSegment keeps ASCII letters, digits, '_' and '-'.
func SanitizeSegment(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// SanitizeFilename keeps a display-safe base name with its extension.
func SanitizeFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(base, " ", "_")
	return SanitizeSegment(base) + SanitizeExt(ext)
}

// SanitizeExt returns ext if it is a short alphanumeric extension, else "".
func SanitizeExt(ext string) string {
	if len(ext) < 2 || len(ext) > 6 || ext[0] != '.' {
		return ""
	}
	for _, r := range ext[1:] {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return ""
		}
	}
	return ext
}
