package security

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
)

// UploadKind is what a file is for; each kind has its own allowlist.
type UploadKind string

const (
	KindAvatar UploadKind = "avatar"
	KindLogo   UploadKind = "logo"
	KindCV     UploadKind = "cv"
)

// ParseUploadKind reports false for anything other than avatar, logo or cv.
func ParseUploadKind(s string) (UploadKind, bool) {
	switch k := UploadKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAvatar, KindLogo, KindCV:
		return k, true
	}
	return "", false
}

// IsImage reports whether files of this kind are images.
func (k UploadKind) IsImage() bool {
	return k == KindAvatar || k == KindLogo
}

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// Magic byte signatures keyed by lowercase extension
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}},
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},
	".docx": {{0x50, 0x4B, 0x03, 0x04}},
}

type kindPolicy struct {
	extensions map[string]bool
	mimes      map[string]bool
}

var imagePolicy = kindPolicy{
	extensions: map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true},
	mimes:      map[string]bool{"image/jpeg": true, "image/png": true, "image/gif": true},
}

var policies = map[UploadKind]kindPolicy{
	KindAvatar: imagePolicy,
	KindLogo:   imagePolicy,
	KindCV: {
		extensions: map[string]bool{".pdf": true, ".doc": true, ".docx": true},
		mimes: map[string]bool{
			"application/pdf":    true,
			"application/msword": true,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
			"application/zip": true,
		},
	},
}

// ValidateFile checks, in order, the extension allowlist for kind, the magic
// bytes against the extension, and the sniffed MIME type.
func ValidateFile(kind UploadKind, filename string, data []byte) FileValidationResult {
	detected := http.DetectContentType(data)
	result := FileValidationResult{DetectedMIME: detected}

	policy, ok := policies[kind]
	if !ok {
		result.Error = "unknown upload kind: " + string(kind)
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !policy.extensions[ext] {
		result.Error = fmt.Sprintf("file extension not allowed for %s: %s", kind, ext)
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	// Office documents are often sniffed as octet-stream; magic bytes already matched.
	if detected == "application/octet-stream" && (ext == ".doc" || ext == ".docx") {
		result.Valid = true
		return result
	}
	if !policy.mimes[detected] {
		result.Error = "MIME type not allowed: " + detected
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// AllowedExtensions lists the extensions accepted for kind, sorted.
func AllowedExtensions(kind UploadKind) []string {
	policy := policies[kind]
	out := make([]string, 0, len(policy.extensions))
	for ext := range policy.extensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
