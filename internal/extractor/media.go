package extractor

import (
	"mime"
	"path/filepath"
	"strings"
)

// MediaType is the declared format of an uploaded document.
type MediaType string

const (
	MediaTypePDF  MediaType = "application/pdf"
	MediaTypeDOCX MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// docxAliases are the non-canonical DOCX types some browsers send.
var docxAliases = map[string]bool{
	"application/vnd.openxmlformats-officedocument.wordprocessingml": true,
	"application/docx":   true,
	"application/x-docx": true,
}

// Supported reports whether an Extractor built with New can decode m.
func (m MediaType) Supported() bool {
	return m == MediaTypePDF || m == MediaTypeDOCX
}

// Label is the short human name used in logs and error messages.
func (m MediaType) Label() string {
	switch m {
	case MediaTypePDF:
		return "PDF"
	case MediaTypeDOCX:
		return "DOCX"
	default:
		return string(m)
	}
}

// DetectMediaType picks the media type from the file extension, falling back
// to the Content-Type the client reported. DOCX aliases are normalized; any
// other value is returned as-is so the caller can reject it by name.
func DetectMediaType(filename, contentType string) MediaType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MediaTypePDF
	case ".docx":
		return MediaTypeDOCX
	case ".doc":
		// Legacy Word binaries are not supported; name them for a clearer error.
		return "application/msword"
	case ".txt":
		return "text/plain"
	}

	return NormalizeMediaType(contentType)
}

// NormalizeMediaType strips parameters and maps DOCX aliases to MediaTypeDOCX.
func NormalizeMediaType(contentType string) MediaType {
	ct := strings.TrimSpace(contentType)
	if parsed, _, err := mime.ParseMediaType(ct); err == nil {
		ct = parsed
	}
	ct = strings.ToLower(ct)

	if docxAliases[ct] {
		return MediaTypeDOCX
	}
	return MediaType(ct)
}
