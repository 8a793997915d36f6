package normalisers

import (
	"mime"
	"path/filepath"
	"strings"
)

// Common MIME types.
const (
	MIMEPlainText = "text/plain"
	MIMEMarkdown  = "text/markdown"
	MIMEHTML      = "text/html"
	MIMECSV       = "text/csv"
	MIMETSV       = "text/tab-separated-values"
	MIMEXLSX      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEEmail     = "message/rfc822"
	MIMEMbox      = "application/mbox"
	MIMEUnknown   = "application/octet-stream"
)

var extensionTypes = map[string]string{
	".txt":      MIMEPlainText,
	".text":     MIMEPlainText,
	".log":      MIMEPlainText,
	".md":       MIMEMarkdown,
	".markdown": MIMEMarkdown,
	".html":     MIMEHTML,
	".htm":      MIMEHTML,
	".csv":      MIMECSV,
	".tsv":      MIMETSV,
	".xlsx":     MIMEXLSX,
	".docx":     MIMEDOCX,
	".eml":      MIMEEmail,
	".mbox":     MIMEMbox,
}

// DetectMIMEType returns the MIME type for a file name from its extension.
// Files without an extension are treated as plain text.
func DetectMIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return MIMEPlainText
	}
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return MIMEUnknown
}

// baseType strips parameters: "text/plain; charset=utf-8" → "text/plain".
func baseType(mimeType string) string {
	if t, _, err := mime.ParseMediaType(mimeType); err == nil {
		return t
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
