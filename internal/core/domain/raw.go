package domain

// RawDocument represents an uploaded file before normalisation.
type RawDocument struct {
	// URI is the original location (file path or upload name).
	URI string

	// MIMEType is the content type (e.g., "text/csv").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains uploader-specific key-value pairs.
	Metadata map[string]any
}
