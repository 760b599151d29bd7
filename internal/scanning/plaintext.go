package scanning

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PlainText implements the Scanner interface for uploads that are already text,
// such as a saved line dump from another OCR tool.
type PlainText struct{}

// NewPlainText creates a new PlainText Scanner instance
func NewPlainText() *PlainText {
	return &PlainText{}
}

// DetectLines splits the upload into lines
func (p *PlainText) DetectLines(data []byte, contentType string) ([]string, error) {
	mimeType := strings.ToLower(strings.TrimSpace(contentType))
	if mimeType != "" && !strings.HasPrefix(mimeType, "text/") && mimeType != "application/octet-stream" {
		return nil, fmt.Errorf("unsupported content type for text scanner: %s", contentType)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("upload is not valid UTF-8 text")
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}

// Close is a no-op for the text scanner
func (p *PlainText) Close() error {
	return nil
}
