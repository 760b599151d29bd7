package scanning

// Scanner detects the text lines of a receipt image or PDF
type Scanner interface {
	// DetectLines returns the document's lines in reading order
	DetectLines(imageData []byte, contentType string) ([]string, error)
	// Close closes the scanner and releases resources
	Close() error
}
