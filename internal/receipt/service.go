package receipt

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zombor/receipt-reader/internal/interpret"
	"github.com/zombor/receipt-reader/internal/scanning"
)

// IDGenerator generates unique IDs for receipts
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates time ordered UUIDv7 IDs so receipts list in
// upload order
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service handles receipt operations
type Service struct {
	db          DB
	scanner     scanning.Scanner
	storage     Storage
	defaults    interpret.Defaults
	interpreter *interpret.Interpreter
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with the standard defaults, ID generator and time source
func NewService(db DB, scanner scanning.Scanner, storage Storage) *Service {
	return NewServiceWithDeps(db, scanner, storage, interpret.DefaultValues(), &defaultIDGenerator{}, &defaultTimeSource{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, scanner scanning.Scanner, storage Storage, defaults interpret.Defaults, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		scanner:     scanner,
		storage:     storage,
		defaults:    defaults,
		interpreter: interpret.NewInterpreterWithClock(defaults, timeSrc.Now),
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	repeatedSpaces      = regexp.MustCompile(`\s+`)
)

// sanitizeFilename strips special characters from phone-generated filenames and truncates them
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	ext = unsafeFilenameChars.ReplaceAllString(strings.TrimPrefix(ext, "."), "")
	if ext != "" {
		ext = "." + ext
	}

	base = unsafeFilenameChars.ReplaceAllString(base, "")
	base = strings.TrimSpace(repeatedSpaces.ReplaceAllString(base, " "))

	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}
	if base == "" {
		base = "receipt"
	}

	return base + ext
}

// ProcessReceipt stores an uploaded receipt, detects its lines, interprets
// them and saves the result
func (s *Service) ProcessReceipt(filename string, data []byte, contentType string) (*Receipt, error) {
	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, sanitizeFilename(filename)), data)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	lines, err := s.scanner.DetectLines(data, contentType)
	if err != nil {
		slog.Error("Failed to detect receipt lines",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		// The upload is useless without lines
		s.removeUpload(savedPath)
		return nil, fmt.Errorf("%w: %w", ErrLineDetection, err)
	}

	receipt := newReceipt(id, s.interpreter.Interpret(lines), lines, now)
	receipt.Filename = savedPath
	receipt.ContentType = contentType

	if err := s.db.SaveReceipt(receipt); err != nil {
		s.removeUpload(savedPath)
		return nil, fmt.Errorf("saving receipt to database: %w", err)
	}

	slog.Info("Receipt interpreted",
		"id", receipt.ID,
		"merchant", receipt.MerchantName,
		"items", len(receipt.Items),
		"lines", len(lines),
	)
	return receipt, nil
}

// removeUpload deletes a file saved for a receipt that was not stored
func (s *Service) removeUpload(path string) {
	if err := s.storage.Delete(path); err != nil {
		slog.Warn("Failed to clean up uploaded file", "filename", path, "error", err)
	}
}

// ExtractRawText detects the lines of an upload without interpreting or saving anything
func (s *Service) ExtractRawText(data []byte, contentType string) ([]string, error) {
	lines, err := s.scanner.DetectLines(data, contentType)
	if err != nil {
		slog.Error("Failed to detect receipt lines", "content_type", contentType, "file_size", len(data), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLineDetection, err)
	}
	return lines, nil
}

// InterpretLines interprets lines that were detected elsewhere. Nothing is saved.
func (s *Service) InterpretLines(lines []string) interpret.Receipt {
	return s.interpreter.Interpret(lines)
}

// GetReceipt retrieves a receipt by ID
func (s *Service) GetReceipt(id string) (*Receipt, error) {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return nil, fmt.Errorf("getting receipt: %w", err)
	}
	receipt.applyDefaults(s.defaults)
	return receipt, nil
}

// ListReceipts returns all receipts
func (s *Service) ListReceipts() ([]*Receipt, error) {
	receipts, err := s.db.ListReceipts()
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	return receipts, nil
}

// DeleteReceipt removes a receipt and its file
func (s *Service) DeleteReceipt(id string) error {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return fmt.Errorf("getting receipt for deletion: %w", err)
	}

	if err := s.storage.Delete(receipt.Filename); err != nil {
		// Log error but continue with database deletion
		slog.Warn("Failed to delete file", "filename", receipt.Filename, "error", err)
	}

	if err := s.db.DeleteReceipt(id); err != nil {
		return fmt.Errorf("deleting receipt from database: %w", err)
	}
	return nil
}

// GetReceiptFile retrieves the uploaded file for a receipt
func (s *Service) GetReceiptFile(id string) ([]byte, string, error) {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting receipt: %w", err)
	}

	data, err := s.storage.Get(receipt.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("getting receipt file: %w", err)
	}

	return data, receipt.ContentType, nil
}
