package receipt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
)

// maxUploadSize allows high-resolution phone photos
const maxUploadSize = int64(50 << 20) // 50MB

const fileTooLargeMessage = "File is too large. Maximum size is 50MB. Please compress or resize your image."

// upload is a file received in a multipart request
type upload struct {
	filename    string
	contentType string
	data        []byte
}

// readUpload reads the "file" part of a multipart request. It writes the
// error response itself and returns false when the upload is unusable.
func readUpload(w http.ResponseWriter, r *http.Request) (*upload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, codeFileTooLarge, fileTooLargeMessage)
			return nil, false
		}
		writeError(w, http.StatusBadRequest, codeInvalidInput, "Error parsing form")
		return nil, false
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Error getting file from form", "error", err)
		message := "No file provided"
		if errors.Is(err, http.ErrMissingFile) {
			message = "No file was selected. Please choose a file to upload."
		}
		writeError(w, http.StatusBadRequest, codeInvalidInput, message)
		return nil, false
	}
	defer f.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusBadRequest, codeFileTooLarge, fileTooLargeMessage)
		return nil, false
	}

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("Error reading file data", "error", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, codeInternalError, "Error reading file. Please try again.")
		return nil, false
	}

	return &upload{
		filename:    header.Filename,
		contentType: detectContentType(header.Header.Get("Content-Type"), header.Filename),
		data:        data,
	}, true
}

// detectContentType prefers the declared type and falls back to the file extension
func detectContentType(declared, filename string) string {
	contentType := strings.ToLower(strings.TrimSpace(declared))
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// writeServiceError maps service errors to a status and error code
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "Receipt not found")
	case errors.Is(err, ErrLineDetection):
		writeError(w, http.StatusBadGateway, codeOCRFailed, err.Error())
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "Internal server error")
	}
}

// handleExtract detects, interprets and stores an uploaded receipt
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	up, ok := readUpload(w, r)
	if !ok {
		return
	}

	receipt, err := s.service.ProcessReceipt(up.filename, up.data, up.contentType)
	if err != nil {
		slog.Error("Error processing receipt", "filename", up.filename, "error", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newExtractResponse(receipt.ID, receipt.Interpreted(), receipt.RawText))
}

// handleRawText returns the detected lines of an upload
func (s *Server) handleRawText(w http.ResponseWriter, r *http.Request) {
	up, ok := readUpload(w, r)
	if !ok {
		return
	}

	lines, err := s.service.ExtractRawText(up.data, up.contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RawTextResponse{RawText: lines})
}

// interpretRequest carries lines detected by the caller. Elements are
// pointers so null lines can be told apart from empty ones.
type interpretRequest struct {
	Lines []*string `json:"lines"`
}

// decodeLines validates an interpret request body
func decodeLines(body io.Reader) ([]string, error) {
	var req interpretRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: decoding request body: %w", ErrInvalidInput, err)
	}
	if req.Lines == nil {
		return nil, fmt.Errorf("%w: lines is required", ErrInvalidInput)
	}

	lines := make([]string, 0, len(req.Lines))
	for i, line := range req.Lines {
		if line == nil {
			return nil, fmt.Errorf("%w: line %d is null", ErrInvalidInput, i)
		}
		lines = append(lines, *line)
	}
	return lines, nil
}

// handleInterpret interprets lines sent by the caller without storing anything
func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	lines, err := decodeLines(r.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newExtractResponse("", s.service.InterpretLines(lines), lines))
}

// handleListReceipts returns a list of all receipts
func (s *Server) handleListReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := s.service.ListReceipts()
	if err != nil {
		slog.Error("Error listing receipts", "error", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, receipts)
}

// handleGetReceipt returns a single receipt
func (s *Server) handleGetReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.service.GetReceipt(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "Receipt not found")
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// handleGetReceiptFile returns the uploaded file for a receipt
func (s *Server) handleGetReceiptFile(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := s.service.GetReceiptFile(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// handleDeleteReceipt deletes a receipt
func (s *Server) handleDeleteReceipt(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteReceipt(r.PathValue("id")); err != nil {
		slog.Error("Error deleting receipt", "error", err)
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth reports that the server is up
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
