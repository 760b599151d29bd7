package receipt

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-reader/internal/interpret"
)

// Error codes returned in error responses
const (
	codeInvalidInput  = "INVALID_INPUT"
	codeFileTooLarge  = "FILE_TOO_LARGE"
	codeOCRFailed     = "OCR_FAILED"
	codeNotFound      = "RECEIPT_NOT_FOUND"
	codeInternalError = "INTERNAL_ERROR"
	codeUnauthorized  = "UNAUTHORIZED"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	ErrorCode string    `json:"error_code"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// writeError writes a JSON error response with CORS headers set
func writeError(w http.ResponseWriter, status int, code, message string) {
	setCORSHeaders(w)
	writeJSON(w, status, ErrorResponse{
		ErrorCode: code,
		Error:     message,
		Timestamp: time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// ExtractResponse is the interpreted receipt as returned to API clients
type ExtractResponse struct {
	ID          string          `json:"id,omitempty"`
	Store       StoreInfo       `json:"store"`
	Items       []ItemInfo      `json:"items"`
	Transaction TransactionInfo `json:"transaction"`
	RawText     []string        `json:"raw_text"`
}

// StoreInfo describes where and by whom the receipt was issued
type StoreInfo struct {
	Name          string `json:"name"`
	Branch        string `json:"branch"`
	Manager       string `json:"manager"`
	CashierNumber int    `json:"cashier_number"`
}

// ItemInfo is one purchased product
type ItemInfo struct {
	Product  string      `json:"product"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
}

// TransactionInfo holds the receipt totals
type TransactionInfo struct {
	Subtotal json.Number `json:"subtotal"`
	Cash     json.Number `json:"cash"`
	Change   json.Number `json:"change"`
}

// RawTextResponse holds detected lines
type RawTextResponse struct {
	RawText []string `json:"raw_text"`
}

func newExtractResponse(id string, r interpret.Receipt, lines []string) ExtractResponse {
	items := make([]ItemInfo, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, ItemInfo{
			Product:  item.Product,
			Quantity: item.Quantity,
			Price:    amount(item.Price),
		})
	}
	if lines == nil {
		lines = []string{}
	}

	return ExtractResponse{
		ID: id,
		Store: StoreInfo{
			Name:          r.MerchantName,
			Branch:        r.Branch,
			Manager:       r.ManagerName,
			CashierNumber: cashierNumber(r.CashierNumber),
		},
		Items: items,
		Transaction: TransactionInfo{
			Subtotal: amount(r.Subtotal),
			Cash:     amount(r.Cash),
			Change:   amount(r.ChangeAmount),
		},
		RawText: lines,
	}
}

// amount renders a decimal as a JSON number with at least two decimal
// places and no rounding
func amount(d decimal.Decimal) json.Number {
	places := int32(2)
	if -d.Exponent() > places {
		places = -d.Exponent()
	}
	return json.Number(d.StringFixed(places))
}

// cashierNumber converts the cashier text to a number, 0 when it is not one
func cashierNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
