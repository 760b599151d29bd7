package interpret

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lines is the ordered text of one document as returned by line detection.
// The interpreter reads it in place and never reorders or deduplicates it.
type Lines []string

// at returns the line at i, or false when i is out of range.
func (l Lines) at(i int) (string, bool) {
	if i < 0 || i >= len(l) {
		return "", false
	}
	return l[i], true
}

// Receipt is the structured result of interpreting a receipt's lines.
// Every field is populated; fields the lines did not provide carry the
// interpreter's defaults.
type Receipt struct {
	MerchantName  string          `json:"merchant_name"`
	Branch        string          `json:"branch"`
	ManagerName   string          `json:"manager_name"`
	CashierNumber string          `json:"cashier_number"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Cash          decimal.Decimal `json:"cash"`
	ChangeAmount  decimal.Decimal `json:"change_amount"`
	Items         []LineItem      `json:"items"`
	ReceiptDate   time.Time       `json:"receipt_date"`
}

// LineItem is one purchased product.
type LineItem struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
