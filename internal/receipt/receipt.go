package receipt

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-reader/internal/interpret"
)

// Receipt is an interpreted receipt as stored, together with the lines it
// was read from and the uploaded file
type Receipt struct {
	ID            string               `json:"id"`
	MerchantName  string               `json:"merchant_name"`
	Branch        string               `json:"branch"`
	ManagerName   string               `json:"manager_name"`
	CashierNumber string               `json:"cashier_number"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Cash          decimal.Decimal      `json:"cash"`
	ChangeAmount  decimal.Decimal      `json:"change_amount"`
	Items         []interpret.LineItem `json:"items"`
	ReceiptDate   time.Time            `json:"receipt_date"`
	RawText       []string             `json:"raw_text"`
	Filename      string               `json:"filename"`
	ContentType   string               `json:"content_type"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// newReceipt builds the stored record for an interpretation result
func newReceipt(id string, parsed interpret.Receipt, lines []string, now time.Time) *Receipt {
	return &Receipt{
		ID:            id,
		MerchantName:  parsed.MerchantName,
		Branch:        parsed.Branch,
		ManagerName:   parsed.ManagerName,
		CashierNumber: parsed.CashierNumber,
		Subtotal:      parsed.Subtotal,
		Cash:          parsed.Cash,
		ChangeAmount:  parsed.ChangeAmount,
		Items:         parsed.Items,
		ReceiptDate:   parsed.ReceiptDate,
		RawText:       lines,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Interpreted returns the interpreted fields of the record
func (r *Receipt) Interpreted() interpret.Receipt {
	return interpret.Receipt{
		MerchantName:  r.MerchantName,
		Branch:        r.Branch,
		ManagerName:   r.ManagerName,
		CashierNumber: r.CashierNumber,
		Subtotal:      r.Subtotal,
		Cash:          r.Cash,
		ChangeAmount:  r.ChangeAmount,
		Items:         r.Items,
		ReceiptDate:   r.ReceiptDate,
	}
}

// applyDefaults fills blank text fields and a missing item list, which
// records written by older versions may lack. Amounts are always stored.
func (r *Receipt) applyDefaults(d interpret.Defaults) {
	fill := func(field *string, fallback string) {
		if *field == "" {
			*field = fallback
		}
	}
	fill(&r.MerchantName, d.MerchantName)
	fill(&r.Branch, d.Branch)
	fill(&r.ManagerName, d.ManagerName)
	fill(&r.CashierNumber, d.CashierNumber)
	if len(r.Items) == 0 {
		r.Items = append([]interpret.LineItem(nil), d.Items...)
	}
}
