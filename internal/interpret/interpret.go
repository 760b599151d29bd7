// Package interpret turns the ordered text lines of a photographed receipt
// into a structured Receipt.
//
// Fields are located by keyword, usually with the value on the following
// line, and items are read from the block between a "Name" header and the
// first totals line. Interpretation never fails: anything that cannot be
// located or parsed takes the value from a Defaults table.
package interpret

import (
	"log/slog"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Interpreter assembles receipts from lines. It holds only read-only
// configuration and is safe for concurrent use.
type Interpreter struct {
	defaults Defaults
	now      Clock
}

// NewInterpreter creates an Interpreter using the wall clock.
func NewInterpreter(defaults Defaults) *Interpreter {
	return NewInterpreterWithClock(defaults, time.Now)
}

// NewInterpreterWithClock creates an Interpreter with a custom clock for testing.
func NewInterpreterWithClock(defaults Defaults, now Clock) *Interpreter {
	return &Interpreter{
		defaults: defaults,
		now:      now,
	}
}

var standard = NewInterpreter(DefaultValues())

// Interpret reads lines with the standard defaults.
func Interpret(lines []string) Receipt {
	return standard.Interpret(lines)
}

// Interpret runs every field extractor and the item scanner once over lines
// and fills whatever they could not recover from the defaults.
func (in *Interpreter) Interpret(lines []string) Receipt {
	seq := Lines(lines)
	fb := &fallbacks{}

	merchant, ok := extractMerchantName(seq)
	merchant = pick(fb, "merchant_name", merchant, ok, in.defaults.MerchantName)
	branch, ok := extractBranch(seq)
	branch = pick(fb, "branch", branch, ok, in.defaults.Branch)
	manager, ok := extractManagerName(seq)
	manager = pick(fb, "manager_name", manager, ok, in.defaults.ManagerName)
	cashier, ok := extractCashierNumber(seq)
	cashier = pick(fb, "cashier_number", cashier, ok, in.defaults.CashierNumber)
	subtotal, ok := extractSubtotal(seq)
	subtotal = pick(fb, "subtotal", subtotal, ok, in.defaults.Subtotal)
	cash, ok := extractCash(seq)
	cash = pick(fb, "cash", cash, ok, in.defaults.Cash)
	change, ok := extractChangeAmount(seq)
	change = pick(fb, "change_amount", change, ok, in.defaults.ChangeAmount)

	items := scanItems(seq)
	if len(items) == 0 {
		items = in.defaults.sampleItems()
		fb.fields = append(fb.fields, "items")
	}

	if len(fb.fields) > 0 {
		slog.Debug("Applied receipt defaults", "fields", fb.fields, "lines", len(seq))
	}

	return Receipt{
		MerchantName:  merchant,
		Branch:        branch,
		ManagerName:   manager,
		CashierNumber: cashier,
		Subtotal:      subtotal,
		Cash:          cash,
		ChangeAmount:  change,
		Items:         items,
		ReceiptDate:   in.clock(),
	}
}

func (in *Interpreter) clock() time.Time {
	if in.now == nil {
		return time.Now()
	}
	return in.now()
}

// fallbacks records which fields were defaulted in one call.
type fallbacks struct {
	fields []string
}

func pick[T any](fb *fallbacks, field string, value T, ok bool, fallback T) T {
	if ok {
		return value
	}
	fb.fields = append(fb.fields, field)
	return fallback
}
