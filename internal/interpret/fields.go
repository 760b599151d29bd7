package interpret

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// merchantKeywords are business designations matched against the upper-cased
// line. Short suffixes like CO match inside longer words; the first matching
// line wins.
var merchantKeywords = []string{
	"HYPERMARKET", "STORE", "MART", "SUPERMARKET", "MARKET", "SHOP", "OUTLET",
	"CENTER", "CENTRE", "PLAZA", "MALL", "GROCERY", "FOOD", "RETAIL", "CHAIN",
	"CO", "LTD", "INC", "CORP", "COMPANY", "ENTERPRISE", "TRADING", "SDN BHD",
}

// merchantHeaderLines bounds the positional merchant fallback.
const merchantHeaderLines = 5

var (
	datePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	timePattern = regexp.MustCompile(`\d{2}:\d{2}`)
)

// labelFunc reports whether a line anchors a field.
type labelFunc func(line string) bool

// containing matches lines that contain any keyword, ignoring case.
func containing(keywords ...string) labelFunc {
	return func(line string) bool {
		return containsAny(line, keywords...)
	}
}

// exactly matches lines that are the token alone, ignoring case and
// surrounding whitespace.
func exactly(token string) labelFunc {
	return func(line string) bool {
		return isToken(line, token)
	}
}

func containsAny(line string, keywords ...string) bool {
	l := strings.ToLower(line)
	for _, k := range keywords {
		if strings.Contains(l, k) {
			return true
		}
	}
	return false
}

func isToken(line, token string) bool {
	return strings.ToLower(strings.TrimSpace(line)) == token
}

// scanLabeled walks lines in order. For each line accepted by label it parses
// the line offset positions later; the first value that parses wins. A label
// with no line at the offset, or whose value does not parse, is skipped and
// the walk continues.
func scanLabeled[T any](lines Lines, label labelFunc, offset int, parse func(string) (T, bool)) (T, bool) {
	var zero T
	for i, line := range lines {
		if !label(line) {
			continue
		}
		value, ok := lines.at(i + offset)
		if !ok {
			continue
		}
		if v, ok := parse(value); ok {
			return v, true
		}
	}
	return zero, false
}

// firstLabeled reads the value offset lines after the first line accepted by
// label. Later labels are never considered, even when that value is unusable.
func firstLabeled[T any](lines Lines, label labelFunc, offset int, parse func(string) (T, bool)) (T, bool) {
	var zero T
	for i, line := range lines {
		if !label(line) {
			continue
		}
		value, ok := lines.at(i + offset)
		if !ok {
			return zero, false
		}
		return parse(value)
	}
	return zero, false
}

func parseText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func parseCashier(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return "", false
	}
	return parseText(strings.ReplaceAll(s, "#", ""))
}

// Amounts whose exponent falls outside these bounds are rejected as misreads.
const (
	minAmountExponent = -8
	maxAmountExponent = 12
)

// parseAmount reads a currency amount, ignoring any dollar signs.
func parseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(s, "$", "")))
	if err != nil {
		return decimal.Decimal{}, false
	}
	if exp := d.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return decimal.Decimal{}, false
	}
	return d, true
}

func parsePrice(s string) (decimal.Decimal, bool) {
	d, ok := parseAmount(s)
	if !ok || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}

func parseQuantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// extractMerchantName prefers a line naming a business designation, then the
// first plausible header line, then line 0.
func extractMerchantName(lines Lines) (string, bool) {
	for _, line := range lines {
		upper := strings.ToUpper(line)
		for _, k := range merchantKeywords {
			if strings.Contains(upper, k) {
				return strings.TrimSpace(line), true
			}
		}
	}

	for i := 0; i < len(lines) && i < merchantHeaderLines; i++ {
		line := strings.TrimSpace(lines[i])
		if looksLikeMerchant(line) {
			return line, true
		}
	}

	if len(lines) == 0 {
		return "", false
	}
	return lines[0], true
}

// looksLikeMerchant rejects short lines, timestamps and document titles.
func looksLikeMerchant(line string) bool {
	if utf8.RuneCountInString(line) <= 2 {
		return false
	}
	if datePattern.MatchString(line) || timePattern.MatchString(line) {
		return false
	}
	return !containsAny(line, "receipt", "invoice")
}

func extractBranch(lines Lines) (string, bool) {
	label := func(line string) bool {
		return containsAny(line, "city", "branch", "location") && !containsAny(line, "index")
	}
	return scanLabeled(lines, label, 0, parseText)
}

func extractManagerName(lines Lines) (string, bool) {
	return firstLabeled(lines, containing("manager"), 1, parseText)
}

func extractCashierNumber(lines Lines) (string, bool) {
	return scanLabeled(lines, containing("cashier"), 1, parseCashier)
}

func extractSubtotal(lines Lines) (decimal.Decimal, bool) {
	return scanLabeled(lines, containing("sub total", "subtotal", "total"), 1, parseAmount)
}

func extractCash(lines Lines) (decimal.Decimal, bool) {
	return scanLabeled(lines, exactly("cash"), 1, parseAmount)
}

func extractChangeAmount(lines Lines) (decimal.Decimal, bool) {
	return scanLabeled(lines, exactly("change"), 1, parseAmount)
}
