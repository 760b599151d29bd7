package interpret

// scanState is the position of the item scanner relative to the item block.
type scanState int

const (
	seekingHeader scanState = iota
	inItems
)

// itemWindow is the number of lines one item occupies: product, quantity, price.
const itemWindow = 3

// scanItems reads the item block that follows a "Name" header and ends at
// the first totals line. Lines that do not start a complete item are skipped
// one at a time.
func scanItems(lines Lines) []LineItem {
	items := make([]LineItem, 0)
	state := seekingHeader

	for i := 0; i < len(lines); {
		line := lines[i]

		if state == seekingHeader {
			if isToken(line, "name") {
				state = inItems
			}
			i++
			continue
		}

		if isTotalsLine(line) {
			break
		}
		if isToken(line, "qty") || isToken(line, "price") {
			i++
			continue
		}

		item, ok := readItem(lines, i)
		if !ok {
			i++
			continue
		}
		items = append(items, item)
		i += itemWindow
	}

	return items
}

func isTotalsLine(line string) bool {
	return containsAny(line, "sub total", "total")
}

// readItem parses the window starting at i. The product line is kept as is.
func readItem(lines Lines, i int) (LineItem, bool) {
	if i+itemWindow > len(lines) {
		return LineItem{}, false
	}
	quantity, ok := parseQuantity(lines[i+1])
	if !ok {
		return LineItem{}, false
	}
	price, ok := parsePrice(lines[i+2])
	if !ok {
		return LineItem{}, false
	}
	return LineItem{
		Product:  lines[i],
		Quantity: quantity,
		Price:    price,
	}, true
}
