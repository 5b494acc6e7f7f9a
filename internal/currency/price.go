package currency

import "strconv"

// FreeLabel is shown instead of a price for free events.
const FreeLabel = "Gratis"

// FormatPrice renders a stored harga for display: FreeLabel for free events,
// otherwise the IDR amount. Values that are not whole numbers are returned as stored.
func FormatPrice(isFree bool, harga string) string {
	if isFree {
		return FreeLabel
	}
	amount, err := strconv.ParseInt(harga, 10, 64)
	if err != nil {
		return harga
	}
	return FormatIDR(amount)
}
