// Package currency converts between raw numeric price strings and their
// Indonesian Rupiah display forms.
package currency

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	rupiahPrefix   = "Rp"
	groupSeparator = '.'
)

// FormatRupiah renders a raw price for the price input, e.g. "1500000" -> "Rp1.500.000".
// An empty value renders as "".
func FormatRupiah(value string) string {
	if value == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(rupiahPrefix) + len(value) + len(value)/3)
	b.WriteString(rupiahPrefix)
	for i := 0; i < len(value); i++ {
		if i > 0 && needsSeparator(value, i) {
			b.WriteByte(groupSeparator)
		}
		b.WriteByte(value[i])
	}
	return b.String()
}

// needsSeparator reports whether a group separator goes before value[i]: the
// position must not be a word boundary and the digit run starting at i must
// be a positive multiple of three long.
func needsSeparator(value string, i int) bool {
	if isWordChar(value[i-1]) != isWordChar(value[i]) {
		return false
	}
	run := 0
	for j := i; j < len(value) && isDigit(value[j]); j++ {
		run++
	}
	return run > 0 && run%3 == 0
}

// ParseRupiah strips everything but ASCII digits from a displayed price.
func ParseRupiah(display string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, display)
}

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount the way the listing table shows prices
// (id-ID locale, IDR currency): "Rp 150.000,00". The sign precedes the
// symbol, so -5000 renders as "-Rp 5.000,00".
func FormatIDR(amount int64) string {
	sign := ""
	magnitude := uint64(amount)
	if amount < 0 {
		sign = "-"
		magnitude = uint64(-amount)
	}
	return sign + rupiahPrefix + " " + idPrinter.Sprint(number.Decimal(magnitude, number.Scale(2)))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isWordChar(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
