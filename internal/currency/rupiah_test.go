package currency

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"single digit", "0", "Rp0"},
		{"three digits", "500", "Rp500"},
		{"four digits", "1500", "Rp1.500"},
		{"six digits", "150000", "Rp150.000"},
		{"seven digits", "1500000", "Rp1.500.000"},
		{"letter prefix is not a boundary", "a123", "Rpa.123"},
		{"dash is a boundary", "-123456", "Rp-123.456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRupiah(tt.value))
		})
	}
}

func TestParseRupiah(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    string
	}{
		{"empty", "", ""},
		{"formatted", "Rp1.500.000", "1500000"},
		{"spaces and commas", "Rp 150.000,00", "15000000"},
		{"letters only", "Rp", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRupiah(tt.display))
		})
	}
}

func TestParseRupiah_inverts_FormatRupiah(t *testing.T) {
	values := []string{"0", "7", "10", "999", "1000", "123456789", "000123", "18446744073709551615"}
	for n := 0; n < 5000; n += 37 {
		values = append(values, strconv.Itoa(n*n))
	}

	for _, v := range values {
		formatted := FormatRupiah(v)
		require.True(t, strings.HasPrefix(formatted, "Rp"), formatted)
		assert.Equal(t, v, ParseRupiah(formatted), "round trip of %q via %q", v, formatted)
	}
}

func TestFormatIDR(t *testing.T) {
	got := FormatIDR(150000)
	assert.True(t, strings.HasPrefix(got, "Rp "), got)
	assert.Contains(t, got, "150.000")
}

func TestFormatIDR_Negative(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		digits string
	}{
		{"thousands", -5000, "5.000"},
		{"smallest int64", math.MinInt64, "9.223.372.036.854.775.808"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatIDR(tt.amount)
			assert.True(t, strings.HasPrefix(got, "-Rp\u00a0"), got)
			assert.Contains(t, got, tt.digits)
			assert.Equal(t, 1, strings.Count(got, "-"), got)
		})
	}
	assert.Equal(t, "-"+FormatIDR(5000), FormatIDR(-5000))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		isFree bool
		harga  string
		check  func(t *testing.T, got string)
	}{
		{"free ignores harga", true, "50000", func(t *testing.T, got string) { assert.Equal(t, FreeLabel, got) }},
		{"paid", false, "150000", func(t *testing.T, got string) { assert.Equal(t, FormatIDR(150000), got) }},
		{"not numeric", false, "tbd", func(t *testing.T, got string) { assert.Equal(t, "tbd", got) }},
		{"empty", false, "", func(t *testing.T, got string) { assert.Equal(t, "", got) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, FormatPrice(tt.isFree, tt.harga))
		})
	}
}
