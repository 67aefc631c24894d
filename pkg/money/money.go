// Package money holds the canonical amount handling for the donation
// platform. All user-entered and gateway-reported amounts pass through
// Normalize before they are stored, summed, or displayed; ToMinorUnits
// produces the integer value the payment gateway is charged with.
package money

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used whenever a caller does not supply a currency code.
const DefaultCurrency = "INR"

var hundred = decimal.NewFromInt(100)

var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Normalize converts an arbitrary amount value into a canonical currency
// amount with at most 2 fractional digits, rounding half away from zero.
//
// nil, empty strings and values that do not parse as a finite number
// normalize to zero rather than returning an error, so one malformed
// record can never take down a dashboard render. Negative inputs also
// clamp to zero: a donation amount is non-negative by definition.
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(v any) decimal.Decimal {
	d, ok := parse(v)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}

// ToMinorUnits returns the amount in the currency's minor unit (paise for
// INR) as an integer. This is the exact value submitted to the payment
// gateway; it always re-runs the input through Normalize so residual
// floating point drift cannot change what the donor is charged.
func ToMinorUnits(v any) int64 {
	return Normalize(v).Mul(hundred).IntPart()
}

// FromMinorUnits converts a gateway minor-unit amount back to the major
// unit, e.g. 123450 paise -> 1234.50 rupees.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Shift(-2)
}

// Format renders an amount for display with a currency symbol, two
// fractional digits and locale digit grouping (Indian 2,2,3 grouping for
// INR, thousands grouping otherwise). The result is presentational only
// and must never be parsed back into a number.
func Format(v any, currency string) string {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		cur = DefaultCurrency
	}

	fixed := Normalize(v).StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped string
	if cur == "INR" {
		grouped = groupIndian(intPart)
	} else {
		grouped = groupThousands(intPart)
	}

	if sym, ok := symbols[cur]; ok {
		return sym + grouped + "." + fracPart
	}
	return cur + " " + grouped + "." + fracPart
}

func parse(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return x, true
	case string:
		return parseString(x)
	case json.Number:
		return parseString(x.String())
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case float32:
		return parse(float64(x))
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case int32:
		return decimal.NewFromInt(int64(x)), true
	case uint:
		return decimal.NewFromUint64(uint64(x)), true
	case uint64:
		return decimal.NewFromUint64(x), true
	default:
		return decimal.Zero, false
	}
}

func parseString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// groupIndian inserts separators in the Indian numbering style: the last
// three digits form one group, everything before that groups in pairs,
// e.g. "1234567" -> "12,34,567".
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var b strings.Builder
	rem := len(head) % 2
	if rem == 1 {
		b.WriteString(head[:1])
	}
	for i := rem; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	return b.String() + "," + tail
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	rem := len(digits) % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
