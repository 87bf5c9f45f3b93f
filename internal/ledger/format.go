package ledger

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amounts are displayed with Indian numbering: grouped as 1,23,456.78
// below a thousand rupees of magnitude and abbreviated with the
// conventional suffixes above it.
var (
	thousand = decimal.NewFromInt(1_000)
	lakh     = decimal.NewFromInt(100_000)
	crore    = decimal.NewFromInt(10_000_000)

	printer = message.NewPrinter(language.MustParse("en-IN"))
)

// FormatDisplayAmount renders an amount as a signed display string.
//
// Income amounts are prefixed with "+", expenses with "-". Magnitudes of
// at least a thousand, a lakh or a crore are abbreviated with the K, L
// and Cr suffixes.
func FormatDisplayAmount(amount decimal.Decimal, direction Direction) string {
	sign := "+"
	if direction == Expense {
		sign = "-"
	}

	abs := amount.Abs()

	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + "₹" + abs.Div(crore).Round(2).String() + "Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + "₹" + abs.Div(lakh).Round(2).String() + "L"
	case abs.GreaterThanOrEqual(thousand):
		return sign + "₹" + abs.Div(thousand).Round(2).String() + "K"
	}

	return sign + FormatGroupedAmount(abs)
}

// FormatGroupedAmount renders the full, unabbreviated amount with
// Indian digit grouping and two fraction digits, e.g. ₹1,23,456.78.
func FormatGroupedAmount(amount decimal.Decimal) string {
	f, _ := amount.Abs().Float64()
	return printer.Sprintf("₹%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
