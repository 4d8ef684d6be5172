package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CALENDAR / PRORATA UTILITIES
// =============================================================================

// IsFullMonth reports whether [start, end] covers exactly one whole calendar
// month: start on day 1, end on the last day of that same month.
func IsFullMonth(start, end Date) bool {
	if start.Day() != 1 || !start.SameMonth(end) {
		return false
	}
	return end.Day() == MonthLength(start)
}

// DaysInMonth counts the days of [start, end], both inclusive. The span must
// sit inside a single calendar month.
func DaysInMonth(start, end Date) (int, error) {
	if !start.SameMonth(end) {
		return 0, &InvalidInputError{
			Field:   "span",
			Message: fmt.Sprintf("%s and %s are not in the same month", start, end),
		}
	}
	if end.Before(start) {
		return 0, &InvalidInputError{
			Field:   "span",
			Message: fmt.Sprintf("%s is before %s", end, start),
		}
	}
	return DaysBetween(start, end) + 1, nil
}

// ProrataRatio is the share of its month that [start, end] covers, rounded
// to 2 decimal places. 2021-01-15..2021-01-31 is 17/31 = 0.55.
func ProrataRatio(start, end Date) (decimal.Decimal, error) {
	days, err := DaysInMonth(start, end)
	if err != nil {
		return decimal.Zero, err
	}
	ratio := decimal.NewFromInt(int64(days)).Div(decimal.NewFromInt(int64(MonthLength(start))))
	return RoundRatio(ratio), nil
}

// MonthFraction is 1 for a full month and the prorata ratio otherwise.
func MonthFraction(span Period) (decimal.Decimal, error) {
	if IsFullMonth(span.Start, span.End) {
		return decimal.NewFromInt(1), nil
	}
	return ProrataRatio(span.Start, span.End)
}
