package ledger

import (
	"fmt"  // Decimal formatting
	"time" // Date formatting
)

// Display normalization shared by every caller that renders report rows.
// Values are shaped here once so the presentation layers never reimplement
// NULL, date or decimal handling.

const (
	displayNull       = "NULL"                // Rendering of absent values
	displayTimeLayout = "2006-01-02 15:04:05" // Timestamp rendering
	displayDateLayout = "2006-01-02"          // Date-only rendering
)

// FormatTime renders a timestamp for display
func FormatTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}

// FormatDate renders a date-only value for display
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// FormatNullableTime renders an optional timestamp, NULL when absent
func FormatNullableTime(t *time.Time) string {
	if t == nil {
		return displayNull
	}
	return FormatTime(*t)
}

// FormatNullableString renders an optional string, NULL when absent
func FormatNullableString(s *string) string {
	if s == nil {
		return displayNull
	}
	return *s
}

// FormatPrice renders a money amount with two decimal places
func FormatPrice(p float64) string {
	return fmt.Sprintf("%.2f", p)
}
