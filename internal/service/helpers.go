package service

import (
	"time"

	"ejderhub-api/internal/response"
)

const dateLayout = "2006-01-02"

// validateDateRange checks that both dates parse and that the end does not
// precede the start. Empty dates are allowed; open-ended ranges are common.
func validateDateRange(startDate, endDate string) error {
	var start, end time.Time
	var err error

	if startDate != "" {
		start, err = time.Parse(dateLayout, startDate)
		if err != nil {
			return response.NewValidationError("Invalid start date format, expected YYYY-MM-DD", startDate)
		}
	}
	if endDate != "" {
		end, err = time.Parse(dateLayout, endDate)
		if err != nil {
			return response.NewValidationError("Invalid end date format, expected YYYY-MM-DD", endDate)
		}
	}
	if startDate != "" && endDate != "" && end.Before(start) {
		return response.NewValidationError("End date must not precede start date", "")
	}
	return nil
}

// clampProgress bounds a completion percentage to [0, 100]
func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// today returns the current date in the wire format
func today() string {
	return time.Now().UTC().Format(dateLayout)
}

// plusDays shifts a wire-format date forward by n days. An unparseable input
// is returned unchanged.
func plusDays(date string, n int) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(dateLayout)
}
