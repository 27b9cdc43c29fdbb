package holding

import (
	"time"
)

const (
	StatusSafe    = "Safe"
	StatusWarning = "Warning"
	StatusExpired = "Expired"
	StatusUnknown = "Unknown"

	holdingDateLayout = "2006-01-02"
	warningDays       = 3
)

// determineStatus classifies a yyyy-mm-dd expiration date relative to now.
// Comparison is by calendar day: a holding expiring today is still Warning,
// it becomes Expired the day after.
func determineStatus(expirationDate string, now time.Time) string {
	expiry, err := time.ParseInLocation(holdingDateLayout, expirationDate, now.Location())
	if err != nil {
		return StatusUnknown
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if expiry.Before(today) {
		return StatusExpired
	}

	if expiry.Before(today.AddDate(0, 0, warningDays)) {
		return StatusWarning
	}

	return StatusSafe
}
