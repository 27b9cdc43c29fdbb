package holding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetermineStatus(t *testing.T) {
	now := time.Date(2024, 12, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		date string
		want string
	}{
		{"2024-12-09", StatusExpired},
		{"2024-12-10", StatusWarning},
		{"2024-12-12", StatusWarning},
		{"2024-12-13", StatusSafe},
		{"2025-06-01", StatusSafe},
		{"10/12/24", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, determineStatus(tt.date, now))
		})
	}
}
