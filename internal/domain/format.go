package domain

import (
	"fmt"
	"math"
	"time"
)

// WholeSeconds truncates a duration to whole seconds, clamping negatives to 0
func WholeSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}

// FormatElapsed renders seconds as zero-padded HH:MM:SS.
// The hour field grows past two digits for sessions of 100 hours or more.
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// HoursFromSeconds converts seconds to hours rounded to 2 decimals, the unit
// persisted on time-log records
func HoursFromSeconds(seconds int64) float64 {
	if seconds <= 0 {
		return 0
	}
	// seconds/36 is hours*100, which keeps x.5 cases exact before rounding
	return math.Round(float64(seconds)/36) / 100
}

// FormatHours renders hours with exactly 2 decimals
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}
