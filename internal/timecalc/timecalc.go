package timecalc

import "fmt"

// HoursUnit is appended to every formatted hour count.
const HoursUnit = "hrs"

// Hours renders minutes as hours with two decimals, e.g. 90 -> "1.50".
func Hours(minutes int) string {
	return fmt.Sprintf("%.2f", float64(minutes)/60)
}

// FormatHours renders minutes as a labelled hour count, e.g. 90 -> "1.50 hrs".
func FormatHours(minutes int) string {
	return Hours(minutes) + " " + HoursUnit
}

// FormatDuration formats minutes as a human-readable string like "1h 40m" or "45m".
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
