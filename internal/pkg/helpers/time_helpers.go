package helpers

import "time"

// LocalTimeLayout is the display format used for the created_at_local field
// on comment rows.
const LocalTimeLayout = "2006-01-02 15:04:05"

// FormatLocal renders a timestamp in the server's local timezone for display.
func FormatLocal(t time.Time) string {
	return t.Local().Format(LocalTimeLayout)
}