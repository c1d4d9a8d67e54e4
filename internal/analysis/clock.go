package analysis

import "fmt"

// FormatHour renders an hour of day on a 12-hour clock: 0 -> "12 AM",
// 14 -> "2 PM".
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
