// Package clock formats the start page clock.
package clock

import "time"

// Interval is how often the clock is refreshed.
const Interval = time.Second

// Format renders t as a 12-hour time without a leading zero, e.g. "9:05 PM".
func Format(t time.Time) string {
	return t.Format("3:04 PM")
}
