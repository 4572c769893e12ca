package timefmt

// Time unit sizes in seconds. Days are fixed-length; there is no calendar
// awareness anywhere in this package.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400

	// DecadeSeconds is the largest magnitude the widest styles can
	// display: ten 365-day years, leap years ignored.
	DecadeSeconds = 10 * 365 * SecondsPerDay
)

// Duration is a signed count of seconds to render, or the explicit absent
// value. The zero Duration is absent.
type Duration struct {
	// Value is the signed second count. Meaningless when Valid is false.
	Value float64

	// Valid distinguishes a real value from the absent sentinel.
	Valid bool
}

// Seconds wraps a second count as a present Duration.
func Seconds(v float64) Duration {
	return Duration{Value: v, Valid: true}
}

// Absent is the no-value Duration. It renders as the absent glyph pattern.
var Absent = Duration{}
