package timefmt

// MaxFractionDigits is the widest fraction field a Config accepts.
const MaxFractionDigits = 6

// Config holds the symbols and separators the codec reads on every Encode
// and Decode call. All string fields are independently settable and
// matched byte-exact; the codec never mutates a Config. The zero value is
// not the default symbol set; use NewConfig.
//
// Config carries no synchronization. Callers that share one across
// goroutines must not mutate it while a call is in flight.
type Config struct {
	// Separators follow their field. Day, hour and minute separators
	// join a field to the next one; the second separator trails the
	// whole seconds group and is empty by default, so it only appears
	// when set.
	DaySeparator    string
	HourSeparator   string
	MinuteSeparator string
	SecondSeparator string

	// Unit labels sit between a field's digits and its separator.
	// All default to empty.
	DayUnit    string
	HourUnit   string
	MinuteUnit string
	SecondUnit string

	// FractionSeparator precedes the fraction digits.
	FractionSeparator string

	// OverflowGlyph substitutes for digits when a value's magnitude
	// exceeds what the style or the global range can display.
	OverflowGlyph string

	// AbsentGlyph substitutes for digits when rendering the absent value.
	AbsentGlyph string

	// NegativeSign and PositiveSign prefix rendered values. On decode
	// the negative symbol is tried first; an empty symbol matches any
	// text.
	NegativeSign string
	PositiveSign string

	fractionDigits int
}

// NewConfig returns a Config with the default symbol set: ":" between
// day/hour/minute fields, "." before the fraction, "*" for overflow, "-"
// for both the absent glyph and the negative sign, everything else empty,
// and zero fraction digits.
func NewConfig() *Config {
	return &Config{
		DaySeparator:      ":",
		HourSeparator:     ":",
		MinuteSeparator:   ":",
		FractionSeparator: ".",
		OverflowGlyph:     "*",
		AbsentGlyph:       "-",
		NegativeSign:      "-",
	}
}

// SetFractionDigits stores the number of fraction digits to render and
// parse. Values outside [0, MaxFractionDigits] are silently clamped.
func (c *Config) SetFractionDigits(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxFractionDigits {
		n = MaxFractionDigits
	}
	c.fractionDigits = n
}

// FractionDigits returns the fraction digit count effective under the
// given style. Styles without a seconds field never show a fraction and
// always report zero.
func (c *Config) FractionDigits(style Style) int {
	if !style.HasSeconds() {
		return 0
	}
	return c.fractionDigits
}
