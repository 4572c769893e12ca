package timefmt

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownStyle is returned by ParseStyle for an unrecognized style name.
var ErrUnknownStyle = errors.New("unknown style name")

// Style selects which clock fields a rendered duration shows.
type Style uint8

const (
	// StyleFull shows days through seconds: d:hh:mm:ss[.f].
	StyleFull Style = iota

	// StyleDHHMM shows days, hours and minutes: d:hh:mm.
	StyleDHHMM

	// StyleHHMM shows hours and minutes: hh:mm.
	StyleHHMM

	// StyleHHMMSS shows hours through seconds: hh:mm:ss[.f].
	StyleHHMMSS

	// StyleMMSS shows minutes and seconds: mm:ss[.f].
	StyleMMSS

	// StyleSS shows seconds only: ss[.f].
	StyleSS

	// StyleAuto resolves to the narrowest seconds-bearing style that
	// fits the value's magnitude at encode time.
	StyleAuto
)

// styleSpec describes the fields a style renders and the largest integer
// second count it can display before switching to overflow glyphs.
type styleSpec struct {
	days, hours, minutes, seconds bool
	limit                         int64
}

// Per-style field table. StyleAuto carries the full layout so that values
// handled before resolution (absent, out of global range) have one.
var styleSpecs = [...]styleSpec{
	StyleFull:   {days: true, hours: true, minutes: true, seconds: true, limit: DecadeSeconds},
	StyleDHHMM:  {days: true, hours: true, minutes: true, limit: DecadeSeconds},
	StyleHHMM:   {hours: true, minutes: true, limit: SecondsPerDay - 1},
	StyleHHMMSS: {hours: true, minutes: true, seconds: true, limit: SecondsPerDay - 1},
	StyleMMSS:   {minutes: true, seconds: true, limit: SecondsPerHour - 1},
	StyleSS:     {seconds: true, limit: SecondsPerMinute - 1},
	StyleAuto:   {days: true, hours: true, minutes: true, seconds: true, limit: DecadeSeconds},
}

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleFull:
		return "FULL"
	case StyleDHHMM:
		return "DHHMM"
	case StyleHHMM:
		return "HHMM"
	case StyleHHMMSS:
		return "HHMMSS"
	case StyleMMSS:
		return "MMSS"
	case StyleSS:
		return "SS"
	case StyleAuto:
		return "AUTO"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the style is one of the defined styles.
func (s Style) IsValid() bool {
	return s <= StyleAuto
}

// HasSeconds returns true if the style renders a seconds field (and may
// therefore carry a fraction).
func (s Style) HasSeconds() bool {
	return s.spec().seconds
}

func (s Style) spec() styleSpec {
	if !s.IsValid() {
		return styleSpec{}
	}
	return styleSpecs[s]
}

// Resolve maps StyleAuto to a concrete style for a value with the given
// second count, picking by magnitude. Concrete styles resolve to
// themselves.
func (s Style) Resolve(seconds float64) Style {
	if s != StyleAuto {
		return s
	}
	switch m := math.Abs(seconds); {
	case m >= SecondsPerDay:
		return StyleFull
	case m >= SecondsPerHour:
		return StyleHHMMSS
	case m >= SecondsPerMinute:
		return StyleMMSS
	default:
		return StyleSS
	}
}

// ParseStyle maps a style name to its Style. Accepted names are the
// lowercase field patterns (full, dhhmmssf, dhhmm, hhmm, hhmmssf, mmssf,
// ssf) plus auto or required for the magnitude-resolved style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "full", "dhhmmssf":
		return StyleFull, nil
	case "dhhmm":
		return StyleDHHMM, nil
	case "hhmm":
		return StyleHHMM, nil
	case "hhmmssf":
		return StyleHHMMSS, nil
	case "mmssf":
		return StyleMMSS, nil
	case "ssf":
		return StyleSS, nil
	case "auto", "required":
		return StyleAuto, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}
