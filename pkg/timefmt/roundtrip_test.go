package timefmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Encoding then decoding a displayable value must recover it to within a
// little over one unit of the last fraction digit (rounding plus float
// noise). Values are chosen so that rounding cannot carry past the
// style's limit.
func TestRoundTrip(t *testing.T) {
	values := map[Style][]float64{
		StyleSS:     {0, 1.25, 7.5, 31.4159, 58.4, -12.75, -58.4},
		StyleMMSS:   {0, 59.4, 61.111, 754.3, 1800.5, 3598.2, -754.3},
		StyleHHMMSS: {0, 3600.5, 45296.456, 86398.25, -3725.9},
		StyleFull:   {0, 86400.5, 12345678.901, 255999.25, 315359998.4, -86400.5},
	}

	for style, vals := range values {
		for _, v := range vals {
			for fd := 0; fd <= 3; fd++ {
				cfg := NewConfig()
				cfg.SetFractionDigits(fd)

				text := Encode(Seconds(v), style, cfg)
				got, ok := Decode(text, style, cfg)
				require.True(t, ok, "Decode(%q) failed for %v %v fd=%d", text, style, v, fd)

				tolerance := 1.1 / math.Pow(10, float64(fd))
				require.InDelta(t, v, got, tolerance,
					"%v fd=%d: %v -> %q -> %v", style, fd, v, text, got)
			}
		}
	}
}

// StyleAuto picks a layout from the value, and its decoder accepts every
// layout it can emit.
func TestRoundTripAuto(t *testing.T) {
	for _, v := range []float64{0, 59.4, 60, 754.3, 3600, 45296.456, 86400, 12345678.901, -754.3} {
		for fd := 0; fd <= 3; fd++ {
			cfg := NewConfig()
			cfg.SetFractionDigits(fd)

			text := Encode(Seconds(v), StyleAuto, cfg)
			got, ok := Decode(text, StyleAuto, cfg)
			require.True(t, ok, "Decode(%q) failed for %v fd=%d", text, v, fd)
			require.InDelta(t, v, got, 1.1/math.Pow(10, float64(fd)),
				"fd=%d: %v -> %q -> %v", fd, v, text, got)
		}
	}
}

// Round trips hold under a fully customized symbol set for the
// seconds-bearing styles.
func TestRoundTripCustomSymbols(t *testing.T) {
	cfg := NewConfig()
	cfg.DaySeparator = " "
	cfg.HourSeparator = " "
	cfg.MinuteSeparator = " "
	cfg.SecondSeparator = "!"
	cfg.DayUnit = "d"
	cfg.HourUnit = "h"
	cfg.MinuteUnit = "m"
	cfg.SecondUnit = "s"
	cfg.FractionSeparator = ","
	cfg.NegativeSign = "minus "
	cfg.PositiveSign = "plus "
	cfg.SetFractionDigits(2)

	for _, style := range []Style{StyleFull, StyleHHMMSS, StyleMMSS, StyleSS} {
		for _, v := range []float64{0, 12.25, -48.5} {
			text := Encode(Seconds(v), style, cfg)
			got, ok := Decode(text, style, cfg)
			require.True(t, ok, "Decode(%q) failed for %v %v", text, style, v)
			require.InDelta(t, v, got, 0.011, "%v: %v -> %q -> %v", style, v, text, got)
		}
	}
}
