package timefmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Encode renders d as display text under the given style and
// configuration. It never fails: the absent value and values the style
// cannot display render as glyph patterns instead of digits. A nil cfg
// behaves like NewConfig().
func Encode(d Duration, style Style, cfg *Config) string {
	if cfg == nil {
		cfg = NewConfig()
	}
	if !d.Valid || math.IsNaN(d.Value) {
		return encodeGlyphs(style, cfg, cfg.AbsentGlyph, "")
	}
	if math.Abs(d.Value) > DecadeSeconds {
		// Out of the global range: bare glyph pattern, no sign.
		return encodeGlyphs(style, cfg, cfg.OverflowGlyph, "")
	}

	// Resolution happens on the raw magnitude, before rounding.
	resolved := style.Resolve(d.Value)
	sign := cfg.PositiveSign
	if d.Value < 0 {
		sign = cfg.NegativeSign
	}

	fd := cfg.FractionDigits(resolved)
	mult := pow10(fd)
	mag := math.Abs(d.Value)
	whole, fracPart := math.Modf(mag)
	n := int64(whole)

	// Round the fraction to fd digits, half away from zero. Reaching a
	// whole unit carries into the integer seconds; day/hour/minute
	// boundaries cascade through the decomposition below.
	fr := int64(math.Floor(fracPart*float64(mult) + 0.5))
	if fr >= mult {
		n++
		fr = 0
	}

	sp := resolved.spec()
	if n > sp.limit {
		return encodeGlyphs(resolved, cfg, cfg.OverflowGlyph, sign)
	}

	var dayText, fracText string
	if sp.days {
		dayText = strconv.FormatInt(n/SecondsPerDay, 10)
	}
	if fd > 0 {
		fracText = fmt.Sprintf("%0*d", fd, fr)
	}
	hours := fmt.Sprintf("%02d", (n%SecondsPerDay)/SecondsPerHour)
	minutes := fmt.Sprintf("%02d", (n%SecondsPerHour)/SecondsPerMinute)
	seconds := fmt.Sprintf("%02d", n%SecondsPerMinute)

	return render(sp, cfg, sign, dayText, hours, minutes, seconds, fracText)
}

// encodeGlyphs renders the style's layout with every digit replaced by
// glyph copies: one for the days placeholder, two per fixed field, and
// one per fraction digit.
func encodeGlyphs(style Style, cfg *Config, glyph, sign string) string {
	sp := style.spec()
	pair := strings.Repeat(glyph, 2)
	var fracText string
	if fd := cfg.FractionDigits(style); fd > 0 {
		fracText = strings.Repeat(glyph, fd)
	}
	return render(sp, cfg, sign, glyph, pair, pair, pair, fracText)
}

// render joins the per-field texts with the configured unit labels and
// separators. Each field is followed by its unit label; a field's
// separator appears only when another field follows, except the second
// separator, which trails the seconds group.
func render(sp styleSpec, cfg *Config, sign, days, hours, minutes, seconds, frac string) string {
	var b strings.Builder
	b.WriteString(sign)
	if sp.days {
		b.WriteString(days)
		b.WriteString(cfg.DayUnit)
		if sp.hours {
			b.WriteString(cfg.DaySeparator)
		}
	}
	if sp.hours {
		b.WriteString(hours)
		b.WriteString(cfg.HourUnit)
		if sp.minutes {
			b.WriteString(cfg.HourSeparator)
		}
	}
	if sp.minutes {
		b.WriteString(minutes)
		b.WriteString(cfg.MinuteUnit)
		if sp.seconds {
			b.WriteString(cfg.MinuteSeparator)
		}
	}
	if sp.seconds {
		b.WriteString(seconds)
		if frac != "" {
			b.WriteString(cfg.FractionSeparator)
			b.WriteString(frac)
		}
		b.WriteString(cfg.SecondUnit)
		b.WriteString(cfg.SecondSeparator)
	}
	return b.String()
}

func pow10(n int) int64 {
	m := int64(1)
	for i := 0; i < n; i++ {
		m *= 10
	}
	return m
}
