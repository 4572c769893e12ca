package timefmt

import (
	"errors"
	"fmt"
	"strings"
)

// Internal parse error kinds. Decode collapses all of them to a bare
// failure; they exist for decodeStrict and the tests.
var (
	errBadSign    = errors.New("unrecognized sign prefix")
	errSeparator  = errors.New("separator or label mismatch")
	errNotNumeric = errors.New("malformed numeric field")
	errFieldRange = errors.New("field out of range")
	errLeftover   = errors.New("leftover text before leading field")
)

// Decode parses display text back into a second count under the given
// style and configuration. It fails closed: any violated expectation
// yields ok == false, never a partial value. A nil cfg behaves like
// NewConfig().
func Decode(text string, style Style, cfg *Config) (float64, bool) {
	v, err := decodeStrict(text, style, cfg)
	if err != nil {
		return 0, false
	}
	return v, true
}

func decodeStrict(text string, style Style, cfg *Config) (float64, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if !style.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(style))
	}

	sign, rest, err := splitSign(text, cfg)
	if err != nil {
		return 0, err
	}
	s := &scanner{rest: rest}
	switch style {
	case StyleHHMM, StyleDHHMM:
		return decodeTruncated(s, style, cfg, sign)
	default:
		return decodeSeconds(s, style, cfg, sign)
	}
}

// splitSign determines the sign multiplier from the configured sign
// symbols, tried as literal prefixes with the negative symbol first. The
// empty symbol matches any text; that order is what makes unsigned input
// parse negative when only the positive symbol is configured, and is
// deliberate.
func splitSign(text string, cfg *Config) (float64, string, error) {
	if rest, ok := strings.CutPrefix(text, cfg.NegativeSign); ok {
		return -1, rest, nil
	}
	if rest, ok := strings.CutPrefix(text, cfg.PositiveSign); ok {
		return 1, rest, nil
	}
	return 0, "", errBadSign
}

// decodeTruncated parses the styles without a seconds field. Unit labels
// are not consumed here; for these styles they are an encode-side
// decoration only.
func decodeTruncated(s *scanner, style Style, cfg *Config, sign float64) (float64, error) {
	if !s.literal(cfg.MinuteSeparator) {
		return 0, errSeparator
	}
	minutes, err := s.field(2, SecondsPerMinute-1)
	if err != nil {
		return 0, err
	}
	if !s.literal(cfg.HourSeparator) {
		return 0, errSeparator
	}
	hours, err := s.field(2, 23)
	if err != nil {
		return 0, err
	}
	total := float64(hours*SecondsPerHour + minutes*SecondsPerMinute)

	if style == StyleHHMM {
		if s.rest != "" {
			return 0, errLeftover
		}
		return sign * total, nil
	}
	if !s.literal(cfg.DaySeparator) {
		return 0, errSeparator
	}
	days, err := s.tail(DecadeSeconds)
	if err != nil {
		return 0, err
	}
	return sign * (total + float64(days)*SecondsPerDay), nil
}

// decodeSeconds parses the seconds-bearing styles. StyleAuto accepts any
// of their layouts: it returns as soon as the text is exhausted after a
// completed field, and fails like StyleFull if text remains past days.
func decodeSeconds(s *scanner, style Style, cfg *Config, sign float64) (float64, error) {
	auto := style == StyleAuto

	if !s.literal(cfg.SecondSeparator) {
		return 0, errSeparator
	}
	if !s.literal(cfg.SecondUnit) {
		return 0, errSeparator
	}
	var total float64
	if fd := cfg.FractionDigits(style); fd > 0 {
		mult := pow10(fd)
		fr, err := s.field(fd, mult-1)
		if err != nil {
			return 0, err
		}
		if !s.literal(cfg.FractionSeparator) {
			return 0, errSeparator
		}
		total += float64(fr) / float64(mult)
	}
	seconds, err := s.field(2, SecondsPerMinute-1)
	if err != nil {
		return 0, err
	}
	total += float64(seconds)
	if style == StyleSS {
		if s.rest != "" {
			return 0, errLeftover
		}
		return sign * total, nil
	}
	if auto && s.rest == "" {
		return sign * total, nil
	}

	if !s.literal(cfg.MinuteSeparator) {
		return 0, errSeparator
	}
	if !s.literal(cfg.MinuteUnit) {
		return 0, errSeparator
	}
	minutes, err := s.field(2, SecondsPerMinute-1)
	if err != nil {
		return 0, err
	}
	total += float64(minutes) * SecondsPerMinute
	if style == StyleMMSS {
		if s.rest != "" {
			return 0, errLeftover
		}
		return sign * total, nil
	}
	if auto && s.rest == "" {
		return sign * total, nil
	}

	if !s.literal(cfg.HourSeparator) {
		return 0, errSeparator
	}
	if !s.literal(cfg.HourUnit) {
		return 0, errSeparator
	}
	hours, err := s.field(2, 23)
	if err != nil {
		return 0, err
	}
	total += float64(hours) * SecondsPerHour
	if style == StyleHHMMSS {
		if s.rest != "" {
			return 0, errLeftover
		}
		return sign * total, nil
	}
	if auto && s.rest == "" {
		return sign * total, nil
	}

	if !s.literal(cfg.DaySeparator) {
		return 0, errSeparator
	}
	if !s.literal(cfg.DayUnit) {
		return 0, errSeparator
	}
	days, err := s.tail(DecadeSeconds)
	if err != nil {
		return 0, err
	}
	total += float64(days) * SecondsPerDay
	return sign * total, nil
}
