// Package timefmt converts a second count into clock-style display text
// (for example "1:02:33:04.5") and parses such text back into seconds.
//
// # Styles
//
// A Style names the fields a rendered value shows, most significant first:
// days, hours, minutes, seconds and an optional fraction. Concrete styles
// have fixed fields; StyleAuto resolves to the narrowest seconds-bearing
// style that fits the value's magnitude at encode time.
//
// # Symbols
//
// Config carries every separator, unit label, sign and glyph string, each
// independently settable. Both Encode and Decode read the configuration on
// every call and never mutate it. Symbols are matched byte-exact.
//
// # Absence and overflow
//
// Encode never fails. The absent value renders each field as copies of the
// absent glyph, and a value whose magnitude exceeds what the style (or the
// ten-year global range) can show renders as the overflow glyph pattern.
//
// # Parsing
//
// Decode scans right to left: fixed two-digit fields and their separators
// are stripped from the end of the text, and the variable-width days field
// consumes whatever remains. Parsing fails closed; any separator mismatch,
// out-of-range field or leftover text yields no value rather than a
// best-effort number.
package timefmt
