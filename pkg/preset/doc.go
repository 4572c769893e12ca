// Package preset loads display symbol sets from YAML.
//
// A preset names a style and overrides any subset of the codec's symbols
// (separators, unit labels, sign strings, glyphs), giving applications
// locale-like control over how durations render without touching code.
// Presets are parsed into timefmt.Config values; the codec itself never
// reads files.
package preset
