package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/timetext/timetext-go/pkg/timefmt"
)

// Preset is a symbol set declared in YAML. Omitted keys keep the codec
// defaults; an explicitly empty string is honored as an override, which
// is why the symbol fields are pointers.
type Preset struct {
	Style          string `yaml:"style"`
	FractionDigits int    `yaml:"fraction_digits"`

	DaySeparator      *string `yaml:"day_separator"`
	HourSeparator     *string `yaml:"hour_separator"`
	MinuteSeparator   *string `yaml:"minute_separator"`
	SecondSeparator   *string `yaml:"second_separator"`
	DayUnit           *string `yaml:"day_unit"`
	HourUnit          *string `yaml:"hour_unit"`
	MinuteUnit        *string `yaml:"minute_unit"`
	SecondUnit        *string `yaml:"second_unit"`
	FractionSeparator *string `yaml:"fraction_separator"`
	OverflowGlyph     *string `yaml:"overflow_glyph"`
	AbsentGlyph       *string `yaml:"absent_glyph"`
	NegativeSign      *string `yaml:"negative_sign"`
	PositiveSign      *string `yaml:"positive_sign"`
}

// ParsePreset parses a symbol preset from YAML bytes. A preset naming an
// unknown style is rejected outright rather than deferred to use time.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset: %w", err)
	}
	if p.Style != "" {
		if _, err := timefmt.ParseStyle(p.Style); err != nil {
			return nil, fmt.Errorf("preset: %w", err)
		}
	}
	return &p, nil
}

// LoadPreset loads and parses a preset from a file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParsePreset(data)
}

// TargetStyle returns the style the preset names, or fallback when the
// preset leaves it unset.
func (p *Preset) TargetStyle(fallback timefmt.Style) timefmt.Style {
	if p.Style == "" {
		return fallback
	}
	s, err := timefmt.ParseStyle(p.Style)
	if err != nil {
		return fallback
	}
	return s
}

// Config builds a codec configuration with the preset's overrides applied
// over the defaults. Fraction digits are clamped the same way a direct
// write is.
func (p *Preset) Config() *timefmt.Config {
	cfg := timefmt.NewConfig()
	override(&cfg.DaySeparator, p.DaySeparator)
	override(&cfg.HourSeparator, p.HourSeparator)
	override(&cfg.MinuteSeparator, p.MinuteSeparator)
	override(&cfg.SecondSeparator, p.SecondSeparator)
	override(&cfg.DayUnit, p.DayUnit)
	override(&cfg.HourUnit, p.HourUnit)
	override(&cfg.MinuteUnit, p.MinuteUnit)
	override(&cfg.SecondUnit, p.SecondUnit)
	override(&cfg.FractionSeparator, p.FractionSeparator)
	override(&cfg.OverflowGlyph, p.OverflowGlyph)
	override(&cfg.AbsentGlyph, p.AbsentGlyph)
	override(&cfg.NegativeSign, p.NegativeSign)
	override(&cfg.PositiveSign, p.PositiveSign)
	cfg.SetFractionDigits(p.FractionDigits)
	return cfg
}

func override(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
