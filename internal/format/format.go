// Package format renders money and counts for display.
//
// Locale and currency are explicit Options rather than process-wide state.
// The defaults match UK presentation: en-GB grouping, pounds sterling, whole units.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	DefaultLocale   = "en-GB"
	DefaultCurrency = "GBP"

	maxDecimals = 9
)

// Options selects the display conventions of a Formatter.
type Options struct {
	Locale   string // BCP 47 tag, e.g. "en-GB"
	Currency string // ISO 4217 code, e.g. "GBP"
}

// DefaultOptions returns en-GB / GBP.
func DefaultOptions() Options {
	return Options{Locale: DefaultLocale, Currency: DefaultCurrency}
}

type convention struct {
	thousands    string
	decimal      string
	symbolSuffix bool
}

var (
	supportedLocales = []language.Tag{
		language.BritishEnglish,
		language.AmericanEnglish,
		language.German,
		language.French,
	}
	conventions = []convention{
		{thousands: ",", decimal: "."},
		{thousands: ",", decimal: "."},
		{thousands: ".", decimal: ",", symbolSuffix: true},
		{thousands: "\u202f", decimal: ",", symbolSuffix: true},
	}
	localeMatcher = language.NewMatcher(supportedLocales)

	symbols = map[string]string{
		"GBP": "£",
		"EUR": "€",
		"USD": "$",
		"JPY": "¥",
	}
)

// Formatter formats values for one locale and currency. It is safe for concurrent use.
type Formatter struct {
	locale   language.Tag
	conv     convention
	currency currency.Unit
	symbol   string
}

// New builds a Formatter. Empty fields fall back to DefaultOptions.
// Unsupported locales are matched to the closest supported one.
func New(opts Options) (*Formatter, error) {
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}

	requested, err := language.Parse(opts.Locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", opts.Locale, err)
	}
	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", opts.Currency, err)
	}

	_, idx, _ := localeMatcher.Match(requested)

	symbol, ok := symbols[unit.String()]
	if !ok {
		symbol = unit.String()
	}

	return &Formatter{
		locale:   supportedLocales[idx],
		conv:     conventions[idx],
		currency: unit,
		symbol:   symbol,
	}, nil
}

// Default returns the en-GB / GBP formatter.
func Default() *Formatter {
	f, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the supported locale the formatter resolved to.
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// CurrencyCode returns the ISO 4217 code in use.
func (f *Formatter) CurrencyCode() string {
	return f.currency.String()
}

// Currency formats v as whole currency units, e.g. "£12,346" for en-GB.
func (f *Formatter) Currency(v float64) string {
	var digits string
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 0):
		digits = "∞"
	default:
		digits = f.group(math.Abs(v), 0)
	}

	sign := ""
	if v < 0 && digits != "0" {
		sign = "-"
	}

	if f.conv.symbolSuffix {
		// Non-breaking space between amount and symbol.
		return sign + digits + "\u00a0" + f.symbol
	}
	return sign + f.symbol + digits
}

// Number formats v with exactly decimals fractional digits and locale grouping.
// decimals is clamped to [0, 9].
func (f *Formatter) Number(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	digits := f.group(math.Abs(v), clampDecimals(decimals))
	if v < 0 && strings.Trim(digits, "0"+f.conv.thousands+f.conv.decimal) != "" {
		return "-" + digits
	}
	return digits
}

// group renders a non-negative finite value with the locale separators.
func (f *Formatter) group(v float64, decimals int) string {
	pattern := "#" + f.conv.thousands + "###" + f.conv.decimal + strings.Repeat("#", decimals)
	return humanize.FormatFloat(pattern, v)
}

func clampDecimals(d int) int {
	if d < 0 {
		return 0
	}
	if d > maxDecimals {
		return maxDecimals
	}
	return d
}
