package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultCurrency(t *testing.T) {
	f := Default()

	assert.Equal(t, "£12,346", f.Currency(12345.6))
	assert.Equal(t, "£950", f.Currency(950))
	assert.Equal(t, "£0", f.Currency(0))
	assert.Equal(t, "£1,000", f.Currency(999.5))
	assert.Equal(t, "-£1,500", f.Currency(-1500))
	assert.Equal(t, "£1,234,567", f.Currency(1234567))
	assert.Equal(t, "GBP", f.CurrencyCode())
	assert.Equal(t, language.BritishEnglish, f.Locale())
}

func TestCurrencyNonFinite(t *testing.T) {
	f := Default()

	assert.Equal(t, "£∞", f.Currency(math.Inf(1)))
	assert.Equal(t, "-£∞", f.Currency(math.Inf(-1)))
	assert.Equal(t, "NaN", f.Currency(math.NaN()))
}

func TestNumberDecimals(t *testing.T) {
	f := Default()

	assert.Equal(t, "8,000", f.Number(8000, 0))
	assert.Equal(t, "1,234.57", f.Number(1234.567, 2))
	assert.Equal(t, "0.05", f.Number(0.05, 2))
	assert.Equal(t, "-42.5", f.Number(-42.5, 1))
	assert.Equal(t, "12", f.Number(12.4, -3))
	assert.Equal(t, "∞", f.Number(math.Inf(1), 0))
}

func TestGermanConventions(t *testing.T) {
	f, err := New(Options{Locale: "de-AT", Currency: "EUR"})
	require.NoError(t, err)

	assert.Equal(t, language.German, f.Locale())
	assert.Equal(t, "12.346\u00a0€", f.Currency(12345.6))
	assert.Equal(t, "1.234,5", f.Number(1234.5, 1))
}

func TestUnknownSymbolFallsBackToCode(t *testing.T) {
	f, err := New(Options{Locale: "en-US", Currency: "CHF"})
	require.NoError(t, err)

	assert.Equal(t, "CHF1,200", f.Currency(1200))
}

func TestUnsupportedLocaleMatchesDefault(t *testing.T) {
	f, err := New(Options{Locale: "ja-JP"})
	require.NoError(t, err)

	assert.Equal(t, language.BritishEnglish, f.Locale())
	assert.Equal(t, "£2,500", f.Currency(2500))
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Locale: "not a locale!"})
	assert.Error(t, err)

	_, err = New(Options{Currency: "POUNDS"})
	assert.Error(t, err)
}
