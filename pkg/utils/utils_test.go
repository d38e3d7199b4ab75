package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFCurrency(t *testing.T) {
	cases := map[string]string{
		"0":                      "0",
		"350":                    "350",
		"1500":                   "1,500",
		"99.5":                   "99.5",
		"1234.567":               "1,234.57",
		"0.05":                   "0.05",
		"-1500.5":                "-1,500.5",
		"1e400":                  "10" + strings.Repeat(",000", 400/3),
		"9007199254740993":       "9,007,199,254,740,993",
		"123456789012345678.9":   "123,456,789,012,345,678.9",
		"2147483647000000000000": "2,147,483,647,000,000,000,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestLanguageFallback(t *testing.T) {
	l := Language{EN: "hello", ES: "hola"}
	assert.Equal(t, "hola", l.By(ES))
	assert.Equal(t, "hello", l.By(EN))
	assert.Equal(t, "hello", Language{EN: "hello"}.By(ES))
}

func TestParseLang(t *testing.T) {
	lang, ok := ParseLang(" ES ")
	assert.True(t, ok)
	assert.Equal(t, ES, lang)

	_, ok = ParseLang("uz")
	assert.False(t, ok)
}

func TestIDs(t *testing.T) {
	assert.Len(t, GenKSUID(), 27)
	assert.NotEqual(t, GenUUID(), GenUUID())
	assert.True(t, StrEmpty("  \t"))
	assert.False(t, StrEmpty(" a "))
}
