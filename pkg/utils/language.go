package utils

import "strings"

type Lang string

const (
	EN Lang = "en"
	ES Lang = "es"
)

type Language struct {
	EN string
	ES string
}

// By falls back to English when the requested translation is missing.
func (l Language) By(lang Lang) string {
	if lang == ES && l.ES != "" {
		return l.ES
	}
	return l.EN
}

func ParseLang(lang string) (Lang, bool) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en":
		return EN, true
	case "es":
		return ES, true
	default:
		return "", false
	}
}
