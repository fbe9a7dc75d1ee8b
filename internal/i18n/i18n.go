// Package i18n holds the localized-text type shared by catalog definitions
// and scoring results. Every localized lookup in the service goes through
// Resolve so fallback behavior is uniform.
package i18n

import "sort"

// DefaultLang is the fallback for any text missing the requested language.
const DefaultLang = "en"

// Supported language codes. Unsupported codes fall back to DefaultLang at
// each lookup site independently, so a partially translated definition can
// produce mixed-language results.
var Supported = []string{"en", "ks"}

// Text maps a language code to a localized string.
type Text map[string]string

// Resolve returns the text for lang, falling back to DefaultLang, then to
// the remaining supported languages in order, then to the lexically smallest
// populated entry, then to "". The fallback chain is deterministic for any
// given text.
func Resolve(t Text, lang string) string {
	if len(t) == 0 {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLang]; ok && v != "" {
		return v
	}
	for _, s := range Supported {
		if v, ok := t[s]; ok && v != "" {
			return v
		}
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := t[k]; v != "" {
			return v
		}
	}
	return ""
}
