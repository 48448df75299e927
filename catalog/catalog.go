// Package catalog holds every user-facing string, keyed by message ID and
// locale. Callers look text up by ID; no other package branches on language.
package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// Locale identifies a supported interface language.
type Locale string

const (
	LocaleEnglish   Locale = "en"
	LocaleHungarian Locale = "hu"
)

// ParseLocale validates a locale token from a flag or preference value.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleEnglish, LocaleHungarian:
		return Locale(s), true
	}
	return "", false
}

// DetectLocale derives the interface language from a LANG environment value
// (for example "hu_HU.UTF-8"). Anything that is not Hungarian is English.
func DetectLocale(langEnv string) Locale {
	if strings.HasPrefix(langEnv, "hu") {
		return LocaleHungarian
	}
	return LocaleEnglish
}

// ID names a message in the catalog.
type ID string

// Catalog resolves message IDs to text in a fixed locale.
type Catalog struct {
	locale Locale
}

// New returns a catalog bound to the given locale.
func New(locale Locale) *Catalog {
	return &Catalog{locale: locale}
}

// Locale returns the locale the catalog was bound to.
func (c *Catalog) Locale() Locale { return c.locale }

// Get returns the message text for id. Hungarian falls back to English for
// messages that lack a translation; an unknown id comes back as its own name
// so a missing entry is visible instead of silent.
func (c *Catalog) Get(id ID) string {
	byLocale, ok := messages[id]
	if !ok {
		return string(id)
	}
	if text, ok := byLocale[c.locale]; ok {
		return text
	}
	if text, ok := byLocale[LocaleEnglish]; ok {
		return text
	}
	return string(id)
}

// Getf formats the message for id with fmt.Sprintf semantics.
func (c *Catalog) Getf(id ID, args ...interface{}) string {
	return fmt.Sprintf(c.Get(id), args...)
}

// RandomSuccess picks one of the post-push encouragement lines.
func (c *Catalog) RandomSuccess(rng *rand.Rand) string {
	lines := successMessages[c.locale]
	if len(lines) == 0 {
		lines = successMessages[LocaleEnglish]
	}
	if len(lines) == 0 {
		return ""
	}
	if rng == nil {
		return lines[0]
	}
	return lines[rng.Intn(len(lines))]
}
