package slug

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	suffixLength   = 6
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	dashRuns     = regexp.MustCompile(`-+`)

	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make builds a URL-safe slug from a free-text title and appends a short
// random suffix so two packages with the same title never collide.
// "Escapada a Miami!" becomes something like "escapada-a-miami-k3x9q2".
func Make(title string) string {
	base := Normalize(title)
	suffix := randomCode(suffixLength)

	if base == "" {
		return suffix
	}

	return base + "-" + suffix
}

// Normalize lowercases the text, strips diacritics, drops everything outside
// [a-z0-9\s-] and collapses whitespace and dash runs to single dashes. It is
// a total function; any input yields a (possibly empty) valid slug base.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// Malformed input falls through unstripped; the invalid-char pass
		// below still guarantees a URL-safe result.
		stripped = lowered
	}

	cleaned := invalidChars.ReplaceAllString(stripped, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = whitespace.ReplaceAllString(cleaned, "-")
	cleaned = dashRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(cleaned, "-")
}

func randomCode(length int) string {
	var builder strings.Builder

	max := big.NewInt(int64(len(suffixAlphabet)))

	for range length {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// fall back to the first symbol rather than propagate.
			builder.WriteByte(suffixAlphabet[0])

			continue
		}

		builder.WriteByte(suffixAlphabet[n.Int64()])
	}

	return builder.String()
}
