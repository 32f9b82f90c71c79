package helpers

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// richTextPolicy is the tag allow-list for formatted fields; everything
// outside it, scripts and event handlers included, is stripped.
var richTextPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "b", "i", "u", "ul", "ol", "li")
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}()

// NormalizeText trims the value and collapses CRLF line endings.
func NormalizeText(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.TrimSpace(value)
}

// NormalizeRichText sanitizes formatted text down to the restricted tag
// allow-list before the usual trimming.
func NormalizeRichText(value string) string {
	return NormalizeText(richTextPolicy.Sanitize(value))
}

// SplitLines turns newline-joined list text into its entries, dropping
// empty lines and surrounding whitespace.
func SplitLines(value string) []string {
	result := []string{}
	for _, line := range strings.Split(NormalizeText(value), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result = append(result, line)
	}
	return result
}

// JoinLines is the inverse of SplitLines; entries are stored newline-joined
// to keep the persisted schema flat.
func JoinLines(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		cleaned = append(cleaned, item)
	}
	return strings.Join(cleaned, "\n")
}
