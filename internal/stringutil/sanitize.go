// Package stringutil provides text helpers for documentation sanitization
// and fallback-stub naming.
package stringutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RelabelBareFences rewrites every unlabeled opening code fence to an
// explicit non-executable "```text" fence. Closing fences are left alone.
// The corpus uses bare fences for curl/kubectl command lines and HTTP
// transcripts, which downstream documentation tooling would otherwise treat
// as executable examples.
// Returns the rewritten text and the number of fences relabeled.
func RelabelBareFences(s string) (string, int) {
	if !strings.Contains(s, "```") {
		return s, 0
	}
	lines := strings.Split(s, "\n")
	relabeled := 0
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "```") {
			continue
		}
		if inFence {
			inFence = false
			continue
		}
		inFence = true
		if trimmed == "```" {
			indent := line[:strings.Index(line, "```")]
			lines[i] = indent + "```text"
			relabeled++
		}
	}
	return strings.Join(lines, "\n"), relabeled
}

// placeholderTokens are angle-bracket placeholders and markers known to be
// misinterpreted by downstream documentation tooling.
var placeholderTokens = map[string]string{
	"<host>":     `\<host\>`,
	"<port>":     `\<port\>`,
	"<resource>": `\<resource\>`,
	"[V2]":       `\[V2\]`,
}

// EscapePlaceholders escapes angle-bracket placeholder tokens and literal
// markers. Returns the rewritten text and the number of replacements made.
func EscapePlaceholders(s string) (string, int) {
	count := 0
	for token, escaped := range placeholderTokens {
		if n := strings.Count(s, token); n > 0 {
			s = strings.ReplaceAll(s, token, escaped)
			count += n
		}
	}
	return s, count
}

// EscapeTemplateDelims escapes <% %> template delimiters found in example
// fields (log-forwarding templates such as "DD_KEY <%pri%>"). Text that
// already carries escaped delimiters is left alone so the pass stays
// idempotent.
func EscapeTemplateDelims(s string) (string, int) {
	if strings.Contains(s, `\<%`) {
		return s, 0
	}
	count := strings.Count(s, "<%") + strings.Count(s, "%>")
	if count == 0 {
		return s, 0
	}
	s = strings.ReplaceAll(s, "<%", `\<%`)
	s = strings.ReplaceAll(s, "%>", `%\>`)
	return s, count
}

var titleCaser = cases.Title(language.English)

// TitleWords converts a snake_case or kebab-case identifier into a
// human-readable Title Case phrase, for fallback-stub titles.
func TitleWords(identifier string) string {
	words := strings.NewReplacer("_", " ", "-", " ").Replace(identifier)
	return titleCaser.String(words)
}
