package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelabelBareFences(t *testing.T) {
	in := "Run this:\n```\ncurl -s https://api.example.com\n```\nDone."
	got, n := RelabelBareFences(in)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Run this:\n```text\ncurl -s https://api.example.com\n```\nDone.", got)
}

func TestRelabelBareFencesKeepsLabeledFences(t *testing.T) {
	in := "```json\n{\"a\": 1}\n```\n"
	got, n := RelabelBareFences(in)
	assert.Zero(t, n)
	assert.Equal(t, in, got)
}

func TestRelabelBareFencesPreservesIndent(t *testing.T) {
	in := "  ```\n  kubectl get nodes\n  ```"
	got, n := RelabelBareFences(in)
	assert.Equal(t, 1, n)
	assert.Equal(t, "  ```text\n  kubectl get nodes\n  ```", got)
}

func TestRelabelBareFencesLeavesClosersAlone(t *testing.T) {
	// Two blocks: the closer of the first must not be treated as an opener
	in := "```sh\necho one\n```\n```\necho two\n```"
	got, n := RelabelBareFences(in)
	assert.Equal(t, 1, n)
	assert.Equal(t, "```sh\necho one\n```\n```text\necho two\n```", got)
}

func TestRelabelBareFencesNoFences(t *testing.T) {
	got, n := RelabelBareFences("plain text")
	assert.Zero(t, n)
	assert.Equal(t, "plain text", got)
}

func TestEscapePlaceholders(t *testing.T) {
	got, n := EscapePlaceholders("ssh user@<host>:<port> [V2] only")
	assert.Equal(t, 3, n)
	assert.Equal(t, `ssh user@\<host\>:\<port\> \[V2\] only`, got)

	got, n = EscapePlaceholders(got)
	assert.Zero(t, n, "escaping must be idempotent")
	assert.Contains(t, got, `\<host\>`)
}

func TestEscapeTemplateDelims(t *testing.T) {
	got, n := EscapeTemplateDelims("DD_KEY <%pri%> <%msg%>")
	assert.Equal(t, 4, n)
	assert.Equal(t, `DD_KEY \<%pri%\> \<%msg%\>`, got)

	// Already-escaped text is left alone
	got2, n2 := EscapeTemplateDelims(got)
	assert.Zero(t, n2)
	assert.Equal(t, got, got2)
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"error_response", "Error Response"},
		{"kubernetes-node-pool", "Kubernetes Node Pool"},
		{"droplet", "Droplet"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleWords(tt.in))
	}
}
