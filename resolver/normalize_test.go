package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiweld/apiweld/document"
)

func TestDedupeResponsesKeepsFirstSuccess(t *testing.T) {
	r := newTestResolver(t)
	doc := mustParse(t, `
paths:
  /droplets:
    get:
      responses:
        "200":
          description: OK
        "201":
          description: Created
        "400":
          description: Bad request
        default:
          description: Error
`)

	r.dedupeResponses(doc)

	responses := mustGet(t, doc, "paths", "/droplets", "get", "responses")
	assert.Equal(t, []string{"200"}, responses.Keys())
	assert.Equal(t, 3, r.stats.ResponsesCollapsed)
}

func TestDedupeResponsesPrefersNonDefault(t *testing.T) {
	r := newTestResolver(t)
	doc := mustParse(t, `
paths:
  /actions:
    post:
      responses:
        default:
          description: Error
        "400":
          description: Bad request
        "500":
          description: Server error
`)

	r.dedupeResponses(doc)

	responses := mustGet(t, doc, "paths", "/actions", "post", "responses")
	assert.Equal(t, []string{"400"}, responses.Keys())
	assert.Equal(t, 2, r.stats.ResponsesCollapsed)
}

func TestDedupeResponsesLeavesSmallMapsAlone(t *testing.T) {
	r := newTestResolver(t)
	doc := mustParse(t, `
paths:
  /droplets:
    get:
      responses:
        "200":
          description: OK
        default:
          description: Error
`)

	r.dedupeResponses(doc)

	responses := mustGet(t, doc, "paths", "/droplets", "get", "responses")
	assert.Equal(t, []string{"200", "default"}, responses.Keys())
	assert.Zero(t, r.stats.ResponsesCollapsed)
}

func TestDedupeResponsesTrimsContentTypes(t *testing.T) {
	r := newTestResolver(t)
	doc := mustParse(t, `
paths:
  /droplets:
    get:
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: object
            application/yaml:
              schema:
                type: object
        "204":
          description: No content
`)

	r.dedupeResponses(doc)

	content := mustGet(t, doc,
		"paths", "/droplets", "get", "responses", "200", "content")
	assert.Equal(t, []string{"application/json"}, content.Keys())
}

func TestDedupeResponsesSkipsNonOperationKeys(t *testing.T) {
	r := newTestResolver(t)
	doc := mustParse(t, `
paths:
  /droplets:
    summary: Droplet operations
    parameters:
      - name: page
        in: query
    get:
      responses:
        "200":
          description: OK
`)

	r.dedupeResponses(doc)
	assert.Zero(t, r.stats.ResponsesCollapsed)
}

func TestSanitizeText(t *testing.T) {
	r := newTestResolver(t)

	doc := document.NewMapping()
	doc.Set("description", document.NewString(
		"Connect to <host> then run:\n```\ncurl https://api.example.com\n```\n"+
			"See https://github.com/google/re2/wiki/Syntax for syntax."))
	rsyslog := document.NewMapping()
	rsyslog.Set("example", document.NewString("DD_KEY <%pri%>"))
	props := document.NewMapping()
	props.Set("rsyslog", rsyslog)
	doc.Set("properties", props)

	r.sanitizeText(doc)

	desc := mustGet(t, doc, "description").Str()
	assert.Contains(t, desc, `\<host\>`)
	assert.Contains(t, desc, "```text")
	assert.Contains(t, desc, "<https://github.com/google/re2/wiki/Syntax>")

	example := mustGet(t, doc, "properties", "rsyslog", "example").Str()
	assert.Equal(t, `DD_KEY \<%pri%\>`, example)

	assert.Equal(t, 2, r.stats.TextFixes)
}

func TestSanitizeTextIsIdempotent(t *testing.T) {
	r := newTestResolver(t)
	doc := mustParse(t, `
description: "Use <host> and [V2] markers"
example: "<%pri%>"
`)

	r.sanitizeText(doc)
	first := mustGet(t, doc, "description").Str()
	firstExample := mustGet(t, doc, "example").Str()
	require.Equal(t, 2, r.stats.TextFixes)

	r.sanitizeText(doc)
	assert.Equal(t, first, mustGet(t, doc, "description").Str())
	assert.Equal(t, firstExample, mustGet(t, doc, "example").Str())
	assert.Equal(t, 2, r.stats.TextFixes, "second walk should change nothing")
}

func TestSanitizeTextIgnoresNonStringFields(t *testing.T) {
	r := newTestResolver(t)
	doc := mustParse(t, `
description:
  nested: mapping
example: 42
`)

	r.sanitizeText(doc)
	assert.Zero(t, r.stats.TextFixes)
}
