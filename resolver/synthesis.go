package resolver

import (
	"fmt"

	"github.com/apiweld/apiweld/document"
	"github.com/apiweld/apiweld/internal/stringutil"
)

// missingSegmentStub builds the open-ended object stub returned when a
// pointer segment misses every mapping key it is tried against.
func missingSegmentStub(segment string) *document.Node {
	stub := document.NewMapping()
	stub.Set("type", document.NewString("object"))
	stub.Set("title", document.NewString(stringutil.TitleWords(segment)))
	stub.Set("description", document.NewString(
		fmt.Sprintf("Auto-generated fallback definition for: %s", segment)))
	stub.Set("additionalProperties", document.NewBool(true))
	return stub
}

// missingFileStub builds the object stub substituted for a reference whose
// target file does not exist.
func missingFileStub(ref string) *document.Node {
	stub := document.NewMapping()
	stub.Set("type", document.NewString("object"))
	stub.Set("description", document.NewString(
		fmt.Sprintf("Fallback schema for missing file reference: %s", ref)))
	stub.Set("additionalProperties", document.NewBool(true))
	return stub
}

// unresolvableRefStub builds the minimal string-typed schema the cleanup walk
// substitutes for a reference matching a known-unresolvable pattern.
func unresolvableRefStub(ref string) *document.Node {
	stub := document.NewMapping()
	stub.Set("type", document.NewString("string"))
	stub.Set("description", document.NewString(
		fmt.Sprintf("Fallback for unresolved reference: %s", ref)))
	return stub
}

// fallbackCatalog is the fixed set of well-known definitions referenced
// across the corpus whose authoritative source files are missing or
// unreachable. They are injected into the document's top-level definitions
// container before the first rewrite pass, so references to these names
// resolve deterministically without network access.
var fallbackCatalog = []struct {
	name string
	yaml string
}{
	{"forward_links", `
type: object
properties:
  first:
    type: string
    format: uri
    example: "https://api.digitalocean.com/v2/images?page=1"
  last:
    type: string
    format: uri
    example: "https://api.digitalocean.com/v2/images?page=3"
  next:
    type: string
    format: uri
    example: "https://api.digitalocean.com/v2/images?page=2"
`},
	{"backward_links", `
type: object
properties:
  first:
    type: string
    format: uri
    example: "https://api.digitalocean.com/v2/images?page=1"
  last:
    type: string
    format: uri
    example: "https://api.digitalocean.com/v2/images?page=3"
  prev:
    type: string
    format: uri
    example: "https://api.digitalocean.com/v2/images?page=1"
`},
	{"existing_tags_array", `
type: array
items:
  type: object
  properties:
    name:
      type: string
      minLength: 1
      maxLength: 255
      example: "web"
    resources:
      type: object
      properties:
        count:
          type: integer
          example: 0
        last_tagged_uri:
          type: string
          example: ""
  required:
    - name
    - resources
`},
	{"error_response", `
type: object
properties:
  id:
    type: string
    example: "bad_request"
  message:
    type: string
    example: "The request was invalid."
  request_id:
    type: string
    example: "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
required:
  - id
  - message
`},
	{"kubernetes_node_pool_taint", `
type: object
properties:
  key:
    type: string
    example: "node.kubernetes.io/example-key"
    description: "The taint key"
  value:
    type: string
    example: "example-value"
    description: "The taint value"
  effect:
    type: string
    enum:
      - NoSchedule
      - PreferNoSchedule
      - NoExecute
    example: "NoSchedule"
    description: "The taint effect"
required:
  - key
  - effect
`},
	{"region_state", `
type: string
enum:
  - available
  - unavailable
example: "available"
description: "The availability state of the region"
`},
	{"apiChatbot", `
type: object
properties:
  id:
    type: string
    example: "chatbot-123"
  name:
    type: string
    example: "Customer Support Bot"
  enabled:
    type: boolean
    example: true
  settings:
    type: object
    additionalProperties: true
`},
}

// fallbackDefinitions holds the parsed catalog, decoded once at startup.
var fallbackDefinitions = func() map[string]*document.Node {
	defs := make(map[string]*document.Node, len(fallbackCatalog))
	for _, entry := range fallbackCatalog {
		node, err := document.Parse([]byte(entry.yaml))
		if err != nil {
			panic(fmt.Sprintf("invalid fallback definition %s: %v", entry.name, err))
		}
		defs[entry.name] = node
	}
	return defs
}()

// injectFallbackDefinitions inserts the fallback catalog into the document's
// top-level definitions container, creating the container if needed. Entries
// already present are left untouched, so injection is idempotent across runs
// and never overwrites corpus-provided definitions.
func (r *refResolver) injectFallbackDefinitions(doc *document.Node) {
	if doc.Kind != document.KindMapping {
		return
	}
	defs, ok := doc.Get("definitions")
	if !ok {
		defs = document.NewMapping()
		doc.Set("definitions", defs)
	}
	if defs.Kind != document.KindMapping {
		return
	}
	for _, entry := range fallbackCatalog {
		if _, exists := defs.Get(entry.name); exists {
			continue
		}
		defs.Set(entry.name, fallbackDefinitions[entry.name].DeepCopy())
		r.stats.DefinitionsInjected++
	}
	if r.stats.DefinitionsInjected > 0 {
		r.log.Debug("injected fallback definitions", "count", r.stats.DefinitionsInjected)
	}
}
