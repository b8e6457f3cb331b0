package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKnownUnresolvable(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"../../../shared/attributes/region_slug.yml", true},
		{"#/api/v2/droplets", true},
		{"kubernetes/node.yml#/node", true},
		{"shared/attributes/tag_name.yml#/tag", true},
		{"sizes.yml", true},
		{"sizes.yml#/size", false},
		{"#/definitions/droplet", false},
		{"types.yaml", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, isKnownUnresolvable(tt.ref))
		})
	}
}

func TestCleanUnresolvedReplacesMatchingRefs(t *testing.T) {
	r := newTestResolver(t)
	doc := mustParse(t, `
bad:
  $ref: "kubernetes/node.yml#/node"
items:
  - $ref: "sizes.yml"
keep:
  $ref: "#/definitions/droplet"
`)

	r.cleanUnresolved(doc)

	bad := mustGet(t, doc, "bad")
	assert.Equal(t, "string", mustGet(t, bad, "type").Str())
	assert.Contains(t, mustGet(t, bad, "description").Str(), "kubernetes/node.yml#/node")

	items := mustGet(t, doc, "items")
	require.Len(t, items.Items, 1)
	assert.Equal(t, "string", mustGet(t, items.Items[0], "type").Str())

	// Refs outside the known-unresolvable set survive untouched
	ref, ok := mustGet(t, doc, "keep").Ref()
	require.True(t, ok)
	assert.Equal(t, "#/definitions/droplet", ref)

	assert.Equal(t, 2, r.stats.RefsCleaned)
	assert.Len(t, r.warnings, 2)
}

func TestWeldCleansRefsSurvivingFinalPass(t *testing.T) {
	// With a single pass, a reference introduced by pointer resolution is
	// never revisited; the cleanup walk must catch it.
	dir := t.TempDir()
	path := writeFixture(t, dir, "api.yaml", `
x:
  $ref: "#/definitions/wrapper"
definitions:
  wrapper:
    $ref: "legacy/node.yml"
`)

	result, err := Weld(WithFilePath(path), WithMaxPasses(1))
	require.NoError(t, err)

	x := mustGet(t, result.Document, "x")
	assert.Equal(t, "string", mustGet(t, x, "type").Str())
	assert.Contains(t, mustGet(t, x, "description").Str(), "legacy/node.yml")
	assert.Equal(t, 1, result.Stats.RefsCleaned)
}
