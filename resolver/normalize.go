package resolver

import (
	"strings"

	"github.com/apiweld/apiweld/document"
	"github.com/apiweld/apiweld/internal/stringutil"
)

// httpMethods are the path-item keys that hold operations. Other keys
// (parameters, servers, summary) are skipped by the response normalizer.
var httpMethods = map[string]bool{
	"get":     true,
	"post":    true,
	"put":     true,
	"patch":   true,
	"delete":  true,
	"head":    true,
	"options": true,
	"trace":   true,
}

// dedupeResponses collapses each operation's response-status map to a single
// entry when it holds more than one 2xx response or more than two entries in
// total. Preference order: first 2xx, else first non-default, else default.
// This is a deliberate lossy simplification for downstream consumers that
// enforce one response shape per operation.
func (r *refResolver) dedupeResponses(doc *document.Node) {
	paths, ok := doc.Get("paths")
	if !ok || paths.Kind != document.KindMapping {
		return
	}
	for _, pathPair := range paths.Pairs {
		pathItem := pathPair.Value
		if pathItem.Kind != document.KindMapping {
			continue
		}
		for _, methodPair := range pathItem.Pairs {
			if !httpMethods[methodPair.Key] {
				continue
			}
			op := methodPair.Value
			if op.Kind != document.KindMapping {
				continue
			}
			responses, ok := op.Get("responses")
			if !ok || responses.Kind != document.KindMapping {
				continue
			}
			r.collapseResponses(pathPair.Key, methodPair.Key, responses)
		}
	}
}

func isSuccessStatus(status string) bool {
	return len(status) == 3 && status[0] == '2'
}

func (r *refResolver) collapseResponses(path, method string, responses *document.Node) {
	total := len(responses.Pairs)
	successCount := 0
	for _, p := range responses.Pairs {
		if isSuccessStatus(p.Key) {
			successCount++
		}
	}
	if successCount <= 1 && total <= 2 {
		return
	}

	var kept *document.Pair
	for i := range responses.Pairs {
		if isSuccessStatus(responses.Pairs[i].Key) {
			kept = &responses.Pairs[i]
			break
		}
	}
	if kept == nil {
		for i := range responses.Pairs {
			if responses.Pairs[i].Key != "default" {
				kept = &responses.Pairs[i]
				break
			}
		}
	}
	if kept == nil {
		for i := range responses.Pairs {
			if responses.Pairs[i].Key == "default" {
				kept = &responses.Pairs[i]
				break
			}
		}
	}
	if kept == nil {
		return
	}

	trimContentTypes(kept.Value)
	responses.Pairs = []document.Pair{*kept}
	r.stats.ResponsesCollapsed += total - 1
	r.log.Debug("collapsed operation responses",
		"path", path, "method", strings.ToUpper(method),
		"kept", kept.Key, "removed", total-1)
}

// trimContentTypes keeps only the first content-type variant of a response,
// so the kept response has exactly one shape.
func trimContentTypes(response *document.Node) {
	if response.Kind != document.KindMapping {
		return
	}
	content, ok := response.Get("content")
	if !ok || content.Kind != document.KindMapping || len(content.Pairs) <= 1 {
		return
	}
	content.Pairs = content.Pairs[:1]
}

// autolinkURLs are literal URLs known to trip downstream documentation
// tooling unless wrapped in explicit autolink brackets.
var autolinkURLs = []string{
	"https://github.com/google/re2/wiki/Syntax",
	"https://www.digitalocean.com/legal/terms-of-service-agreement/",
}

// sanitizeText rewrites description and example string fields into an inert
// form: unlabeled fenced blocks become explicit non-executable ```text
// blocks, angle-bracket placeholders and template delimiters are escaped,
// and known literal URLs are autolinked. Purely textual; schema shape is
// untouched.
func (r *refResolver) sanitizeText(node *document.Node) {
	switch node.Kind {
	case document.KindMapping:
		if desc, ok := node.Get("description"); ok && desc.Kind == document.KindString {
			if fixed, changed := sanitizeDescription(desc.Str()); changed {
				node.Set("description", document.NewString(fixed))
				r.stats.TextFixes++
			}
		}
		if example, ok := node.Get("example"); ok && example.Kind == document.KindString {
			if fixed, n := stringutil.EscapeTemplateDelims(example.Str()); n > 0 {
				node.Set("example", document.NewString(fixed))
				r.stats.TextFixes++
			}
		}
		for _, p := range node.Pairs {
			r.sanitizeText(p.Value)
		}

	case document.KindSequence:
		for _, item := range node.Items {
			r.sanitizeText(item)
		}
	}
}

func sanitizeDescription(s string) (string, bool) {
	original := s
	for _, url := range autolinkURLs {
		if strings.Contains(s, url) && !strings.Contains(s, "<"+url+">") {
			s = strings.ReplaceAll(s, url, "<"+url+">")
		}
	}
	s, _ = stringutil.EscapePlaceholders(s)
	s, _ = stringutil.RelabelBareFences(s)
	return s, s != original
}
