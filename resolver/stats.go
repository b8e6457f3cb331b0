package resolver

// Stats summarizes what one welding run did to the document.
// Counters are best-effort diagnostics; they do not affect resolution.
type Stats struct {
	// Passes is the number of rewrite passes that actually ran.
	Passes int
	// RefsResolved counts $ref nodes replaced across all passes.
	RefsResolved int
	// FileFallbacks counts references to nonexistent files that were
	// replaced by a synthesized object stub.
	FileFallbacks int
	// PointerFallbacks counts pointer segments that missed a mapping key
	// and degraded to a synthesized object stub.
	PointerFallbacks int
	// DefinitionsInjected counts well-known fallback definitions added to
	// the document before the first pass.
	DefinitionsInjected int
	// RefsCleaned counts surviving references replaced by string stubs in
	// the cleanup walk.
	RefsCleaned int
	// ResponsesCollapsed counts response entries removed by the
	// response-shape deduplication normalizer.
	ResponsesCollapsed int
	// TextFixes counts description/example fields rewritten by the text
	// sanitization normalizer.
	TextFixes int
}
