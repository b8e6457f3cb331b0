// Package resolver implements best-effort $ref resolution for multi-file
// schema document graphs.
//
// Given a root document and the directory of files its external references
// target, a [Welder] produces one fully inlined, self-contained document.
// Resolution tolerates a real-world corpus: missing files and dangling
// pointers degrade to typed fallback stubs instead of failing the run, a
// fixed catalog of well-known definitions is synthesized up front, and
// references that survive the bounded rewrite passes are replaced by string
// stubs in a final cleanup walk. Only structurally unusable input (an
// unreadable or unparseable root document) and genuine reference cycles
// abort a run.
//
// # Reference forms
//
// A $ref string takes one of three forms, tried in this order:
//
//   - "#/path/to/node" — a pure JSON pointer. Evaluated against the current
//     file's own unmodified parse first, falling back silently to the root
//     document.
//   - "sibling.yaml" — an external file. The whole file, with its own
//     references resolved, replaces the reference node.
//   - "sibling.yaml#/path/to/node" — an external file plus a pointer into
//     its resolved content.
//
// # Passes
//
// Resolving one reference can surface new references, so the rewriter runs
// up to [DefaultMaxPasses] whole-document passes, stopping early when a pass
// replaces nothing. This is a bounded approximation of a fixed point, not a
// convergence proof; the cleanup walk handles whatever remains.
//
// # Quick start
//
//	result, err := resolver.Weld(
//	    resolver.WithFilePath("specification/api.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := result.Document.EncodeJSON()
//
// A Welder is single-threaded and owns its per-run state (file cache,
// resolving set, root snapshot) exclusively; create one instance per
// concurrent run.
package resolver
