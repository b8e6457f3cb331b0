package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/apiweld/apiweld/document"
	"github.com/apiweld/apiweld/welderrors"
)

const (
	// DefaultMaxPasses is the bounded number of whole-document rewrite
	// passes. Resolving one reference can surface new references, so the
	// driver re-runs the rewrite up to this many times; anything still
	// unresolved afterwards is handled by the cleanup walk.
	DefaultMaxPasses = 3

	// MaxCachedDocuments is the default maximum number of parsed files to
	// cache, preventing memory exhaustion from documents with many
	// external references.
	MaxCachedDocuments = 100

	// MaxFileSize is the default maximum size (in bytes) for referenced
	// files. 10MB is sufficient for most schema corpora.
	MaxFileSize = 10 * 1024 * 1024
)

const (
	// badSharedPrefix is a known-malformed ancestor-traversal prefix found
	// in the source corpus. References written with it climb above the
	// corpus root; goodSharedPrefix is the corrected location. This is a
	// narrow compatibility shim, not a general path-resolution rule.
	badSharedPrefix  = "../../../shared/"
	goodSharedPrefix = "shared/"
)

// Welder welds a multi-file schema document graph into one self-contained
// document by resolving every $ref. Resolution is best-effort: missing files
// and dangling pointers degrade to typed fallback stubs, while unreadable
// root input and circular reference graphs fail the run.
//
// A Welder is not goroutine-safe; create separate instances for concurrent
// use. Each Weld call owns its own file cache and resolution state.
type Welder struct {
	// BaseDir is the directory external references resolve against.
	// Defaults to the directory containing the root document.
	BaseDir string
	// Logger receives structured diagnostics. Nil disables logging.
	Logger Logger
	// MaxPasses bounds the rewrite fixed-point iteration. 0 means
	// DefaultMaxPasses. A pass that replaces nothing ends iteration early.
	MaxPasses int
	// MaxFileSize limits the size of referenced files. 0 means MaxFileSize.
	MaxFileSize int64
	// MaxCachedDocuments limits the file cache. 0 means MaxCachedDocuments.
	MaxCachedDocuments int
	// DisableSynthesis skips injecting the well-known fallback definitions
	// before the first pass.
	DisableSynthesis bool
	// DisableNormalizers skips the post-resolution response deduplication
	// and text sanitization passes.
	DisableNormalizers bool
}

// New creates a Welder with default settings. baseDir may be empty, in which
// case the root document's directory is used.
func New(baseDir string) *Welder {
	return &Welder{BaseDir: baseDir}
}

// Result holds the outcome of one welding run.
type Result struct {
	// SourcePath is the root document path the run started from.
	SourcePath string
	// Document is the fully resolved tree, free of $ref keys matching the
	// known-unresolvable patterns and of every reference the passes could
	// reach.
	Document *document.Node
	// Warnings lists non-fatal degradations: missing files, repaired
	// paths, cleaned references.
	Warnings []string
	// Stats summarizes the work performed.
	Stats Stats
}

// refResolver carries the state of a single welding run: the file cache, the
// set of files on the active resolution chain, and the root document used as
// fallback context for bare pointers. It is created per run and never shared.
type refResolver struct {
	baseDir     string
	maxFileSize int64
	maxCached   int
	log         Logger

	// cache memoizes parsed files by exact path, append-only for the run.
	cache map[string]*document.Node
	// resolving holds canonical paths currently being resolved on the call
	// chain. A path recurring here means the reference graph has a cycle
	// through that file.
	resolving map[string]bool
	// root is the post-synthesis snapshot of the root document, the
	// fallback context for bare #/... pointers.
	root *document.Node

	stats    Stats
	warnings []string
	// replaced counts reference replacements in the current pass, for the
	// early fixed-point exit.
	replaced int
}

func (w *Welder) logger() Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return NopLogger{}
}

// Weld loads the root document at path and resolves the full reference graph
// beneath it. The returned document is self-contained; see Result.
func (w *Welder) Weld(path string) (*Result, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &welderrors.IOError{Path: path, Cause: err}
	}

	baseDir := w.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(absPath)
	}

	r := &refResolver{
		baseDir:     baseDir,
		maxFileSize: w.MaxFileSize,
		maxCached:   w.MaxCachedDocuments,
		log:         w.logger(),
		cache:       make(map[string]*document.Node),
		resolving:   make(map[string]bool),
	}
	if r.maxFileSize == 0 {
		r.maxFileSize = MaxFileSize
	}
	if r.maxCached == 0 {
		r.maxCached = MaxCachedDocuments
	}
	maxPasses := w.MaxPasses
	if maxPasses == 0 {
		maxPasses = DefaultMaxPasses
	}

	rootDoc, err := r.loadFile(absPath)
	if err != nil {
		return nil, err
	}

	// The cached parse stays pristine; all rewriting happens on a copy.
	working := rootDoc.DeepCopy()

	if !w.DisableSynthesis {
		r.injectFallbackDefinitions(working)
	}
	// Snapshot after synthesis so injected definitions are resolvable
	// through the root fallback context.
	r.root = working.DeepCopy()

	for pass := 1; pass <= maxPasses; pass++ {
		r.replaced = 0
		if err := r.rewrite(working, baseDir, nil); err != nil {
			return nil, err
		}
		r.stats.Passes++
		r.log.Debug("rewrite pass complete", "pass", pass, "replaced", r.replaced)
		if r.replaced == 0 {
			break
		}
	}

	r.cleanUnresolved(working)

	if !w.DisableNormalizers {
		r.dedupeResponses(working)
		r.sanitizeText(working)
	}

	return &Result{
		SourcePath: absPath,
		Document:   working,
		Warnings:   r.warnings,
		Stats:      r.stats,
	}, nil
}

func (r *refResolver) warn(msg string) {
	r.warnings = append(r.warnings, msg)
	r.log.Warn(msg)
}

// rewrite walks node depth-first, replacing every reference node with its
// resolved value. A replaced node is not descended into again this pass;
// nested references introduced by the replacement are picked up by the next
// pass. context is the unmodified parse of the file node belongs to, or nil
// at the top level where the root document is the pointer base.
func (r *refResolver) rewrite(node *document.Node, currentDir string, context *document.Node) error {
	switch node.Kind {
	case document.KindMapping:
		if ref, ok := node.Ref(); ok {
			resolved, err := r.resolveRef(ref, currentDir, context)
			if err != nil {
				return err
			}
			// Sibling keys of $ref are documentation-only and are
			// dropped in favor of the resolved target.
			node.Replace(resolved.DeepCopy())
			r.stats.RefsResolved++
			r.replaced++
			return nil
		}
		for _, p := range node.Pairs {
			if err := r.rewrite(p.Value, currentDir, context); err != nil {
				return err
			}
		}

	case document.KindSequence:
		for _, item := range node.Items {
			if err := r.rewrite(item, currentDir, context); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveRef resolves one $ref string against the current directory and
// file-local context. See the package documentation for the precedence rules
// between pointer-only, file, and file-plus-pointer forms.
func (r *refResolver) resolveRef(ref, currentDir string, context *document.Node) (*document.Node, error) {
	if strings.HasPrefix(ref, "#") {
		return r.resolvePointer(ref[1:], context)
	}

	filePart := ref
	pointerPart := ""
	if idx := strings.Index(ref, "#"); idx >= 0 {
		filePart, pointerPart = ref[:idx], ref[idx+1:]
	}
	if filePart == "" {
		return r.resolvePointer(pointerPart, context)
	}

	filePath := filepath.Join(currentDir, filePart)

	// Known upstream authoring inconsistency: some references climb out of
	// the corpus root. Retry with the corrected prefix before giving up.
	if !fileExists(filePath) && strings.HasPrefix(filePart, badSharedPrefix) {
		corrected := goodSharedPrefix + strings.TrimPrefix(filePart, badSharedPrefix)
		r.log.Debug("repairing ancestor-traversal reference",
			"ref", filePart, "corrected", corrected)
		filePath = filepath.Join(currentDir, corrected)
	}

	if !fileExists(filePath) {
		r.stats.FileFallbacks++
		r.warn("using fallback for missing file reference: " + ref)
		return missingFileStub(ref), nil
	}

	canonical, err := filepath.Abs(filePath)
	if err != nil {
		return nil, &welderrors.IOError{Path: filePath, Cause: err}
	}

	if r.resolving[canonical] {
		return nil, &welderrors.ReferenceError{
			Ref:        ref,
			Path:       canonical,
			IsCircular: true,
		}
	}
	r.resolving[canonical] = true
	defer delete(r.resolving, canonical)

	loaded, err := r.loadFile(canonical)
	if err != nil {
		return nil, err
	}

	// Resolve the referenced file against its own directory, using its
	// unmodified parse as the base for any internal pointers it contains.
	resolved := loaded.DeepCopy()
	if err := r.rewrite(resolved, filepath.Dir(canonical), loaded); err != nil {
		return nil, err
	}

	if pointerPart != "" {
		return r.applyPointer(resolved, pointerPart)
	}
	return resolved, nil
}

// resolvePointer evaluates a bare pointer, trying the file-local context
// first and falling back silently to the root document.
func (r *refResolver) resolvePointer(pointer string, context *document.Node) (*document.Node, error) {
	if context != nil {
		if result, err := r.applyPointer(context, pointer); err == nil {
			return result, nil
		}
	}
	return r.applyPointer(r.root, pointer)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
