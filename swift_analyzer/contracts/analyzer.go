package contracts

import "github.com/swiftctx/swiftctx/swift_analyzer/models"

// IDependencyAnalyzer analyzes one Swift file at a time and answers
// dependency queries against the graph built so far.
type IDependencyAnalyzer interface {
	// AnalyzeFile resolves the file's dependencies and returns the sorted
	// transitive closure of project files reachable from it. It fails on a
	// missing file, a syntax error, or a path outside the sources-root
	// module convention.
	AnalyzeFile(path string) ([]string, error)

	// DirectDependencies returns only the edges recorded for the file.
	DirectDependencies(path string) ([]string, error)

	// FileContext returns the cached content and metadata snapshot for an
	// already-analyzed file.
	FileContext(path string) (models.FileContext, bool)

	// CacheStats reports hit/miss statistics for this analyzer instance.
	CacheStats() map[string]interface{}
}
