package swift_analyzer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/swiftctx/swiftctx/swift_analyzer/contracts"
	"github.com/swiftctx/swiftctx/swift_analyzer/models"
	"github.com/swiftctx/swiftctx/utils"
)

// DependencyAnalyzer orchestrates parse, extraction, resolution, graph
// updates and caching for one project. Analysis of one file completes before
// the next begins; the graph and cache live exactly as long as the analyzer.
type DependencyAnalyzer struct {
	ProjectRoot string

	sourcesDirName string
	extension      string

	parser   *SwiftParser
	resolver *IdentifierResolver
	graph    *DependencyGraph
	cache    *CacheManager
}

// NewDependencyAnalyzer initializes an analyzer rooted at the given project
// directory. sourcesDirName is the path segment that separates the project
// prefix from the owning module (conventionally "Sources").
func NewDependencyAnalyzer(projectRoot, sourcesDirName, extension string) contracts.IDependencyAnalyzer {
	searchRoot := filepath.Join(projectRoot, sourcesDirName)
	if _, err := os.Stat(searchRoot); err != nil {
		// Projects without the conventional layout are still resolvable
		// against the root; module derivation enforces the convention later.
		searchRoot = projectRoot
	}

	return &DependencyAnalyzer{
		ProjectRoot:    projectRoot,
		sourcesDirName: sourcesDirName,
		extension:      extension,
		parser:         NewSwiftParser(),
		resolver:       NewIdentifierResolver(searchRoot, extension),
		graph:          NewDependencyGraph(),
		cache:          NewCacheManager(),
	}
}

// AnalyzeFile analyzes a single file and returns the sorted transitive
// closure of its project dependencies. Cache hits skip re-parsing; both the
// hit and the miss path answer with the transitive closure, which is the
// one dependency contract this analyzer exposes.
func (analyzer *DependencyAnalyzer) AnalyzeFile(path string) ([]string, error) {
	canonical, err := utils.CanonicalPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	modTime, err := utils.ModificationTime(canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, canonical)
	}

	// Every file handed to the analyzer becomes a graph node before any
	// query against it returns.
	analyzer.graph.AddNode(canonical)

	if _, valid := analyzer.cache.Get(canonical, modTime); valid {
		return setToSortedSlice(analyzer.graph.TransitiveDependencies(canonical)), nil
	}

	content, err := os.ReadFile(canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, canonical)
	}

	module, err := analyzer.deriveModule(canonical)
	if err != nil {
		return nil, err
	}

	tree, err := analyzer.parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", canonical, err)
	}
	defer tree.Close()

	visitorContext := ExtractReferences(tree.RootNode(), content)

	dependencyNames := make([]string, 0)
	for _, identifier := range visitorContext.CandidateIdentifiers() {
		resolved, found := analyzer.resolver.Resolve(identifier)
		if !found {
			// A miss is not an error; the identifier contributes no edge.
			continue
		}
		resolvedCanonical, err := utils.CanonicalPath(resolved)
		if err != nil {
			continue
		}
		if resolvedCanonical == canonical {
			// A file naming its own type is not a dependency on itself.
			continue
		}
		analyzer.graph.AddEdge(canonical, resolvedCanonical)
		dependencyNames = append(dependencyNames, filepath.Base(resolvedCanonical))
	}
	sort.Strings(dependencyNames)

	analyzer.cache.Set(canonical, models.FileContext{
		Path:    canonical,
		Content: string(content),
		Metadata: models.FileMetadata{
			FileName:     filepath.Base(canonical),
			Module:       module,
			Dependencies: dependencyNames,
			UpdatedAt:    modTime,
		},
	}, modTime)

	return setToSortedSlice(analyzer.graph.TransitiveDependencies(canonical)), nil
}

// DirectDependencies returns the edges recorded for a file, without closure.
func (analyzer *DependencyAnalyzer) DirectDependencies(path string) ([]string, error) {
	canonical, err := utils.CanonicalPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return setToSortedSlice(analyzer.graph.DirectEdges(canonical)), nil
}

// FileContext returns the cached snapshot for an already-analyzed file.
func (analyzer *DependencyAnalyzer) FileContext(path string) (models.FileContext, bool) {
	canonical, err := utils.CanonicalPath(path)
	if err != nil {
		return models.FileContext{}, false
	}
	entry, found := analyzer.cache.Peek(canonical)
	if !found {
		return models.FileContext{}, false
	}
	return entry.Context, true
}

// CacheStats reports cache performance for this analyzer instance.
func (analyzer *DependencyAnalyzer) CacheStats() map[string]interface{} {
	return analyzer.cache.GetPerformanceStats()
}

// deriveModule locates the sources-root segment in the file's path and
// takes the segment immediately after it as the owning module. A path
// without that segment is an invalid module, not a silent default.
func (analyzer *DependencyAnalyzer) deriveModule(canonical string) (string, error) {
	segments := strings.Split(canonical, string(filepath.Separator))
	for i, segment := range segments {
		// The module segment must sit between the sources root and the file.
		if segment == analyzer.sourcesDirName && i+1 < len(segments)-1 {
			return segments[i+1], nil
		}
	}
	return "", fmt.Errorf("%w: no %s/<module> segment in %s",
		ErrInvalidModule, analyzer.sourcesDirName, canonical)
}

// IsNotFound reports whether an error is the analyzer's missing-file kind.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}

func setToSortedSlice(set map[string]struct{}) []string {
	result := make([]string, 0, len(set))
	for item := range set {
		result = append(result, item)
	}
	sort.Strings(result)
	return result
}
