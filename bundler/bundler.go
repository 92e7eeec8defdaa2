// Package bundler renders analyzed files into front-matter-prefixed blocks
// and assembles the final bundle handed to downstream consumers.
package bundler

import (
	"fmt"
	"strings"
	"time"

	analyzer_contracts "github.com/swiftctx/swiftctx/swift_analyzer/contracts"
	"github.com/swiftctx/swiftctx/swift_analyzer/models"
	optimizer_contracts "github.com/swiftctx/swiftctx/token_optimizer/contracts"
)

// Bundler assembles per-file blocks for a root file and its dependency
// closure, then passes the concatenation through the token optimizer.
type Bundler struct {
	analyzer  analyzer_contracts.IDependencyAnalyzer
	optimizer optimizer_contracts.ITokenOptimizer
}

// NewBundler wires a bundler to its analyzer and optimizer collaborators.
func NewBundler(analyzer analyzer_contracts.IDependencyAnalyzer, optimizer optimizer_contracts.ITokenOptimizer) *Bundler {
	return &Bundler{
		analyzer:  analyzer,
		optimizer: optimizer,
	}
}

// RenderFrontMatter renders the stable metadata header for one file. The
// field order is a contract: file, module, dependencies, updated_at.
func RenderFrontMatter(meta models.FileMetadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "file: %s\n", meta.FileName)
	fmt.Fprintf(&b, "module: %s\n", meta.Module)
	b.WriteString("dependencies:\n")
	for _, dep := range meta.Dependencies {
		fmt.Fprintf(&b, "  - %s\n", dep)
	}
	fmt.Fprintf(&b, "updated_at: %s\n", meta.UpdatedAt.Format(time.RFC3339))

	return b.String()
}

// RenderFileBlock renders one file as its front matter, a blank line, and
// the raw captured content.
func RenderFileBlock(context models.FileContext) string {
	return RenderFrontMatter(context.Metadata) + "\n" + context.Content
}

// Analyze resolves the full dependency closure of the root file, analyzing
// each discovered dependency so its own edges and metadata are recorded.
// The returned slice is the closure in stable sorted order, root excluded.
func (b *Bundler) Analyze(rootFile string) ([]string, error) {
	dependencies, err := b.analyzer.AnalyzeFile(rootFile)
	if err != nil {
		return nil, err
	}

	analyzed := map[string]struct{}{}
	queue := append([]string(nil), dependencies...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, done := analyzed[next]; done {
			continue
		}
		analyzed[next] = struct{}{}

		discovered, err := b.analyzer.AnalyzeFile(next)
		if err != nil {
			return nil, err
		}
		for _, dep := range discovered {
			if _, done := analyzed[dep]; !done {
				queue = append(queue, dep)
			}
		}
	}

	// Re-query the root so the answer reflects edges added by dependency
	// analysis above.
	return b.analyzer.AnalyzeFile(rootFile)
}

// BuildBundle renders the root file's block followed by one block per
// dependency, blank-line separated, and shrinks the result to the token
// budget. On failure nothing partial is returned.
func (b *Bundler) BuildBundle(rootFile string) (string, error) {
	dependencies, err := b.Analyze(rootFile)
	if err != nil {
		return "", err
	}

	blocks := make([]string, 0, len(dependencies)+1)

	rootContext, found := b.analyzer.FileContext(rootFile)
	if !found {
		return "", fmt.Errorf("no analysis snapshot for %s", rootFile)
	}
	blocks = append(blocks, RenderFileBlock(rootContext))

	for _, dependency := range dependencies {
		context, found := b.analyzer.FileContext(dependency)
		if !found {
			continue
		}
		blocks = append(blocks, RenderFileBlock(context))
	}

	// Normalize block endings so consecutive blocks are separated by
	// exactly one blank line regardless of trailing newlines in content.
	for i, block := range blocks {
		blocks[i] = strings.TrimRight(block, "\n")
	}

	return b.optimizer.Optimize(strings.Join(blocks, "\n\n") + "\n"), nil
}
