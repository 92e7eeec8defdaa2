package swift_analyzer

// DependencyGraph records direct file-to-file dependency edges and answers
// transitive-closure queries. Edges are deduplicated and only ever added;
// nothing is removed for the lifetime of the graph. The graph is not safe
// for concurrent writers; the analyzer serializes all mutations.
type DependencyGraph struct {
	edges map[string]map[string]struct{}
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[string]map[string]struct{}),
	}
}

// AddNode ensures a node exists for the given file, with an empty edge set
// if it was unknown. Idempotent.
func (g *DependencyGraph) AddNode(file string) {
	if _, ok := g.edges[file]; !ok {
		g.edges[file] = make(map[string]struct{})
	}
}

// AddEdge inserts target into source's edge set, creating nodes for both
// identities if absent. Idempotent.
func (g *DependencyGraph) AddEdge(source, target string) {
	g.AddNode(source)
	g.AddNode(target)
	g.edges[source][target] = struct{}{}
}

// DirectEdges returns the edges recorded exactly for the given node, with no
// traversal. Unknown nodes yield an empty set, never an error.
func (g *DependencyGraph) DirectEdges(file string) map[string]struct{} {
	result := make(map[string]struct{}, len(g.edges[file]))
	for target := range g.edges[file] {
		result[target] = struct{}{}
	}
	return result
}

// TransitiveDependencies returns every file reachable from the given one by
// following one or more edges. The start node is only included if a cycle
// through at least one other node leads back to it; a bare self-loop A→A is
// not reported, since a file is never its own dependency. Traversal uses an
// explicit worklist and a visited set so cycles terminate and each node's
// edges are expanded at most once.
func (g *DependencyGraph) TransitiveDependencies(file string) map[string]struct{} {
	result := make(map[string]struct{})
	visited := make(map[string]struct{})

	stack := []string{file}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		for target := range g.edges[current] {
			if target != file {
				result[target] = struct{}{}
			} else if current != file {
				// Reached the start node through a cycle.
				result[target] = struct{}{}
			}
			if _, seen := visited[target]; !seen {
				stack = append(stack, target)
			}
		}
	}

	return result
}

// NodeCount reports how many files the graph has seen.
func (g *DependencyGraph) NodeCount() int {
	return len(g.edges)
}
