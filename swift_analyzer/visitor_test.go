package swift_analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/assert"
)

func extractFromSource(t *testing.T, source string) *VisitorContext {
	t.Helper()

	parser := NewSwiftParser()
	tree, err := parser.Parse([]byte(source))
	require.NoError(t, err)
	defer tree.Close()

	return ExtractReferences(tree.RootNode(), []byte(source))
}

func TestExtractReferences_Imports(t *testing.T) {
	ctx := extractFromSource(t, `import Foundation
import NetworkKit

struct Empty {}
`)

	assert.Contains(t, ctx.Imports, "Foundation")
	assert.Contains(t, ctx.Imports, "NetworkKit")
}

func TestExtractReferences_InheritedTypes(t *testing.T) {
	ctx := extractFromSource(t, `struct Main: Codable {
    let value: String
}
`)

	assert.Contains(t, ctx.InheritedTypes, "Codable")
}

func TestExtractReferences_PropertyTypes(t *testing.T) {
	ctx := extractFromSource(t, `struct Main {
    let dependency: Dependency
    var count: Int
}
`)

	assert.Contains(t, ctx.PropertyTypes, "Dependency")
	assert.Contains(t, ctx.PropertyTypes, "Int")
}

func TestExtractReferences_ParameterTypes(t *testing.T) {
	ctx := extractFromSource(t, `struct Service {
    func handle(request: Request) {}
}
`)

	assert.Contains(t, ctx.ParameterTypes, "Request")
}

func TestExtractReferences_ProtocolDeclarationTrackedSeparately(t *testing.T) {
	ctx := extractFromSource(t, `protocol Greeter {
    func greet(person: Person)
}
`)

	assert.Contains(t, ctx.ProtocolDeclarations, "Greeter")
	// Bodies are still descended into for nested references.
	assert.Contains(t, ctx.ParameterTypes, "Person")

	// The protocol's own name is not part of the referenced-types union.
	union := ctx.AllReferencedTypes()
	assert.NotContains(t, union, "Greeter")
	assert.Contains(t, union, "Person")
}

func TestExtractReferences_TypealiasRightHandSide(t *testing.T) {
	ctx := extractFromSource(t, `typealias Handler = Completion
`)

	assert.Contains(t, ctx.TypeReferences, "Completion")
}

func TestExtractReferences_ExtensionTarget(t *testing.T) {
	ctx := extractFromSource(t, `extension Main {
    func helper() {}
}
`)

	assert.Contains(t, ctx.ExtensionTargets, "Main")
}

func TestExtractReferences_GenericArgumentsAreDescendedInto(t *testing.T) {
	ctx := extractFromSource(t, `struct Holder {
    let box: Container<Payload>
}
`)

	// The compound annotation and the nested references are all captured.
	assert.Contains(t, ctx.PropertyTypes, "Container<Payload>")
	assert.Contains(t, ctx.TypeReferences, "Container")
	assert.Contains(t, ctx.TypeReferences, "Payload")
}

func TestExtractReferences_MemberTypeLeaf(t *testing.T) {
	ctx := extractFromSource(t, `struct Themed {
    let color: UIKit.UIColor
}
`)

	assert.Contains(t, ctx.TypeReferences, "UIColor")
}

func TestExtractReferences_SelfIsNotCaptured(t *testing.T) {
	ctx := extractFromSource(t, `struct Node {
    func duplicate() -> Self {
        return self
    }
}
`)

	assert.NotContains(t, ctx.TypeReferences, "Self")
	assert.NotContains(t, ctx.AllReferencedTypes(), "Self")
}

func TestExtractReferences_AllReferencedTypesUnion(t *testing.T) {
	ctx := extractFromSource(t, `import CustomLib

struct Main: Base {
    let dependency: Dependency

    func run(input: Input) {}
}
`)

	union := ctx.AllReferencedTypes()
	assert.Contains(t, union, "Base")
	assert.Contains(t, union, "Dependency")
	assert.Contains(t, union, "Input")

	// Imports never enter the union; they are a separate set.
	assert.NotContains(t, union, "CustomLib")
	assert.Contains(t, ctx.NonSystemImports(), "CustomLib")
}

func TestVisitorContext_CandidateIdentifiersFiltersSystemNames(t *testing.T) {
	ctx := NewVisitorContext()
	ctx.Imports["Foundation"] = struct{}{}
	ctx.Imports["CustomLib"] = struct{}{}
	ctx.PropertyTypes["String"] = struct{}{}
	ctx.PropertyTypes["Dependency"] = struct{}{}

	candidates := ctx.CandidateIdentifiers()
	assert.Equal(t, []string{"CustomLib", "Dependency"}, candidates)
}

func TestVisitorContext_UnionCoversAllTypeSets(t *testing.T) {
	ctx := NewVisitorContext()
	ctx.TypeReferences["A"] = struct{}{}
	ctx.ExtensionTargets["B"] = struct{}{}
	ctx.InheritedTypes["C"] = struct{}{}
	ctx.PropertyTypes["D"] = struct{}{}
	ctx.ParameterTypes["E"] = struct{}{}
	ctx.GenericConstraints["F"] = struct{}{}
	ctx.Imports["G"] = struct{}{}
	ctx.ProtocolDeclarations["H"] = struct{}{}

	union := ctx.AllReferencedTypes()
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		assert.Contains(t, union, name)
	}
	assert.NotContains(t, union, "G")
	assert.NotContains(t, union, "H")
}

func TestExtractReferences_InheritanceConstraint(t *testing.T) {
	ctx := extractFromSource(t, `struct Box<T> where T: Constraint {
    let value: T
}
`)

	assert.Contains(t, ctx.GenericConstraints, "Constraint")
	// The constraint clause is captured whole, not descended into.
	assert.NotContains(t, ctx.TypeReferences, "Constraint")
	assert.Contains(t, ctx.AllReferencedTypes(), "Constraint")
}

func TestExtractReferences_EqualityConstraint(t *testing.T) {
	ctx := extractFromSource(t, `struct Merger<U> where U.Element == Element, U: Mergeable {
    let source: U
}
`)

	assert.Contains(t, ctx.GenericConstraints, "Element")
	assert.Contains(t, ctx.GenericConstraints, "Mergeable")
	assert.NotContains(t, ctx.TypeReferences, "Mergeable")
}

func TestVisitorContext_DuplicatesCollapse(t *testing.T) {
	ctx := extractFromSource(t, `struct Pair {
    let first: Dependency
    let second: Dependency
}
`)

	count := 0
	for name := range ctx.AllReferencedTypes() {
		if name == "Dependency" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
