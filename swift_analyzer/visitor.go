package swift_analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// The reference extractor is a pair of cooperating visitors over the Swift
// syntax tree. The declaration visitor captures imports, protocol and
// typealias declarations, extension targets and inheritance clauses; the
// type-reference visitor captures named type usages in property, parameter
// and generic-constraint positions. Each visitor decides per node kind
// whether traversal descends into the node's children: descent stops exactly
// where children carry no information beyond what was captured (an import
// path, an inheritance clause, a generic requirement) and continues wherever
// nested type expressions may appear (generic arguments, initializers,
// protocol bodies).

// selfTypeName is the self-referential type name. It is excluded from simple
// identifier capture but kept when it is the leaf of a dotted member type.
const selfTypeName = "Self"

type nodeVisitor func(node *sitter.Node, source []byte, ctx *VisitorContext) (descend bool)

// ExtractReferences walks the parsed file once per visitor and returns the
// categorized reference bag. The tree is treated as read-only.
func ExtractReferences(root *sitter.Node, source []byte) *VisitorContext {
	ctx := NewVisitorContext()
	walk(root, source, ctx, visitDeclaration)
	walk(root, source, ctx, visitTypeReference)
	return ctx
}

// walk performs a pre-order traversal, descending into a node's children
// only when the visitor asks for it.
func walk(node *sitter.Node, source []byte, ctx *VisitorContext, visit nodeVisitor) {
	if !visit(node, source, ctx) {
		return
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		walk(node.NamedChild(i), source, ctx, visit)
	}
}

// visitDeclaration handles declaration-shaped nodes.
func visitDeclaration(node *sitter.Node, source []byte, ctx *VisitorContext) bool {
	switch node.Type() {
	case "import_declaration":
		// The raw path is everything after the keyword; the children of an
		// import carry nothing further.
		path := strings.TrimSpace(strings.TrimPrefix(node.Content(source), "import"))
		if path != "" {
			ctx.Imports[path] = struct{}{}
		}
		return false

	case "inheritance_specifier":
		// The full trimmed type expression of the clause; no further descent.
		ctx.InheritedTypes[strings.TrimSpace(node.Content(source))] = struct{}{}
		return false

	case "class_declaration", "struct_declaration", "enum_declaration":
		// Classes, structs, enums, actors and extensions mostly parse as
		// class_declaration in this grammar; the introducing keyword
		// distinguishes extensions.
		if isExtensionDeclaration(node) {
			if name := declaredName(node); name != nil {
				ctx.ExtensionTargets[strings.TrimSpace(name.Content(source))] = struct{}{}
			}
		}
		return true

	case "extension_declaration":
		if name := declaredName(node); name != nil {
			ctx.ExtensionTargets[strings.TrimSpace(name.Content(source))] = struct{}{}
		}
		return true

	case "protocol_declaration":
		if name := declaredName(node); name != nil {
			ctx.ProtocolDeclarations[strings.TrimSpace(name.Content(source))] = struct{}{}
		}
		// Protocol bodies may reference further types.
		return true

	case "typealias_declaration":
		// The trimmed right-hand side of the alias counts as a type
		// reference; its components are still visited for nested captures.
		if value := rightHandType(node, "value"); value != nil {
			ctx.TypeReferences[strings.TrimSpace(value.Content(source))] = struct{}{}
		}
		return true
	}
	return true
}

// visitTypeReference handles type-usage positions.
func visitTypeReference(node *sitter.Node, source []byte, ctx *VisitorContext) bool {
	switch node.Type() {
	case "user_type":
		// A user_type holds one type_identifier for a simple name or several
		// for a dotted member type. Record the leaf; keep descending so
		// generic arguments nested inside are captured as their own
		// user_type nodes.
		identifiers := directChildrenOfType(node, "type_identifier")
		if len(identifiers) > 0 {
			leaf := identifiers[len(identifiers)-1].Content(source)
			if len(identifiers) > 1 || leaf != selfTypeName {
				ctx.TypeReferences[leaf] = struct{}{}
			}
		}
		return true

	case "property_declaration":
		// Each binding with an explicit annotation contributes its type;
		// initializer expressions may still carry nested references, so
		// traversal continues.
		for _, annotation := range typeAnnotations(node) {
			if t := annotation.NamedChild(int(annotation.NamedChildCount()) - 1); t != nil {
				ctx.PropertyTypes[strings.TrimSpace(t.Content(source))] = struct{}{}
			}
		}
		return true

	case "parameter":
		if t := rightHandType(node, "type"); t != nil {
			ctx.ParameterTypes[strings.TrimSpace(t.Content(source))] = struct{}{}
		}
		return true

	case "inheritance_constraint":
		// where T: SomeProtocol — the right-hand type is the reference; the
		// clause itself has no further information.
		if t := rightHandType(node, "inherits_from"); t != nil {
			ctx.GenericConstraints[strings.TrimSpace(t.Content(source))] = struct{}{}
		}
		return false

	case "equality_constraint":
		// where T.Element == Other
		if t := rightHandType(node, "must_equal"); t != nil {
			ctx.GenericConstraints[strings.TrimSpace(t.Content(source))] = struct{}{}
		}
		return false
	}
	return true
}

// declaredName returns the declaration's name node: the name field when the
// grammar exposes one, otherwise the first type-name child.
func declaredName(node *sitter.Node) *sitter.Node {
	if name := node.ChildByFieldName("name"); name != nil {
		return name
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "type_identifier", "user_type":
			return child
		}
	}
	return nil
}

// isExtensionDeclaration reports whether a class_declaration node was
// introduced by the extension keyword.
func isExtensionDeclaration(node *sitter.Node) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		switch node.Child(i).Type() {
		case "extension":
			return true
		case "class", "struct", "enum", "actor":
			return false
		}
	}
	return false
}

// rightHandType returns the node's field by name, falling back to the last
// named child when the grammar omits the field.
func rightHandType(node *sitter.Node, field string) *sitter.Node {
	if t := node.ChildByFieldName(field); t != nil {
		return t
	}
	count := int(node.NamedChildCount())
	if count == 0 {
		return nil
	}
	return node.NamedChild(count - 1)
}

// directChildrenOfType collects the named children of a node with the given
// kind, in source order.
func directChildrenOfType(node *sitter.Node, kind string) []*sitter.Node {
	var result []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == kind {
			result = append(result, child)
		}
	}
	return result
}

// typeAnnotations finds the explicit type annotations attached to a
// property declaration's bindings. Annotations sit either directly under the
// declaration or under its binding pattern.
func typeAnnotations(node *sitter.Node) []*sitter.Node {
	var result []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "type_annotation" {
			result = append(result, child)
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			grandchild := child.NamedChild(j)
			if grandchild.Type() == "type_annotation" {
				result = append(result, grandchild)
			}
		}
	}
	return result
}
