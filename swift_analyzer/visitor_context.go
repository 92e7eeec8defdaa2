package swift_analyzer

import "sort"

// VisitorContext aggregates the output of the two extraction visitors for a
// single file: eight categorized sets of identifier strings. Insertion order
// is irrelevant and duplicates collapse.
type VisitorContext struct {
	Imports              map[string]struct{}
	TypeReferences       map[string]struct{}
	ExtensionTargets     map[string]struct{}
	ProtocolDeclarations map[string]struct{}
	InheritedTypes       map[string]struct{}
	PropertyTypes        map[string]struct{}
	ParameterTypes       map[string]struct{}
	GenericConstraints   map[string]struct{}
}

// NewVisitorContext creates an empty context.
func NewVisitorContext() *VisitorContext {
	return &VisitorContext{
		Imports:              make(map[string]struct{}),
		TypeReferences:       make(map[string]struct{}),
		ExtensionTargets:     make(map[string]struct{}),
		ProtocolDeclarations: make(map[string]struct{}),
		InheritedTypes:       make(map[string]struct{}),
		PropertyTypes:        make(map[string]struct{}),
		ParameterTypes:       make(map[string]struct{}),
		GenericConstraints:   make(map[string]struct{}),
	}
}

// systemFrameworks are imports provided by the toolchain or OS; they never
// resolve to project files and are filtered out of candidate identifiers.
var systemFrameworks = map[string]struct{}{
	"Swift":          {},
	"Foundation":     {},
	"UIKit":          {},
	"AppKit":         {},
	"SwiftUI":        {},
	"Combine":        {},
	"CoreData":       {},
	"CoreGraphics":   {},
	"CoreLocation":   {},
	"AVFoundation":   {},
	"Dispatch":       {},
	"XCTest":         {},
	"os":             {},
	"OSLog":          {},
	"WebKit":         {},
	"MapKit":         {},
	"StoreKit":       {},
	"CloudKit":       {},
	"WidgetKit":      {},
	"UserNotifications": {},
}

// systemTypes are standard-library types that would otherwise look like
// custom type references (a file whose only reference is String has no
// project dependencies).
var systemTypes = map[string]struct{}{
	"String": {}, "Int": {}, "Int8": {}, "Int16": {}, "Int32": {}, "Int64": {},
	"UInt": {}, "UInt8": {}, "UInt16": {}, "UInt32": {}, "UInt64": {},
	"Double": {}, "Float": {}, "Bool": {}, "Character": {},
	"Array": {}, "Dictionary": {}, "Set": {}, "Optional": {}, "Result": {},
	"Error": {}, "Void": {}, "Any": {}, "AnyObject": {}, "Never": {},
	"Data": {}, "Date": {}, "URL": {}, "UUID": {}, "Decimal": {},
	"Codable": {}, "Encodable": {}, "Decodable": {}, "Equatable": {},
	"Hashable": {}, "Comparable": {}, "Identifiable": {}, "Sendable": {},
	"CustomStringConvertible": {}, "CaseIterable": {}, "RawRepresentable": {},
	"Sequence": {}, "Collection": {}, "IteratorProtocol": {},
}

// AllReferencedTypes is the union of type references, extension targets,
// inherited types, property types, function-parameter types and
// generic-constraint types. Imports and protocol declarations are tracked
// separately and are not part of this union.
func (c *VisitorContext) AllReferencedTypes() map[string]struct{} {
	union := make(map[string]struct{})
	for _, set := range []map[string]struct{}{
		c.TypeReferences,
		c.ExtensionTargets,
		c.InheritedTypes,
		c.PropertyTypes,
		c.ParameterTypes,
		c.GenericConstraints,
	} {
		for name := range set {
			union[name] = struct{}{}
		}
	}
	return union
}

// NonSystemImports returns imports that are not known system frameworks.
func (c *VisitorContext) NonSystemImports() map[string]struct{} {
	result := make(map[string]struct{})
	for name := range c.Imports {
		if _, system := systemFrameworks[name]; !system {
			result[name] = struct{}{}
		}
	}
	return result
}

// CandidateIdentifiers returns the sorted union of non-system imports and
// all referenced types, with standard-library types filtered out. These are
// the names handed to the resolver.
func (c *VisitorContext) CandidateIdentifiers() []string {
	seen := make(map[string]struct{})
	for name := range c.NonSystemImports() {
		seen[name] = struct{}{}
	}
	for name := range c.AllReferencedTypes() {
		if _, system := systemTypes[name]; system {
			continue
		}
		seen[name] = struct{}{}
	}

	candidates := make([]string, 0, len(seen))
	for name := range seen {
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)
	return candidates
}
