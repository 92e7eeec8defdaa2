package swift_analyzer

import (
	"path/filepath"
	"strings"

	"github.com/swiftctx/swiftctx/utils"
)

// IdentifierResolver maps a referenced identifier to a project file by exact
// equality between the identifier and a candidate file's base name with the
// extension stripped. When several files share a base name the first match
// in the sorted enumeration wins; this is a deliberate, documented precision
// limit (one type name maps to one file, which does not hold for extensions
// and partial types) rather than a place for guessed disambiguation.
type IdentifierResolver struct {
	searchRoot string
	extension  string

	// byBaseName indexes the source tree once per resolver instance. Source
	// files are not expected to change mid-run, so this does not alter
	// observable behavior relative to re-enumerating on every call.
	byBaseName map[string][]string
	indexed    bool
}

// NewIdentifierResolver creates a resolver over the given source root.
func NewIdentifierResolver(searchRoot, extension string) *IdentifierResolver {
	return &IdentifierResolver{
		searchRoot: searchRoot,
		extension:  extension,
	}
}

// Resolve returns the canonical path of the file whose base name equals the
// identifier, or false when no file matches. A miss is not an error; it
// simply contributes no dependency.
func (r *IdentifierResolver) Resolve(identifier string) (string, bool) {
	if err := r.ensureIndex(); err != nil {
		return "", false
	}
	matches := r.byBaseName[identifier]
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

func (r *IdentifierResolver) ensureIndex() error {
	if r.indexed {
		return nil
	}

	// ListSourceFiles returns a sorted slice, which fixes the tie-break
	// order for ambiguous base names within a run.
	files, err := utils.ListSourceFiles(r.searchRoot, r.extension)
	if err != nil {
		return err
	}

	r.byBaseName = make(map[string][]string, len(files))
	for _, path := range files {
		base := strings.TrimSuffix(filepath.Base(path), r.extension)
		r.byBaseName[base] = append(r.byBaseName[base], path)
	}
	r.indexed = true
	return nil
}
