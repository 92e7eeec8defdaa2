package swift_analyzer

import "errors"

// Error kinds surfaced by the analyzer. Callers match them with errors.Is;
// the CLI prints the wrapped description and exits non-zero.
var (
	// ErrFileNotFound indicates the target or a dependency path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidModule indicates the file path lacks the expected
	// sources-root/module segment (e.g. Sources/<Module>/...).
	ErrInvalidModule = errors.New("invalid module path")

	// ErrSyntax indicates the parser rejected the file content.
	ErrSyntax = errors.New("syntax error")

	// ErrDependencyNotFound is reserved for strict-mode callers that want a
	// resolution miss to fail instead of contributing no edge.
	ErrDependencyNotFound = errors.New("dependency not found")
)
