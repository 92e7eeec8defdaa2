package swift_analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestIdentifierResolver_MatchesBaseName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Sources", "App", "Dependency.swift"), "struct Dependency {}\n")

	resolver := NewIdentifierResolver(root, ".swift")

	path, found := resolver.Resolve("Dependency")
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "Sources", "App", "Dependency.swift"), path)
}

func TestIdentifierResolver_MissIsNotAnError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Other.swift"), "struct Other {}\n")

	resolver := NewIdentifierResolver(root, ".swift")

	_, found := resolver.Resolve("Unknown")
	assert.False(t, found)
}

func TestIdentifierResolver_AmbiguousBaseNameIsDeterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Alpha", "Shared.swift"), "// a\n")
	writeFile(t, filepath.Join(root, "Beta", "Shared.swift"), "// b\n")

	resolver := NewIdentifierResolver(root, ".swift")

	// First match in the sorted enumeration wins, run after run.
	path, found := resolver.Resolve("Shared")
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "Alpha", "Shared.swift"), path)

	again, _ := NewIdentifierResolver(root, ".swift").Resolve("Shared")
	assert.Equal(t, path, again)
}

func TestIdentifierResolver_IgnoresHiddenAndBuildEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".hidden", "Secret.swift"), "// hidden\n")
	writeFile(t, filepath.Join(root, ".build", "Generated.swift"), "// build\n")
	writeFile(t, filepath.Join(root, "Visible.swift"), "struct Visible {}\n")

	resolver := NewIdentifierResolver(root, ".swift")

	_, found := resolver.Resolve("Secret")
	assert.False(t, found)
	_, found = resolver.Resolve("Generated")
	assert.False(t, found)
	_, found = resolver.Resolve("Visible")
	assert.True(t, found)
}

func TestIdentifierResolver_ExtensionStripping(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Dependency.swift"), "struct Dependency {}\n")

	resolver := NewIdentifierResolver(root, ".swift")

	// Only the exact base name matches; near-misses do not.
	_, found := resolver.Resolve("Dependency.swift")
	assert.False(t, found)
	_, found = resolver.Resolve("Dependenc")
	assert.False(t, found)
}
