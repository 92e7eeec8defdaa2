package swift_analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftctx/swiftctx/swift_analyzer/models"
)

func sampleContext(path string) models.FileContext {
	return models.FileContext{
		Path:    path,
		Content: "struct Main {}\n",
		Metadata: models.FileMetadata{
			FileName:     "Main.swift",
			Module:       "TestModule",
			Dependencies: []string{"Dependency.swift"},
			UpdatedAt:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestCacheManager_RoundTrip(t *testing.T) {
	cache := NewCacheManager()
	modTime := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	path := "/project/Sources/TestModule/Main.swift"

	cache.Set(path, sampleContext(path), modTime)

	entry, found := cache.Get(path, modTime)
	require.True(t, found)
	assert.Equal(t, path, entry.Context.Path)
	assert.Equal(t, "struct Main {}\n", entry.Context.Content)
	assert.Equal(t, "TestModule", entry.Context.Metadata.Module)
	assert.Equal(t, []string{"Dependency.swift"}, entry.Context.Metadata.Dependencies)
}

func TestCacheManager_UnknownFileIsMiss(t *testing.T) {
	cache := NewCacheManager()

	entry, found := cache.Get("/nowhere/Main.swift", time.Now())
	assert.False(t, found)
	assert.Nil(t, entry)
}

func TestCacheManager_NewerModTimeInvalidates(t *testing.T) {
	cache := NewCacheManager()
	stored := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	path := "/project/Sources/TestModule/Main.swift"

	cache.Set(path, sampleContext(path), stored)

	_, found := cache.Get(path, stored.Add(time.Second))
	assert.False(t, found)

	// An on-disk time at or before the recorded one keeps the entry valid.
	_, found = cache.Get(path, stored)
	assert.True(t, found)
	_, found = cache.Get(path, stored.Add(-time.Hour))
	assert.True(t, found)
}

func TestCacheManager_PeekSkipsValidityCheck(t *testing.T) {
	cache := NewCacheManager()
	stored := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	path := "/project/Sources/TestModule/Main.swift"

	cache.Set(path, sampleContext(path), stored)

	entry, found := cache.Peek(path)
	require.True(t, found)
	assert.Equal(t, "Main.swift", entry.Context.Metadata.FileName)
}

func TestCacheManager_PerformanceStats(t *testing.T) {
	cache := NewCacheManager()
	stored := time.Now()
	path := "/project/Sources/TestModule/Main.swift"

	cache.Get(path, stored) // miss
	cache.Set(path, sampleContext(path), stored)
	cache.Get(path, stored) // hit

	stats := cache.GetPerformanceStats()
	assert.Equal(t, int64(2), stats["total_requests"])
	assert.Equal(t, int64(1), stats["cache_hits"])
	assert.Equal(t, int64(1), stats["cache_misses"])
	assert.Equal(t, 50.0, stats["hit_rate_percent"])
	assert.Equal(t, 1, stats["cached_files"])
}
