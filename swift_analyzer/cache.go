package swift_analyzer

import (
	"sync"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/swiftctx/swiftctx/swift_analyzer/models"
)

// CacheEntry is the per-file snapshot stored after a successful analysis:
// the content read at analysis time, the rendered metadata, and the on-disk
// modification time observed then.
type CacheEntry struct {
	Context  models.FileContext
	ModTime  time.Time
	StoredAt time.Time
}

// CacheStats tracks cache performance for the lifetime of one manager.
type CacheStats struct {
	TotalRequests int64
	CacheHits     int64
	CacheMisses   int64
	LastResetTime time.Time
	mutex         sync.RWMutex
}

// CacheManager holds analysis snapshots for the duration of one analyzer
// instance. Entries live in memory only and are discarded with the manager;
// nothing persists across runs. Reads and writes are serialized through a
// single RWMutex so the manager tolerates concurrent readers, though the
// analyzer itself mutates it from one goroutine.
type CacheManager struct {
	entries map[uint64]*CacheEntry
	mutex   sync.RWMutex
	stats   *CacheStats
}

// NewCacheManager creates an empty in-memory cache manager.
func NewCacheManager() *CacheManager {
	return &CacheManager{
		entries: make(map[uint64]*CacheEntry),
		stats: &CacheStats{
			LastResetTime: time.Now(),
		},
	}
}

// cacheKey hashes a canonical path into the map key.
func cacheKey(path string) uint64 {
	return xxh3.HashString(path)
}

// Get returns the entry for a canonical path when one exists and the file's
// current modification time is not newer than the recorded one. A stale
// entry counts as a miss and is left in place for the caller to overwrite.
func (cm *CacheManager) Get(path string, currentModTime time.Time) (*CacheEntry, bool) {
	cm.mutex.RLock()
	entry, found := cm.entries[cacheKey(path)]
	cm.mutex.RUnlock()

	if !found {
		cm.recordCacheMiss()
		return nil, false
	}
	if currentModTime.After(entry.ModTime) {
		cm.recordCacheMiss()
		return nil, false
	}

	cm.recordCacheHit()
	return entry, true
}

// Peek returns the stored entry without a validity check or stats update.
// The renderer uses it to read the captured content and metadata.
func (cm *CacheManager) Peek(path string) (*CacheEntry, bool) {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	entry, found := cm.entries[cacheKey(path)]
	return entry, found
}

// Set stores or replaces the entry for a canonical path.
func (cm *CacheManager) Set(path string, context models.FileContext, modTime time.Time) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cm.entries[cacheKey(path)] = &CacheEntry{
		Context:  context,
		ModTime:  modTime,
		StoredAt: time.Now(),
	}
}

// Len reports the number of cached files.
func (cm *CacheManager) Len() int {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()
	return len(cm.entries)
}

func (cm *CacheManager) recordCacheHit() {
	cm.stats.mutex.Lock()
	defer cm.stats.mutex.Unlock()
	cm.stats.TotalRequests++
	cm.stats.CacheHits++
}

func (cm *CacheManager) recordCacheMiss() {
	cm.stats.mutex.Lock()
	defer cm.stats.mutex.Unlock()
	cm.stats.TotalRequests++
	cm.stats.CacheMisses++
}

// GetPerformanceStats returns hit/miss counters for the manager's lifetime.
func (cm *CacheManager) GetPerformanceStats() map[string]interface{} {
	cm.stats.mutex.RLock()
	defer cm.stats.mutex.RUnlock()

	hitRate := 0.0
	if cm.stats.TotalRequests > 0 {
		hitRate = float64(cm.stats.CacheHits) / float64(cm.stats.TotalRequests) * 100
	}

	return map[string]interface{}{
		"total_requests":   cm.stats.TotalRequests,
		"cache_hits":       cm.stats.CacheHits,
		"cache_misses":     cm.stats.CacheMisses,
		"hit_rate_percent": hitRate,
		"cached_files":     cm.Len(),
		"since":            cm.stats.LastResetTime.Format(time.RFC3339),
	}
}
