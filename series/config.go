package series

import (
	"log/slog"
	"time"
)

// EngineConfig holds configuration options for the series engine
type EngineConfig struct {
	// Cache configuration
	CacheEnabled bool
	CacheConfig  CacheConfig

	// MaxOccurrences caps how many times a single expansion may produce;
	// expansions hitting the cap are truncated and logged.
	MaxOccurrences int

	// Logger receives truncation warnings; slog.Default() when nil.
	Logger *slog.Logger
}

// DefaultEngineConfig provides sensible defaults for production use
var DefaultEngineConfig = EngineConfig{
	CacheEnabled:   true,
	CacheConfig:    DefaultCacheConfig,
	MaxOccurrences: 10000,
}

// HighPerformanceConfig is optimized for high-traffic scenarios
var HighPerformanceConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             30 * time.Minute, // Longer cache TTL
		MaxEntries:      5000,             // More cache entries
		CleanupInterval: 10 * time.Minute, // Less frequent cleanup
	},
	MaxOccurrences: 1000, // Shorter expansions for speed
}

// LowMemoryConfig is optimized for memory-constrained environments
var LowMemoryConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             5 * time.Minute, // Shorter cache TTL
		MaxEntries:      100,             // Fewer cache entries
		CleanupInterval: 2 * time.Minute, // More frequent cleanup
	},
	MaxOccurrences: 1000,
}

// DisabledCacheConfig turns off caching entirely
var DisabledCacheConfig = EngineConfig{
	CacheEnabled:   false,
	CacheConfig:    CacheConfig{}, // Not used
	MaxOccurrences: 10000,
}
