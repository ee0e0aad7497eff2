// Package series expands offsets into date series: given a start point
// and an offset, it produces the sequence of times reached by applying
// the offset repeatedly. RRULE-driven expansion is supported alongside
// offset stepping for callers holding iCalendar recurrence rules.
package series

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cyp0633/liboffsets/offset"
	"github.com/teambition/rrule-go"
)

// Engine performs series expansion. It is safe for concurrent use.
type Engine struct {
	cache  *expansionCache
	config EngineConfig
	logger *slog.Logger
}

// NewEngine creates an engine with DefaultEngineConfig.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig)
}

// NewEngineWithConfig creates an engine with custom configuration.
func NewEngineWithConfig(config EngineConfig) *Engine {
	var cache *expansionCache
	if config.CacheEnabled {
		cache = newExpansionCache(config.CacheConfig)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cache:  cache,
		config: config,
		logger: logger,
	}
}

// Close stops the engine's cache maintenance. The engine must not be
// used afterwards.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.stop()
	}
}

// Between returns every time reached by stepping off forward from start
// while staying within [start, end], start itself included. Offsets that
// fail to advance (for example a zero repeat count) are rejected rather
// than looped on.
func (e *Engine) Between(start, end time.Time, off offset.Offset) ([]time.Time, error) {
	if end.Before(start) {
		return nil, nil
	}

	var key string
	if e.cache != nil {
		key = cacheKey(off.Label(), start, end)
		if result, ok := e.cache.get(key); ok {
			return result, nil
		}
	}

	var result []time.Time
	for t := start; !t.After(end); {
		result = append(result, t)
		if len(result) >= e.config.MaxOccurrences {
			e.logger.Warn("series expansion truncated",
				"freq", off.Label(),
				"start", start,
				"end", end,
				"max", e.config.MaxOccurrences,
			)
			break
		}
		next := off.Forward(t)
		if !next.After(t) {
			return nil, fmt.Errorf("offset %q does not advance from %s", off.Label(), t.Format(time.RFC3339))
		}
		t = next
	}

	if e.cache != nil {
		e.cache.set(key, result)
	}
	return result, nil
}

// Times returns start and the next count-1 steps of off, count entries
// in total.
func (e *Engine) Times(start time.Time, count int, off offset.Offset) ([]time.Time, error) {
	if count <= 0 {
		return nil, nil
	}
	if count > e.config.MaxOccurrences {
		return nil, fmt.Errorf("requested %d occurrences exceeds the configured maximum %d", count, e.config.MaxOccurrences)
	}

	result := make([]time.Time, 0, count)
	t := start
	for i := 0; i < count; i++ {
		result = append(result, t)
		next := off.Forward(t)
		if !next.After(t) {
			return nil, fmt.Errorf("offset %q does not advance from %s", off.Label(), t.Format(time.RFC3339))
		}
		t = next
	}
	return result, nil
}

// FromRRule expands an iCalendar RRULE within [rangeStart, rangeEnd],
// both inclusive, anchored at dtstart.
func (e *Engine) FromRRule(dtstart time.Time, rruleStr string, rangeStart, rangeEnd time.Time) ([]time.Time, error) {
	// Build the full RRULE string for parsing
	full := fmt.Sprintf("DTSTART:%s\nRRULE:%s", dtstart.UTC().Format("20060102T150405Z"), rruleStr)

	ruleSet, err := rrule.StrToRRuleSet(full)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RRULE '%s': %w", rruleStr, err)
	}

	occurrences := ruleSet.Between(rangeStart, rangeEnd, true)
	if len(occurrences) > e.config.MaxOccurrences {
		e.logger.Warn("rrule expansion truncated",
			"rrule", rruleStr,
			"max", e.config.MaxOccurrences,
		)
		occurrences = occurrences[:e.config.MaxOccurrences]
	}
	return occurrences, nil
}
