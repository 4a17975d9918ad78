package plotting

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Houeta/deedplot/internal/models"
	"golang.org/x/sync/singleflight"
)

// Plotter is the computation the cache wraps.
type Plotter interface {
	Plot(calls []models.Call) (*models.PlotResult, error)
	Validate(result *models.PlotResult) models.ValidationReport
}

// Cache memoizes plot results, content-addressed by a hash of the call
// sequence. Concurrent requests for the same sequence share a single
// in-flight computation; the pipeline runs at most once per key. Parse
// failures are not cached, so a corrected deed with the same identity is
// recomputed.
type Cache struct {
	inner Plotter

	group   singleflight.Group
	mu      sync.RWMutex
	results map[string]*models.PlotResult
}

// NewCache wraps a Plotter with memoization.
func NewCache(inner Plotter) *Cache {
	return &Cache{
		inner:   inner,
		results: make(map[string]*models.PlotResult),
	}
}

// Plot returns the memoized result for the call sequence, computing it at
// most once.
func (c *Cache) Plot(calls []models.Call) (*models.PlotResult, error) {
	key, err := sequenceKey(calls)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	cached, ok := c.results[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		result, plotErr := c.inner.Plot(calls)
		if plotErr != nil {
			return nil, plotErr
		}

		c.mu.Lock()
		c.results[key] = result
		c.mu.Unlock()
		return result, nil
	})
	if err != nil {
		return nil, err
	}

	result, ok := value.(*models.PlotResult)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value of type %T", value)
	}
	return result, nil
}

// Validate delegates to the wrapped plotter; validation is cheap and pure,
// so it is not memoized.
func (c *Cache) Validate(result *models.PlotResult) models.ValidationReport {
	return c.inner.Validate(result)
}

// sequenceKey derives the content address of a call sequence from its
// canonical JSON encoding. Order matters: the same calls in a different
// order are a different traverse and a different key.
func sequenceKey(calls []models.Call) (string, error) {
	encoded, err := json.Marshal(calls)
	if err != nil {
		return "", fmt.Errorf("failed to encode call sequence for hashing: %w", err)
	}
	digest := sha256.Sum256(encoded)
	return hex.EncodeToString(digest[:]), nil
}
