// Package deps provides the explicit dependency bundle passed into tool
// invocations: API keys, dates, user preferences. Tool logic receives a
// Bundle rather than reading process-wide state, keeping each request's
// dependencies visible and testable.
package deps

import (
	"sync"
	"time"
)

// Well-known bundle keys used by the shipped tools and system prompts.
const (
	// KeyCurrentDate holds the request date (time.Time or RFC 3339 string).
	KeyCurrentDate = "current_date"
	// KeyWeatherstackAPIKey holds the weatherstack.com access key.
	KeyWeatherstackAPIKey = "weatherstack_api_key"
	// KeyAlphaVantageAPIKey holds the alphavantage.co API key.
	KeyAlphaVantageAPIKey = "alpha_vantage_api_key"
)

// Bundle is a thread-safe key/value context passed unchanged to tool
// invocations. A nil *Bundle behaves as an empty bundle for reads.
type Bundle struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty bundle.
func New() *Bundle {
	return &Bundle{values: make(map[string]any)}
}

// NewFrom creates a bundle initialized with the given data.
func NewFrom(data map[string]any) *Bundle {
	b := New()
	for k, v := range data {
		b.values[k] = v
	}
	return b
}

// Get retrieves a value from the bundle.
func (b *Bundle) Get(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[key]
	return v, ok
}

// GetString retrieves a string value. Returns empty string if not found or wrong type.
func (b *Bundle) GetString(key string) string {
	v, ok := b.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// GetInt retrieves an int value. Returns 0 if not found or wrong type.
// Handles float64 from JSON unmarshaling.
func (b *Bundle) GetInt(key string) int {
	v, ok := b.Get(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	}
	return 0
}

// GetFloat retrieves a float64 value. Returns 0.0 if not found or wrong type.
func (b *Bundle) GetFloat(key string) float64 {
	v, ok := b.Get(key)
	if !ok {
		return 0.0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0.0
}

// GetBool retrieves a bool value. Returns false if not found or wrong type.
func (b *Bundle) GetBool(key string) bool {
	v, ok := b.Get(key)
	if !ok {
		return false
	}
	if bv, ok := v.(bool); ok {
		return bv
	}
	return false
}

// GetTime retrieves a time.Time value. RFC 3339 and date-only strings are
// parsed. Returns the zero time if not found or not parseable.
func (b *Bundle) GetTime(key string) time.Time {
	v, ok := b.Get(key)
	if !ok {
		return time.Time{}
	}
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Set stores a value in the bundle.
func (b *Bundle) Set(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
}

// Has returns true if the key exists with a non-nil value.
func (b *Bundle) Has(key string) bool {
	v, ok := b.Get(key)
	return ok && v != nil
}

// Keys returns all keys in the bundle.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of keys in the bundle.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.values)
}

// Clone creates a shallow copy of the bundle.
func (b *Bundle) Clone() *Bundle {
	clone := New()
	if b == nil {
		return clone
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for k, v := range b.values {
		clone.values[k] = v
	}
	return clone
}

// Merge copies values from another bundle, overwriting existing keys.
func (b *Bundle) Merge(other *Bundle) {
	if other == nil {
		return
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, v := range other.values {
		b.values[k] = v
	}
}
