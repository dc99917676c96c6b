package tocgen

import (
	"strings"
	"sync"
	"sync/atomic"
)

// KeyManager hands out API keys for a provider, rotating when several are configured
type KeyManager struct {
	keys    []string
	current uint32
	mu      sync.RWMutex
}

// NewKeyManager creates a key manager from the primary key and any extra keys.
// Blank and duplicate keys are dropped.
func NewKeyManager(primary string, extra ...string) *KeyManager {
	keys := make([]string, 0, 1+len(extra))
	seen := make(map[string]bool)

	for _, key := range append([]string{primary}, extra...) {
		key = strings.TrimSpace(key)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}

	return &KeyManager{keys: keys}
}

// Len reports how many usable keys are configured
func (km *KeyManager) Len() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.keys)
}

// GetNextKey returns the next API key in rotation, or "" when none are configured
func (km *KeyManager) GetNextKey() string {
	km.mu.RLock()
	defer km.mu.RUnlock()

	if len(km.keys) == 0 {
		return ""
	}

	current := atomic.AddUint32(&km.current, 1)
	index := (current - 1) % uint32(len(km.keys))

	return km.keys[index]
}
