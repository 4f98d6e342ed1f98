// Package seeders provides a registry of database seed functions.
//
// Define a seeder in any file in this package:
//
//	func init() {
//	    seeders.Register("demo", SeedDemo)
//	}
//
// Then run via CLI: salesdash seed
package seeders

import (
	"fmt"
	"sync"

	"github.com/Gurpreet0022/sales-dashboard/pkg/logger"
	"gorm.io/gorm"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(db *gorm.DB) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error: a bad seed row means the demo dataset is
// broken and initialization must abort.
func RunAll(db *gorm.DB) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	if len(current) == 0 {
		logger.Info("seed: no seeders registered")
		return nil
	}

	for _, e := range current {
		logger.Info("seed: running", "name", e.name)
		if err := e.fn(db); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
	}
	return nil
}
