// Package records keeps the best finished run between launches.
package records

import (
	"fmt"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

const bestKey = "best"

// Run is the summary of one finished run.
type Run struct {
	ID    string  `yaml:"id"`
	Seed  int64   `yaml:"seed"`
	Frame int     `yaml:"frame"`
	Score int     `yaml:"score"`
	Depth float64 `yaml:"depth"`
}

// Store is the item storage a Book persists through. *gdata.Manager
// satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Book holds the best run and writes it back whenever it is beaten.
type Book struct {
	store Store
	best  Run
	ok    bool
}

// Open opens the per-user data directory for appName.
func Open(appName string) (*Book, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("records: open: %w", err)
	}
	return NewBook(m)
}

// NewBook reads the saved best from store. A read failure returns no Book,
// so nothing is written over a best that could not be loaded.
func NewBook(store Store) (*Book, error) {
	b := &Book{store: store}
	data, err := store.LoadItem(bestKey)
	if err != nil {
		// Without the saved best any run would replace it.
		return nil, fmt.Errorf("records: load %s: %w", bestKey, err)
	}
	if len(data) == 0 {
		return b, nil
	}
	if err := yaml.Unmarshal(data, &b.best); err != nil {
		return b, fmt.Errorf("records: decode %s: %w", bestKey, err)
	}
	b.ok = true
	return b, nil
}

// Best returns the best run so far, if there is one.
func (b *Book) Best() (Run, bool) {
	if b == nil {
		return Run{}, false
	}
	return b.best, b.ok
}

// Record saves run if it beats the best score, or ties it deeper. It
// reports whether run is the new best.
func (b *Book) Record(run Run) (bool, error) {
	if b == nil {
		return false, nil
	}
	if b.ok && (run.Score < b.best.Score || run.Score == b.best.Score && run.Depth <= b.best.Depth) {
		return false, nil
	}
	data, err := yaml.Marshal(run)
	if err != nil {
		return false, fmt.Errorf("records: encode: %w", err)
	}
	if err := b.store.SaveItem(bestKey, data); err != nil {
		return false, fmt.Errorf("records: save: %w", err)
	}
	b.best, b.ok = run, true
	return true, nil
}
