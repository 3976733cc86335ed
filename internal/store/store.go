// Package store owns the authoritative in-memory transaction collection.
//
// The collection is copy-on-write: writers serialize on a mutex, build a new
// slice and swap it in atomically, so readers iterate a consistent
// point-in-time snapshot without ever blocking a writer.
package store

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"fintrack/internal/logging"
	"fintrack/internal/models"
	"fintrack/internal/persistence"
)

// Store holds the transaction collection and delegates durability to a
// persistence gateway.
type Store struct {
	mu      sync.Mutex // serializes writers; readers go through snap only
	snap    atomic.Pointer[[]models.Transaction]
	gateway persistence.Gateway
	log     *logrus.Logger
}

// New creates an empty store backed by the given gateway.
func New(gateway persistence.Gateway, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Store{gateway: gateway, log: logger}
	empty := []models.Transaction{}
	s.snap.Store(&empty)
	return s
}

// Load replaces the whole collection with the contents of the data file.
// Load is best-effort: any I/O or parse failure is logged and leaves the
// store empty rather than failing startup.
func (s *Store) Load(path string) {
	loaded, err := s.gateway.Load(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).WithField(logging.FieldFile, path).Warn("Could not load data file, starting with empty collection")
		loaded = []models.Transaction{}
	}
	s.snap.Store(&loaded)
	s.log.WithFields(logrus.Fields{
		logging.FieldFile:  path,
		logging.FieldCount: len(loaded),
	}).Debug("Store collection replaced from data file")
}

// SaveAll hands a stable snapshot of the collection to the gateway. Failure
// is logged; in-memory state is never affected.
func (s *Store) SaveAll(path string) {
	snapshot := s.All()
	if err := s.gateway.Save(snapshot, path); err != nil {
		s.log.WithError(err).WithField(logging.FieldFile, path).Error("Failed to save transactions")
	}
}

// Add appends a transaction. An invalid transaction (missing ID or blank
// description) is a logged no-op.
func (s *Store) Add(t models.Transaction) {
	if t.ID == "" || strings.TrimSpace(t.Description) == "" {
		s.log.Warn("Ignoring attempt to add an invalid transaction")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := *s.snap.Load()
	next := make([]models.Transaction, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, t)
	s.snap.Store(&next)
	s.log.WithField(logging.FieldID, t.ID).Debug("Added transaction")
}

// RemoveAt removes the transaction at index. Returns false (and logs) when
// the index is out of range.
func (s *Store) RemoveAt(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := *s.snap.Load()
	if index < 0 || index >= len(cur) {
		s.log.WithField(logging.FieldIndex, index).Warn("Attempted to remove transaction at invalid index")
		return false
	}
	next := make([]models.Transaction, 0, len(cur)-1)
	next = append(next, cur[:index]...)
	next = append(next, cur[index+1:]...)
	s.snap.Store(&next)
	s.log.WithField(logging.FieldID, cur[index].ID).Debug("Removed transaction by index")
	return true
}

// RemoveByID removes the first transaction with the given id. Returns false
// (and logs) when no transaction matches.
func (s *Store) RemoveByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := *s.snap.Load()
	for i, t := range cur {
		if t.ID == id {
			next := make([]models.Transaction, 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			s.snap.Store(&next)
			s.log.WithField(logging.FieldID, id).Debug("Removed transaction by ID")
			return true
		}
	}
	s.log.WithField(logging.FieldID, id).Warn("Attempted to remove transaction with non-existent ID")
	return false
}

// GetAt returns the transaction at index.
func (s *Store) GetAt(index int) (models.Transaction, bool) {
	cur := *s.snap.Load()
	if index < 0 || index >= len(cur) {
		return models.Transaction{}, false
	}
	return cur[index], true
}

// GetByID returns the first transaction with the given id.
func (s *Store) GetByID(id string) (models.Transaction, bool) {
	for _, t := range *s.snap.Load() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// All returns a point-in-time copy of the full collection in insertion
// order. Mutating the returned slice never affects store state.
func (s *Store) All() []models.Transaction {
	cur := *s.snap.Load()
	out := make([]models.Transaction, len(cur))
	copy(out, cur)
	return out
}

// Size returns the number of transactions currently held.
func (s *Store) Size() int {
	return len(*s.snap.Load())
}

// UpdateAt replaces the transaction at index wholesale. An ID mismatch
// between the old and new record is logged but the replacement proceeds
// (last write wins).
func (s *Store) UpdateAt(index int, t models.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := *s.snap.Load()
	if index < 0 || index >= len(cur) {
		s.log.WithField(logging.FieldIndex, index).Warn("Attempted to update transaction at invalid index")
		return false
	}
	if cur[index].ID != t.ID {
		s.log.WithFields(logrus.Fields{
			logging.FieldIndex: index,
			logging.FieldOldID: cur[index].ID,
			logging.FieldNewID: t.ID,
		}).Warn("Updating transaction with mismatched ID")
	}
	next := make([]models.Transaction, len(cur))
	copy(next, cur)
	next[index] = t
	s.snap.Store(&next)
	s.log.WithField(logging.FieldID, t.ID).Debug("Updated transaction by index")
	return true
}

// UpdateByID replaces the first transaction with the given id wholesale.
func (s *Store) UpdateByID(id string, t models.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := *s.snap.Load()
	for i := range cur {
		if cur[i].ID == id {
			next := make([]models.Transaction, len(cur))
			copy(next, cur)
			next[i] = t
			s.snap.Store(&next)
			s.log.WithField(logging.FieldID, id).Debug("Updated transaction by ID")
			return true
		}
	}
	s.log.WithField(logging.FieldID, id).Warn("Attempted to update transaction with non-existent ID")
	return false
}

// SetCategoryAt assigns a category to the transaction at index. Manual
// assignment always clears the AI-suggested flag.
func (s *Store) SetCategoryAt(index int, category models.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := *s.snap.Load()
	if index < 0 || index >= len(cur) {
		s.log.WithField(logging.FieldIndex, index).Warn("Attempted to set category at invalid index")
		return false
	}
	next := make([]models.Transaction, len(cur))
	copy(next, cur)
	next[index].SetCategory(category)
	s.snap.Store(&next)
	return true
}

// SetCategoryByID assigns a category to the first transaction with the given
// id, clearing the AI-suggested flag.
func (s *Store) SetCategoryByID(id string, category models.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := *s.snap.Load()
	for i := range cur {
		if cur[i].ID == id {
			next := make([]models.Transaction, len(cur))
			copy(next, cur)
			next[i].SetCategory(category)
			s.snap.Store(&next)
			return true
		}
	}
	s.log.WithField(logging.FieldID, id).Warn("Attempted to set category for non-existent ID")
	return false
}
