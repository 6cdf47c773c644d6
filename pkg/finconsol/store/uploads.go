// Package store keeps the in-memory set of uploaded tables and the last
// consolidated report built from them.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

var (
	// ErrTableNotFound indicates no uploaded table has the given id.
	ErrTableNotFound = errors.New("table not found")
	// ErrRowOutOfRange indicates a row index outside the table.
	ErrRowOutOfRange = errors.New("row index out of range")
)

// UploadSet owns uploaded tables in upload order.
type UploadSet struct {
	mu      sync.RWMutex
	tables  []*models.UploadedTable
	version uint64
}

// NewUploadSet returns an empty set.
func NewUploadSet() *UploadSet {
	return &UploadSet{}
}

// Add appends a table to the set.
func (s *UploadSet) Add(t *models.UploadedTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = append(s.tables, t)
	s.version++
}

// Remove drops the table with id and reports whether it existed.
func (s *UploadSet) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tables {
		if t.ID == id {
			s.tables = append(s.tables[:i], s.tables[i+1:]...)
			s.version++
			return true
		}
	}
	return false
}

// Get returns the table with id.
func (s *UploadSet) Get(id string) (*models.UploadedTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t := s.find(id)
	return t, t != nil
}

// Tables returns the tables in upload order. The slice is a copy; the
// tables are shared.
func (s *UploadSet) Tables() []*models.UploadedTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.UploadedTable, len(s.tables))
	copy(out, s.tables)
	return out
}

// Len returns the number of tables.
func (s *UploadSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}

// UpdateCell sets the value at header in row rowIndex of table id, in place.
// No report is touched.
func (s *UploadSet) UpdateCell(id string, rowIndex int, header string, v models.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.find(id)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrTableNotFound, id)
	}
	if rowIndex < 0 || rowIndex >= len(t.Rows) {
		return fmt.Errorf("%w: %d (table has %d rows)", ErrRowOutOfRange, rowIndex, len(t.Rows))
	}
	t.Rows[rowIndex].Set(header, v)
	s.version++
	return nil
}

// Snapshot returns deep copies of the tables so a consolidation run never
// observes later edits.
func (s *UploadSet) Snapshot() ([]*models.UploadedTable, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.UploadedTable, 0, len(s.tables))
	for _, t := range s.tables {
		var rows []models.Row
		if err := deepcopy.Copy(&rows, t.Rows); err != nil {
			return nil, 0, fmt.Errorf("copy table %s: %w", t.ID, err)
		}
		c := *t
		c.Rows = rows
		out = append(out, &c)
	}
	return out, s.version, nil
}

func (s *UploadSet) find(id string) *models.UploadedTable {
	for _, t := range s.tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *UploadSet) currentVersion() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
