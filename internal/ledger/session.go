// Package ledger is the transactional data-consistency core of Genesis City.
//
// It owns every operation that must execute several dependent statements
// against interrelated entities and either commit all effects or none,
// enforcing the domain invariants the schema alone cannot guarantee. The HTTP
// layer calls into this package and renders the classified results; nothing
// here formats for display or reads from a request directly.
package ledger

import (
	"gorm.io/gorm" // GORM ORM library
)

// Session wraps one live database handle and owns transaction boundaries.
// Callers construct one per authenticated connection and pass it into every
// operation; there is no process-wide singleton.
type Session struct {
	db *gorm.DB // Underlying authenticated handle
}

// NewSession wraps an already-authenticated database handle
func NewSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

// DB exposes the underlying handle for read-only queries that need no
// transaction
func (s *Session) DB() *gorm.DB {
	return s.db
}

// Begin opens an atomic unit of work
func (s *Session) Begin() (*gorm.DB, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		// The handle is unavailable, surface it as a connection failure
		return nil, &Error{Kind: KindConnection, Err: tx.Error}
	}
	return tx, nil
}

// Commit durably applies all writes since Begin
func (s *Session) Commit(tx *gorm.DB) error {
	if err := tx.Commit().Error; err != nil {
		return &Error{Kind: KindCommit, Err: err}
	}
	return nil
}

// Rollback discards all writes since Begin
func (s *Session) Rollback(tx *gorm.DB) error {
	if err := tx.Rollback().Error; err != nil {
		return &Error{Kind: KindRollback, Err: err}
	}
	return nil
}

// Transact runs fn inside one transaction. Any error from fn, including a
// precondition violation detected mid-operation, rolls every prior statement
// back and is returned classified; a commit failure surfaces as KindCommit.
// The store is always left consistent with either full success or full
// rollback.
func (s *Session) Transact(fn func(tx *gorm.DB) error) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		// Rollback failures are secondary to the original error
		_ = s.Rollback(tx)
		return ensureClassified(err)
	}
	return s.Commit(tx)
}
