package engine

import (
	"gorm.io/gorm"
)

// compensator collects undo actions registered while an operation runs
// without transactional cover. Actions run in reverse order on failure.
type compensator struct {
	steps []func()
}

func (c *compensator) register(fn func()) {
	c.steps = append(c.steps, fn)
}

func (c *compensator) rollback() {
	for i := len(c.steps) - 1; i >= 0; i-- {
		c.steps[i]()
	}
}

// atomicRunner abstracts how a multi-document operation group executes:
// wrapped in a database transaction when the store supports it, or as
// ordered writes with compensating actions when it does not. Selected
// once from the atomic_updates capability flag.
type atomicRunner interface {
	Run(fn func(tx *gorm.DB, undo *compensator) error) error
}

type txRunner struct {
	db *gorm.DB
}

func (r *txRunner) Run(fn func(tx *gorm.DB, undo *compensator) error) error {
	// Rollback is handled by the transaction; registered compensations
	// are never executed.
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(tx, &compensator{})
	})
}

type sequentialRunner struct {
	db *gorm.DB
}

func (r *sequentialRunner) Run(fn func(tx *gorm.DB, undo *compensator) error) error {
	undo := &compensator{}

	if err := fn(r.db, undo); err != nil {
		undo.rollback()
		return err
	}

	return nil
}
