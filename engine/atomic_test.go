package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSequentialRunnerRollsBackInReverseOrder(t *testing.T) {
	runner := &sequentialRunner{}

	var undone []string

	err := runner.Run(func(tx *gorm.DB, undo *compensator) error {
		undo.register(func() { undone = append(undone, "first") })
		undo.register(func() { undone = append(undone, "second") })

		return errors.New("boom")
	})

	assert.Error(t, err)
	assert.Equal(t, []string{"second", "first"}, undone)
}

func TestSequentialRunnerSkipsRollbackOnSuccess(t *testing.T) {
	runner := &sequentialRunner{}

	undone := false

	err := runner.Run(func(tx *gorm.DB, undo *compensator) error {
		undo.register(func() { undone = true })

		return nil
	})

	assert.NoError(t, err)
	assert.False(t, undone)
}
