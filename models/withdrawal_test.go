package models

import (
	"testing"
	"time"

	"github.com/learnex/ledger/types"
	"github.com/stretchr/testify/assert"
)

func TestWithdrawalStateMachine(t *testing.T) {
	withdrawal := &Withdrawal{Status: types.WithdrawalStatusPending}

	assert.True(t, withdrawal.CanResolve())
	assert.False(t, withdrawal.Terminal())

	withdrawal.Status = types.WithdrawalStatusCompleted
	assert.False(t, withdrawal.CanResolve())
	assert.True(t, withdrawal.Terminal())

	withdrawal.Status = types.WithdrawalStatusRejected
	assert.False(t, withdrawal.CanResolve())
	assert.True(t, withdrawal.Terminal())
}

func TestEarningMatured(t *testing.T) {
	now := time.Now()

	earning := &AffiliateEarning{AvailableAt: now.Add(-time.Hour)}
	assert.True(t, earning.Matured(now))

	earning.AvailableAt = now.Add(time.Hour)
	assert.False(t, earning.Matured(now))

	earning.AvailableAt = now
	assert.True(t, earning.Matured(now))
}
