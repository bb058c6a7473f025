package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newBalance() *Balance {
	return &Balance{
		MemberID:      1,
		Available:     decimal.Zero,
		Pending:       decimal.Zero,
		Processing:    decimal.Zero,
		Withdrawn:     decimal.Zero,
		TotalEarnings: decimal.Zero,
	}
}

func TestCreditPendingGrowsLifetimeTotal(t *testing.T) {
	balance := newBalance()

	assert.NoError(t, balance.creditPending(d("650")))
	assert.NoError(t, balance.creditPending(d("50")))

	assert.True(t, d("700").Equal(balance.Pending))
	assert.True(t, d("700").Equal(balance.TotalEarnings))
	assert.True(t, balance.Available.IsZero())
	assert.True(t, balance.Consistent())
}

func TestCreditPendingRejectsNonPositive(t *testing.T) {
	balance := newBalance()

	assert.Error(t, balance.creditPending(decimal.Zero))
	assert.Error(t, balance.creditPending(d("-10")))
	assert.True(t, balance.Pending.IsZero())
	assert.True(t, balance.TotalEarnings.IsZero())
}

func TestReleasePendingIsInternalTransfer(t *testing.T) {
	balance := newBalance()
	balance.creditPending(d("100"))

	assert.NoError(t, balance.releasePending(d("100")))

	assert.True(t, balance.Pending.IsZero())
	assert.True(t, d("100").Equal(balance.Available))
	assert.True(t, d("100").Equal(balance.TotalEarnings))
	assert.True(t, balance.Consistent())
}

func TestReleasePendingRejectsOverdraw(t *testing.T) {
	balance := newBalance()
	balance.creditPending(d("100"))

	assert.Error(t, balance.releasePending(d("101")))
	assert.True(t, d("100").Equal(balance.Pending))
}

func TestWithdrawalLockAndConfirm(t *testing.T) {
	balance := newBalance()
	balance.creditPending(d("500"))
	balance.releasePending(d("500"))

	assert.NoError(t, balance.lockAvailable(d("500")))
	assert.True(t, balance.Available.IsZero())
	assert.True(t, d("500").Equal(balance.Processing))
	assert.True(t, balance.Consistent())

	assert.NoError(t, balance.confirmLocked(d("500")))
	assert.True(t, balance.Processing.IsZero())
	assert.True(t, d("500").Equal(balance.Withdrawn))
	assert.True(t, d("500").Equal(balance.TotalEarnings))
	assert.True(t, balance.Consistent())
}

func TestWithdrawalLockAndRelease(t *testing.T) {
	balance := newBalance()
	balance.creditPending(d("500"))
	balance.releasePending(d("500"))

	before := balance.Available

	assert.NoError(t, balance.lockAvailable(d("500")))
	assert.NoError(t, balance.releaseLocked(d("500")))

	assert.True(t, before.Equal(balance.Available))
	assert.True(t, balance.Processing.IsZero())
	assert.True(t, d("500").Equal(balance.TotalEarnings))
	assert.True(t, balance.Consistent())
}

func TestLockRejectsInsufficientAvailable(t *testing.T) {
	balance := newBalance()
	balance.creditPending(d("200"))
	balance.releasePending(d("200"))

	assert.Error(t, balance.lockAvailable(d("300")))

	assert.True(t, d("200").Equal(balance.Available))
	assert.True(t, balance.Processing.IsZero())
	assert.True(t, balance.Consistent())
}

func TestConfirmAndReleaseRejectOverdraw(t *testing.T) {
	balance := newBalance()

	assert.Error(t, balance.confirmLocked(d("1")))
	assert.Error(t, balance.releaseLocked(d("1")))
	assert.True(t, balance.Consistent())
}

func TestCompensationsReverseEachMutation(t *testing.T) {
	balance := newBalance()

	balance.creditPending(d("100"))
	balance.revertCredit(d("100"))
	assert.True(t, balance.Pending.IsZero())
	assert.True(t, balance.TotalEarnings.IsZero())
	assert.True(t, balance.Consistent())

	balance.creditPending(d("100"))
	balance.releasePending(d("100"))
	balance.revertRelease(d("100"))
	assert.True(t, d("100").Equal(balance.Pending))
	assert.True(t, balance.Available.IsZero())

	balance.releasePending(d("100"))
	balance.lockAvailable(d("100"))
	balance.revertLock(d("100"))
	assert.True(t, d("100").Equal(balance.Available))
	assert.True(t, balance.Processing.IsZero())

	balance.lockAvailable(d("100"))
	balance.confirmLocked(d("100"))
	balance.revertConfirm(d("100"))
	assert.True(t, d("100").Equal(balance.Processing))
	assert.True(t, balance.Withdrawn.IsZero())

	balance.releaseLocked(d("100"))
	balance.revertUnlock(d("100"))
	assert.True(t, d("100").Equal(balance.Processing))
	assert.True(t, balance.Available.IsZero())

	assert.True(t, balance.Consistent())
}

func TestConsistentDetectsDrift(t *testing.T) {
	balance := newBalance()
	balance.creditPending(d("100"))

	balance.Available = d("5")

	assert.False(t, balance.Consistent())
}
