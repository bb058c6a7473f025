package engine

import (
	"testing"

	"github.com/learnex/ledger/models"
	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func earning(amount string, status types.EarningStatus) *models.AffiliateEarning {
	return &models.AffiliateEarning{Amount: d(amount), Status: status}
}

func withdrawal(amount string, status types.WithdrawalStatus) *models.Withdrawal {
	return &models.Withdrawal{Amount: d(amount), Status: status}
}

func TestSnapshotFreshCommissions(t *testing.T) {
	snapshot, err := computeSnapshot([]*models.AffiliateEarning{
		earning("650", types.EarningStatusPending),
		earning("50", types.EarningStatusPending),
	}, nil)

	assert.NoError(t, err)
	assert.True(t, d("700").Equal(snapshot.TotalEarnings))
	assert.True(t, d("700").Equal(snapshot.Pending))
	assert.True(t, snapshot.Available.IsZero())
	assert.True(t, snapshot.Processing.IsZero())
	assert.True(t, snapshot.Withdrawn.IsZero())
}

func TestSnapshotAfterMaturation(t *testing.T) {
	snapshot, err := computeSnapshot([]*models.AffiliateEarning{
		earning("650", types.EarningStatusAvailable),
		earning("50", types.EarningStatusPending),
	}, nil)

	assert.NoError(t, err)
	assert.True(t, d("650").Equal(snapshot.Available))
	assert.True(t, d("50").Equal(snapshot.Pending))
	assert.True(t, d("700").Equal(snapshot.TotalEarnings))
}

func TestSnapshotWithPendingWithdrawal(t *testing.T) {
	snapshot, err := computeSnapshot([]*models.AffiliateEarning{
		earning("500", types.EarningStatusAvailable),
	}, []*models.Withdrawal{
		withdrawal("500", types.WithdrawalStatusPending),
	})

	assert.NoError(t, err)
	assert.True(t, snapshot.Available.IsZero())
	assert.True(t, d("500").Equal(snapshot.Processing))
	assert.True(t, snapshot.Withdrawn.IsZero())
}

func TestSnapshotWithCompletedWithdrawal(t *testing.T) {
	snapshot, err := computeSnapshot([]*models.AffiliateEarning{
		earning("500", types.EarningStatusWithdrawn),
	}, []*models.Withdrawal{
		withdrawal("500", types.WithdrawalStatusCompleted),
	})

	assert.NoError(t, err)
	assert.True(t, snapshot.Available.IsZero())
	assert.True(t, snapshot.Processing.IsZero())
	assert.True(t, d("500").Equal(snapshot.Withdrawn))
	assert.True(t, d("500").Equal(snapshot.TotalEarnings))
}

func TestSnapshotRejectedWithdrawalRestoresAvailable(t *testing.T) {
	// A rejected withdrawal contributes to no bucket: the amount falls
	// back into available.
	snapshot, err := computeSnapshot([]*models.AffiliateEarning{
		earning("500", types.EarningStatusAvailable),
	}, []*models.Withdrawal{
		withdrawal("500", types.WithdrawalStatusRejected),
	})

	assert.NoError(t, err)
	assert.True(t, d("500").Equal(snapshot.Available))
	assert.True(t, snapshot.Processing.IsZero())
	assert.True(t, snapshot.Withdrawn.IsZero())
}

func TestSnapshotIsIdempotent(t *testing.T) {
	earnings := []*models.AffiliateEarning{
		earning("650", types.EarningStatusAvailable),
		earning("50", types.EarningStatusPending),
		earning("300", types.EarningStatusWithdrawn),
	}
	withdrawals := []*models.Withdrawal{
		withdrawal("300", types.WithdrawalStatusCompleted),
		withdrawal("100", types.WithdrawalStatusPending),
	}

	first, err := computeSnapshot(earnings, withdrawals)
	assert.NoError(t, err)

	second, err := computeSnapshot(earnings, withdrawals)
	assert.NoError(t, err)

	assert.True(t, first.Available.Equal(second.Available))
	assert.True(t, first.Pending.Equal(second.Pending))
	assert.True(t, first.Processing.Equal(second.Processing))
	assert.True(t, first.Withdrawn.Equal(second.Withdrawn))
	assert.True(t, first.TotalEarnings.Equal(second.TotalEarnings))

	sum := first.Available.Add(first.Pending).Add(first.Processing).Add(first.Withdrawn)
	assert.True(t, sum.Equal(first.TotalEarnings))
}

func TestSnapshotDetectsInconsistentHistory(t *testing.T) {
	_, err := computeSnapshot([]*models.AffiliateEarning{
		earning("100", types.EarningStatusAvailable),
	}, []*models.Withdrawal{
		withdrawal("500", types.WithdrawalStatusCompleted),
	})

	assert.Equal(t, ErrInconsistentHistory, err)
}
