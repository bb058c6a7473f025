package engine

import (
	"time"

	"github.com/learnex/ledger/models"
	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Snapshot is a balance recomputed from raw history.
type Snapshot struct {
	Available     decimal.Decimal
	Pending       decimal.Decimal
	Processing    decimal.Decimal
	Withdrawn     decimal.Decimal
	TotalEarnings decimal.Decimal
}

// computeSnapshot rebuilds the four buckets from the earning and
// withdrawal history. Lifetime earnings are the sum of all grants;
// processing and withdrawn come from withdrawal states; pending is what
// maturation has not yet released; available is the remainder. A negative
// remainder means the history itself is corrupt and is reported, never
// clamped.
func computeSnapshot(earnings []*models.AffiliateEarning, withdrawals []*models.Withdrawal) (Snapshot, error) {
	snapshot := Snapshot{
		Available:     decimal.Zero,
		Pending:       decimal.Zero,
		Processing:    decimal.Zero,
		Withdrawn:     decimal.Zero,
		TotalEarnings: decimal.Zero,
	}

	for _, earning := range earnings {
		snapshot.TotalEarnings = snapshot.TotalEarnings.Add(earning.Amount)
		if earning.Status == types.EarningStatusPending {
			snapshot.Pending = snapshot.Pending.Add(earning.Amount)
		}
	}

	for _, withdrawal := range withdrawals {
		switch withdrawal.Status {
		case types.WithdrawalStatusPending:
			snapshot.Processing = snapshot.Processing.Add(withdrawal.Amount)
		case types.WithdrawalStatusCompleted:
			snapshot.Withdrawn = snapshot.Withdrawn.Add(withdrawal.Amount)
		}
	}

	snapshot.Available = snapshot.TotalEarnings.
		Sub(snapshot.Pending).
		Sub(snapshot.Processing).
		Sub(snapshot.Withdrawn)

	if snapshot.Available.IsNegative() {
		return snapshot, ErrInconsistentHistory
	}

	return snapshot, nil
}

// Reconcile overwrites the member's balance with a snapshot recomputed
// from full history. Running it twice in a row yields the same result.
func (e *BalanceEngine) Reconcile(memberID int64) (Snapshot, error) {
	var snapshot Snapshot

	err := e.runner.Run(func(tx *gorm.DB, undo *compensator) error {
		balance, err := e.lockBalance(tx, memberID)
		if err != nil {
			return err
		}

		var earnings []*models.AffiliateEarning
		var withdrawals []*models.Withdrawal

		if result := tx.Where("member_id = ?", memberID).Find(&earnings); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("member_id = ?", memberID).Find(&withdrawals); result.Error != nil {
			return result.Error
		}

		snapshot, err = computeSnapshot(earnings, withdrawals)
		if err != nil {
			return err
		}

		balance.Available = snapshot.Available
		balance.Pending = snapshot.Pending
		balance.Processing = snapshot.Processing
		balance.Withdrawn = snapshot.Withdrawn
		balance.TotalEarnings = snapshot.TotalEarnings
		balance.LastSyncedAt = time.Now()

		return tx.Save(balance).Error
	})

	return snapshot, err
}

// ReconcileAll sweeps every member with ledger history and repairs drift.
func (e *BalanceEngine) ReconcileAll() (int, error) {
	var member_ids []int64

	if result := e.db.Model(&models.Balance{}).Distinct("member_id").Find(&member_ids); result.Error != nil {
		return 0, result.Error
	}

	synced := 0
	for _, member_id := range member_ids {
		if _, err := e.Reconcile(member_id); err != nil {
			e.logger.Errorf("reconcile sweep: member %d failed: %v", member_id, err)
			continue
		}
		synced++
	}

	return synced, nil
}
