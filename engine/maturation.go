package engine

import (
	"time"

	"github.com/learnex/ledger/models"
	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaturePending moves matured earnings from pending to available. The
// default policy releases earnings whose holding window has elapsed;
// force is the administrative move-everything-now override. Lifetime
// earnings are untouched, this is an internal transfer.
func (e *BalanceEngine) MaturePending(memberID int64, force bool) (decimal.Decimal, error) {
	moved := decimal.Zero
	now := time.Now()

	err := e.runner.Run(func(tx *gorm.DB, undo *compensator) error {
		balance, err := e.lockBalance(tx, memberID)
		if err != nil {
			return err
		}

		var earnings []*models.AffiliateEarning

		query := tx.Clauses(clause.Locking{
			Strength: "UPDATE",
			Table:    clause.Table{Name: "affiliate_earnings"},
		}).Where("member_id = ? AND status = ?", memberID, types.EarningStatusPending)
		if !force {
			query = query.Where("available_at <= ?", now)
		}
		query.Find(&earnings)

		if len(earnings) == 0 {
			return nil
		}

		sum := decimal.Zero
		ids := make([]int64, 0, len(earnings))
		for _, earning := range earnings {
			sum = sum.Add(earning.Amount)
			ids = append(ids, earning.ID)
		}

		if err := balance.ReleasePending(tx, sum); err != nil {
			return err
		}
		undo.register(func() {
			balance.RevertRelease(e.db, sum)
		})

		if result := tx.Model(&models.AffiliateEarning{}).Where("id IN ?", ids).
			Update("status", types.EarningStatusAvailable); result.Error != nil {
			return result.Error
		}

		entry := &models.BalanceTransaction{
			MemberID:    memberID,
			Amount:      sum,
			Type:        types.TypeCredit,
			Status:      types.TransactionStatusCompleted,
			Category:    types.CategoryMaturation,
			Description: "pending earnings released",
		}
		if result := tx.Create(entry); result.Error != nil {
			return result.Error
		}

		moved = sum
		entry.WriteToInflux()

		return nil
	})

	return moved, err
}

// MatureAll sweeps every member holding matured pending earnings,
// processing them one at a time so a bad row cannot wedge the sweep.
func (e *BalanceEngine) MatureAll(force bool) (int, error) {
	var member_ids []int64

	query := e.db.Model(&models.AffiliateEarning{}).
		Distinct("member_id").
		Where("status = ?", types.EarningStatusPending)
	if !force {
		query = query.Where("available_at <= ?", time.Now())
	}
	if result := query.Find(&member_ids); result.Error != nil {
		return 0, result.Error
	}

	released := 0
	for _, member_id := range member_ids {
		moved, err := e.MaturePending(member_id, force)
		if err != nil {
			e.logger.Errorf("maturation sweep: member %d failed: %v", member_id, err)
			continue
		}
		if moved.IsPositive() {
			released++
		}
	}

	return released, nil
}
