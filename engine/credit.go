package engine

import (
	"strings"
	"time"

	"github.com/learnex/ledger/commission"
	"github.com/learnex/ledger/models"
	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommissionMeta carries the provenance of a commission credit into the
// audit trail.
type CommissionMeta struct {
	PackageID string
	Rate      decimal.Decimal
}

// CreditCommission credits a commission into the member's pending bucket,
// at most once per (member, source transaction, tier). The audit entry is
// inserted first: its unique index is the idempotency guard, and a
// duplicate-key failure aborts the increment before any bucket changes.
func (e *BalanceEngine) CreditCommission(member *models.Member, amount decimal.Decimal, tier types.CommissionTier, sourceTxnID string, meta CommissionMeta) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	var existing int64
	e.db.Model(&models.BalanceTransaction{}).
		Where("member_id = ? AND related_transaction_id = ? AND tier = ?", member.ID, sourceTxnID, tier).
		Count(&existing)
	if existing > 0 {
		return ErrDuplicateOperation
	}

	now := time.Now()

	err := e.runner.Run(func(tx *gorm.DB, undo *compensator) error {
		entry := &models.BalanceTransaction{
			MemberID:             member.ID,
			Amount:               amount,
			Type:                 types.TypeCredit,
			Status:               types.TransactionStatusCompleted,
			Category:             types.CategoryCommission,
			Description:          "tier " + formatTier(tier) + " commission",
			RelatedTransactionID: &sourceTxnID,
			Tier:                 tier,
			PackageID:            meta.PackageID,
			Rate:                 meta.Rate,
		}

		if result := tx.Create(entry); result.Error != nil {
			if isDuplicateKey(result.Error) {
				return ErrDuplicateOperation
			}
			return result.Error
		}
		undo.register(func() {
			e.db.Delete(entry)
		})

		balance, err := e.lockBalance(tx, member.ID)
		if err != nil {
			return err
		}

		if err := balance.PlusPending(tx, amount); err != nil {
			return err
		}
		undo.register(func() {
			balance.RevertCredit(e.db, amount)
		})

		earning := &models.AffiliateEarning{
			MemberID:            member.ID,
			SourceTransactionID: sourceTxnID,
			PackageID:           meta.PackageID,
			Amount:              amount,
			Tier:                tier,
			Status:              types.EarningStatusPending,
			AvailableAt:         now.Add(e.app.HoldWindow()),
		}

		if result := tx.Create(earning); result.Error != nil {
			return result.Error
		}

		entry.WriteToInflux()

		return nil
	})

	return err
}

// ProcessPurchase resolves the referral chain for an approved purchase and
// credits both tiers. A failed or missing credit is logged and skipped;
// purchase approval and affiliate payment are independently recoverable
// and the reconciliation sweep retries the credit later.
func (e *BalanceEngine) ProcessPurchase(payload types.PurchaseApproved) {
	if payload.ReferrerUID == "" {
		return
	}

	referrer := models.FindMemberByUID(payload.ReferrerUID)
	if referrer == nil {
		e.logger.Warnf("purchase %s: %v (uid: %s)", payload.ID, ErrReferrerMissing, payload.ReferrerUID)
		return
	}

	result := commission.Compute(payload.Amount, e.app.Tier1Rate, e.app.Tier2Rate)

	if result.Tier1.IsPositive() {
		err := e.CreditCommission(referrer, result.Tier1, types.TierDirect, payload.ID, CommissionMeta{
			PackageID: payload.PackageID,
			Rate:      e.app.Tier1Rate,
		})
		e.logCreditOutcome(payload.ID, referrer.UID, types.TierDirect, err)
	}

	if !referrer.HavingReferrer() || !result.Tier2.IsPositive() {
		return
	}

	parent := referrer.GetRefMember()
	if parent == nil {
		e.logger.Warnf("purchase %s: %v (uid: %s)", payload.ID, ErrReferrerMissing, referrer.ReferralUID.String)
		return
	}

	err := e.CreditCommission(parent, result.Tier2, types.TierIndirect, payload.ID, CommissionMeta{
		PackageID: payload.PackageID,
		Rate:      e.app.Tier2Rate,
	})
	e.logCreditOutcome(payload.ID, parent.UID, types.TierIndirect, err)
}

func (e *BalanceEngine) logCreditOutcome(purchaseID, uid string, tier types.CommissionTier, err error) {
	switch err {
	case nil:
	case ErrDuplicateOperation:
		e.logger.Infof("purchase %s: tier %d commission for %s already credited", purchaseID, tier, uid)
	default:
		e.logger.Errorf("purchase %s: tier %d commission for %s failed: %v", purchaseID, tier, uid, err)
	}
}

func formatTier(tier types.CommissionTier) string {
	if tier == types.TierIndirect {
		return "2"
	}
	return "1"
}

func isDuplicateKey(err error) bool {
	return strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "23505")
}
