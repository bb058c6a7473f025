package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/learnex/ledger/models"
	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequestWithdrawal creates a pending withdrawal and locks its amount:
// available shrinks, processing grows, and a pending debit lands in the
// audit ledger. Any failure unwinds the whole request; a withdrawal row
// must never exist without its bucket reservation.
func (e *BalanceEngine) RequestWithdrawal(member *models.Member, amount decimal.Decimal, method, accountDetails string) (*models.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if amount.LessThan(e.app.MinimumWithdrawal) {
		return nil, ErrBelowMinimum
	}
	if !e.kycCheck(member) {
		return nil, ErrKycNotApproved
	}

	var withdrawal *models.Withdrawal

	err := e.runner.Run(func(tx *gorm.DB, undo *compensator) error {
		balance, err := e.lockBalance(tx, member.ID)
		if err != nil {
			return err
		}

		if balance.Available.LessThan(amount) {
			return ErrInsufficientBalance
		}

		withdrawal = &models.Withdrawal{
			UID:            uuid.New().String(),
			MemberID:       member.ID,
			Amount:         amount,
			Method:         method,
			AccountDetails: accountDetails,
			Status:         types.WithdrawalStatusPending,
		}
		if result := tx.Create(withdrawal); result.Error != nil {
			return result.Error
		}
		undo.register(func() {
			e.db.Delete(withdrawal)
		})

		if err := balance.LockForWithdrawal(tx, amount); err != nil {
			return err
		}
		undo.register(func() {
			balance.RevertLock(e.db, amount)
		})

		entry := &models.BalanceTransaction{
			MemberID:             member.ID,
			Amount:               amount,
			Type:                 types.TypeDebit,
			Status:               types.TransactionStatusPending,
			Category:             types.CategoryWithdrawal,
			Description:          "withdrawal requested via " + method,
			RelatedTransactionID: &withdrawal.UID,
			WithdrawalUID:        withdrawal.UID,
		}
		if result := tx.Create(entry); result.Error != nil {
			return result.Error
		}

		e.markEarnings(tx, member.ID, types.EarningStatusAvailable, types.EarningStatusProcessing, amount)

		return nil
	})

	if err != nil {
		return nil, err
	}

	withdrawal.TriggerEvent()
	withdrawal.WriteToInflux()

	return withdrawal, nil
}

// ResolveWithdrawal applies the admin decision on a pending withdrawal.
// Approval moves the locked amount to withdrawn against an external payout
// reference; rejection returns it to available. Both states are terminal.
func (e *BalanceEngine) ResolveWithdrawal(withdrawalUID string, action types.WithdrawalAction, adminID int64, externalTxnID, rejectionReason string) (*models.Withdrawal, error) {
	switch action {
	case types.ActionApprove:
		if externalTxnID == "" {
			return nil, ErrExternalTxnRequired
		}
	case types.ActionReject:
		if rejectionReason == "" {
			return nil, ErrRejectionReasonRequired
		}
	default:
		return nil, ErrInvalidState
	}

	withdrawal := &models.Withdrawal{}

	err := e.runner.Run(func(tx *gorm.DB, undo *compensator) error {
		result := tx.Clauses(clause.Locking{
			Strength: "UPDATE",
			Table:    clause.Table{Name: "withdrawals"},
		}).Where("uid = ?", withdrawalUID).First(withdrawal)
		if result.Error != nil {
			return result.Error
		}

		if !withdrawal.CanResolve() {
			return ErrInvalidState
		}

		balance, err := e.lockBalance(tx, withdrawal.MemberID)
		if err != nil {
			return err
		}

		now := time.Now()
		withdrawal.ProcessedBy = adminID
		withdrawal.ProcessedAt = &now

		if action == types.ActionApprove {
			withdrawal.Status = types.WithdrawalStatusCompleted
			withdrawal.ExternalTxnID = externalTxnID

			if err := balance.ConfirmWithdrawal(tx, withdrawal.Amount); err != nil {
				return err
			}
			undo.register(func() {
				balance.RevertConfirm(e.db, withdrawal.Amount)
			})

			e.markEarnings(tx, withdrawal.MemberID, types.EarningStatusProcessing, types.EarningStatusWithdrawn, withdrawal.Amount)
		} else {
			withdrawal.Status = types.WithdrawalStatusRejected
			withdrawal.RejectionReason = rejectionReason

			if err := balance.ReleaseLocked(tx, withdrawal.Amount); err != nil {
				return err
			}
			undo.register(func() {
				balance.RevertUnlock(e.db, withdrawal.Amount)
			})

			e.markEarnings(tx, withdrawal.MemberID, types.EarningStatusProcessing, types.EarningStatusAvailable, withdrawal.Amount)
		}

		if result := tx.Save(withdrawal); result.Error != nil {
			return result.Error
		}
		undo.register(func() {
			withdrawal.Status = types.WithdrawalStatusPending
			withdrawal.ExternalTxnID = ""
			withdrawal.RejectionReason = ""
			withdrawal.ProcessedBy = 0
			withdrawal.ProcessedAt = nil
			e.db.Save(withdrawal)
		})

		// The pending debit settles either way; a rejection additionally
		// appends the offsetting credit so the ledger nets to zero.
		if result := tx.Model(&models.BalanceTransaction{}).
			Where("withdrawal_uid = ? AND status = ?", withdrawal.UID, types.TransactionStatusPending).
			Update("status", types.TransactionStatusCompleted); result.Error != nil {
			return result.Error
		}

		if action == types.ActionReject {
			entry := &models.BalanceTransaction{
				MemberID:      withdrawal.MemberID,
				Amount:        withdrawal.Amount,
				Type:          types.TypeCredit,
				Status:        types.TransactionStatusCompleted,
				Category:      types.CategoryWithdrawal,
				Description:   "withdrawal rejected: " + rejectionReason,
				WithdrawalUID: withdrawal.UID,
			}
			if result := tx.Create(entry); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	withdrawal.TriggerEvent()
	withdrawal.WriteToInflux()

	return withdrawal, nil
}

// markEarnings flips earning rows between bucket statuses, oldest first,
// until their amounts cover the moved sum. A best-effort mirror for
// reporting: reconciliation never reads the statuses written here, it
// derives processing and withdrawn from withdrawal amounts and trusts
// only the pending status, which maturation owns.
func (e *BalanceEngine) markEarnings(tx *gorm.DB, memberID int64, from, to types.EarningStatus, amount decimal.Decimal) {
	var earnings []*models.AffiliateEarning

	tx.Where("member_id = ? AND status = ?", memberID, from).Order("id asc").Find(&earnings)

	covered := decimal.Zero
	for _, earning := range earnings {
		if covered.GreaterThanOrEqual(amount) {
			break
		}

		earning.Status = to
		tx.Save(earning)
		covered = covered.Add(earning.Amount)
	}
}
