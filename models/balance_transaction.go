package models

import (
	"time"

	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
)

// BalanceTransaction is an append-only ledger entry. Rows are never
// mutated after creation except the pending->completed status flip on
// withdrawal debits. The composite unique index on (member_id,
// related_transaction_id, tier) is the idempotency guard against double
// commission credit.
type BalanceTransaction struct {
	ID                   int64                     `json:"id" gorm:"primaryKey"`
	MemberID             int64                     `json:"member_id" gorm:"index;uniqueIndex:idx_ledger_entry_source"`
	Amount               decimal.Decimal           `json:"amount" validate:"ValidateAmount"`
	Type                 types.TransactionType     `json:"type" gorm:"index"`
	Status               types.TransactionStatus   `json:"status" gorm:"index"`
	Category             types.TransactionCategory `json:"category" gorm:"index"`
	Description          string                    `json:"description"`
	RelatedTransactionID *string                   `json:"related_transaction_id" gorm:"uniqueIndex:idx_ledger_entry_source"`
	Tier                 types.CommissionTier      `json:"tier" gorm:"uniqueIndex:idx_ledger_entry_source"`
	WithdrawalUID        string                    `json:"withdrawal_uid" gorm:"index"`
	PackageID            string                    `json:"package_id"`
	Rate                 decimal.Decimal           `json:"rate"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

func (t BalanceTransaction) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

func (t *BalanceTransaction) Member() Member {
	var member Member

	config.DataBase.First(&member, "id = ?", t.MemberID)

	return member
}

func (t *BalanceTransaction) WriteToInflux() {
	amount, _ := t.Amount.Float64()

	tags := map[string]string{"type": t.Type, "category": t.Category}
	fields := map[string]interface{}{
		"id":         int32(t.ID),
		"member_id":  int32(t.MemberID),
		"amount":     amount,
		"status":     t.Status,
		"created_at": t.CreatedAt,
	}

	config.InfluxDB.NewPoint("ledger_entries", tags, fields)
}
