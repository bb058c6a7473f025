package models

import (
	"time"

	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
)

// AffiliateEarning mirrors a single commission grant through the bucket
// it currently occupies. The leaderboard and the reconciliation sweep
// both aggregate over these rows.
type AffiliateEarning struct {
	ID                  int64                `json:"id" gorm:"primaryKey"`
	MemberID            int64                `json:"member_id" gorm:"index"`
	SourceTransactionID string               `json:"source_transaction_id" gorm:"index"`
	PackageID           string               `json:"package_id"`
	Amount              decimal.Decimal      `json:"amount" validate:"ValidateAmount"`
	Tier                types.CommissionTier `json:"tier"`
	Status              types.EarningStatus  `json:"status" gorm:"index;default:pending"`
	AvailableAt         time.Time            `json:"available_at"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func (e AffiliateEarning) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

// Matured reports whether the holding window has elapsed.
func (e *AffiliateEarning) Matured(now time.Time) bool {
	return !e.AvailableAt.After(now)
}
