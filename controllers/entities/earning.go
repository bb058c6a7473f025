package entities

import (
	"time"

	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
)

type EarningEntity struct {
	ID                  int64                `json:"id"`
	SourceTransactionID string               `json:"source_transaction_id"`
	PackageID           string               `json:"package_id"`
	Amount              decimal.Decimal      `json:"amount"`
	Tier                types.CommissionTier `json:"tier"`
	Status              types.EarningStatus  `json:"status"`
	AvailableAt         time.Time            `json:"available_at"`
	CreatedAt           time.Time            `json:"created_at"`
}

type LeaderboardEntry struct {
	MemberUID string          `json:"member_uid"`
	Earned    decimal.Decimal `json:"earned"`
	Referrals int64           `json:"referrals"`
}
