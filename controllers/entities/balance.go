package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceEntity struct {
	Available          decimal.Decimal      `json:"available"`
	Pending            decimal.Decimal      `json:"pending"`
	Processing         decimal.Decimal      `json:"processing"`
	Withdrawn          decimal.Decimal      `json:"withdrawn"`
	TotalEarnings      decimal.Decimal      `json:"total_earnings"`
	LastSyncedAt       time.Time            `json:"last_synced_at"`
	RecentTransactions []*TransactionEntity `json:"recent_transactions"`
}
