package entities

import (
	"time"

	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
)

type TransactionEntity struct {
	ID                   int64                     `json:"id"`
	Amount               decimal.Decimal           `json:"amount"`
	Type                 types.TransactionType     `json:"type"`
	Status               types.TransactionStatus   `json:"status"`
	Category             types.TransactionCategory `json:"category"`
	Description          string                    `json:"description"`
	RelatedTransactionID string                    `json:"related_transaction_id,omitempty"`
	Tier                 types.CommissionTier      `json:"tier,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
}
