package entities

import (
	"time"

	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
)

type WithdrawalEntity struct {
	UID             string                 `json:"uid"`
	MemberID        int64                  `json:"member_id,omitempty"`
	Amount          decimal.Decimal        `json:"amount"`
	Method          string                 `json:"method"`
	Status          types.WithdrawalStatus `json:"status"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	ExternalTxnID   string                 `json:"external_txn_id,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	ProcessedAt     *time.Time             `json:"processed_at,omitempty"`
}
