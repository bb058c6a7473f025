package models

import (
	"encoding/json"
	"time"

	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/mq_client"
	"github.com/learnex/ledger/types"
	"github.com/shopspring/decimal"
)

// Withdrawal lifecycle: pending -> completed | rejected. Both outcomes
// are terminal; creation always starts at pending with the amount locked
// in the member's processing bucket.
type Withdrawal struct {
	ID              int64                  `json:"id" gorm:"primaryKey"`
	UID             string                 `json:"uid" gorm:"uniqueIndex"`
	MemberID        int64                  `json:"member_id" gorm:"index"`
	Amount          decimal.Decimal        `json:"amount" validate:"ValidateAmount"`
	Method          string                 `json:"method"`
	AccountDetails  string                 `json:"account_details"`
	Status          types.WithdrawalStatus `json:"status" gorm:"index;default:pending"`
	RejectionReason string                 `json:"rejection_reason"`
	ExternalTxnID   string                 `json:"external_txn_id"`
	ProcessedBy     int64                  `json:"processed_by"`
	ProcessedAt     *time.Time             `json:"processed_at"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func (w Withdrawal) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

func (w *Withdrawal) Member() Member {
	var member Member

	config.DataBase.First(&member, "id = ?", w.MemberID)

	return member
}

// CanResolve gates the state machine: only pending requests accept an
// admin decision.
func (w *Withdrawal) CanResolve() bool {
	return w.Status == types.WithdrawalStatusPending
}

func (w *Withdrawal) Terminal() bool {
	return w.Status == types.WithdrawalStatusCompleted || w.Status == types.WithdrawalStatusRejected
}

func (w *Withdrawal) TriggerEvent() {
	member := w.Member()
	payload_message, _ := json.Marshal(w.ToJSON())

	mq_client.EnqueueEvent("private", member.UID, "withdrawal", payload_message)

	// Settled withdrawals also feed the durable payout queue.
	if w.Terminal() {
		mq_client.Enqueue("withdrawal_events", payload_message)
	}
}

func (w *Withdrawal) WriteToInflux() {
	amount, _ := w.Amount.Float64()

	tags := map[string]string{"status": w.Status, "method": w.Method}
	fields := map[string]interface{}{
		"id":         int32(w.ID),
		"member_id":  int32(w.MemberID),
		"amount":     amount,
		"created_at": w.CreatedAt,
	}

	config.InfluxDB.NewPoint("withdrawals", tags, fields)
}

type WithdrawalJSON struct {
	UID             string                 `json:"uid"`
	Amount          decimal.Decimal        `json:"amount"`
	Method          string                 `json:"method"`
	Status          types.WithdrawalStatus `json:"status"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	ExternalTxnID   string                 `json:"external_txn_id,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	ProcessedAt     *time.Time             `json:"processed_at,omitempty"`
}

func (w *Withdrawal) ToJSON() WithdrawalJSON {
	return WithdrawalJSON{
		UID:             w.UID,
		Amount:          w.Amount,
		Method:          w.Method,
		Status:          w.Status,
		RejectionReason: w.RejectionReason,
		ExternalTxnID:   w.ExternalTxnID,
		CreatedAt:       w.CreatedAt,
		ProcessedAt:     w.ProcessedAt,
	}
}
