package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType = string

var (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

type TransactionStatus = string

var (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

type TransactionCategory = string

var (
	CategoryCommission TransactionCategory = "commission"
	CategoryMaturation TransactionCategory = "maturation"
	CategoryWithdrawal TransactionCategory = "withdrawal"
	CategoryAdjustment TransactionCategory = "adjustment"
)

type EarningStatus = string

var (
	EarningStatusPending    EarningStatus = "pending"
	EarningStatusAvailable  EarningStatus = "available"
	EarningStatusProcessing EarningStatus = "processing"
	EarningStatusWithdrawn  EarningStatus = "withdrawn"
)

type WithdrawalStatus = string

var (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

type KycState = string

var (
	KycStatePending  KycState = "pending"
	KycStateApproved KycState = "approved"
	KycStateRejected KycState = "rejected"
)

type CommissionTier = int32

var (
	TierDirect   CommissionTier = 1
	TierIndirect CommissionTier = 2
)

type WithdrawalAction = string

var (
	ActionApprove WithdrawalAction = "approve"
	ActionReject  WithdrawalAction = "reject"
)

// PurchaseApproved is the payload published by the marketplace when a
// package purchase clears payment review.
type PurchaseApproved struct {
	ID          string          `json:"id"`
	BuyerUID    string          `json:"buyer_uid"`
	ReferrerUID string          `json:"referrer_uid"`
	PackageID   string          `json:"package_id"`
	Amount      decimal.Decimal `json:"amount"`
	ApprovedAt  time.Time       `json:"approved_at"`
}
