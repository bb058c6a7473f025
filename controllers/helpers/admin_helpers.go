package helpers

import (
	"github.com/gookit/validate"
	"github.com/learnex/ledger/types"
)

type ResolveWithdrawalPayload struct {
	Action          types.WithdrawalAction `json:"action" form:"action" validate:"required|VaildateAction"`
	ExternalTxnID   string                 `json:"external_txn_id" form:"external_txn_id"`
	RejectionReason string                 `json:"rejection_reason" form:"rejection_reason"`
}

func (p ResolveWithdrawalPayload) Messages() map[string]string {
	return validate.MS{
		"required":       "admin.withdrawal.missing_{field}",
		"VaildateAction": "admin.withdrawal.invalid_action",
	}
}

func (p ResolveWithdrawalPayload) VaildateAction(Action types.WithdrawalAction) bool {
	return Action == types.ActionApprove || Action == types.ActionReject
}

type SyncBalancesPayload struct {
	UID string `json:"uid" form:"uid"`
	All bool   `json:"all" form:"all"`
}

type MatureBalancesPayload struct {
	UID   string `json:"uid" form:"uid"`
	All   bool   `json:"all" form:"all"`
	Force bool   `json:"force" form:"force"`
}
