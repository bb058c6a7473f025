package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnex/ledger/controllers/helpers"
	"github.com/learnex/ledger/engine"
)

var BalanceEngine *engine.BalanceEngine

// SetBalanceEngine hands the singleton engine to the HTTP layer. Called
// once from routes.SetupRouter.
func SetBalanceEngine(e *engine.BalanceEngine) {
	BalanceEngine = e
}

// RenderEngineError maps engine errors onto the API error envelope.
func RenderEngineError(c *fiber.Ctx, err error) error {
	var code string

	switch err {
	case engine.ErrInvalidAmount:
		code = "balance.withdrawal.invalid_amount"
	case engine.ErrBelowMinimum:
		code = "balance.withdrawal.below_minimum"
	case engine.ErrInsufficientBalance:
		code = "balance.withdrawal.insufficient_balance"
	case engine.ErrKycNotApproved:
		code = "balance.withdrawal.kyc_not_approved"
	case engine.ErrInvalidState:
		code = "admin.withdrawal.invalid_state"
	case engine.ErrExternalTxnRequired:
		code = "admin.withdrawal.missing_external_txn_id"
	case engine.ErrRejectionReasonRequired:
		code = "admin.withdrawal.missing_rejection_reason"
	default:
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(422).JSON(helpers.Errors{
		Errors: []string{code},
	})
}
