package engine

import "errors"

var (
	// ErrInvalidAmount rejects non-positive amounts before any write.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrBelowMinimum rejects withdrawal requests under the configured floor.
	ErrBelowMinimum = errors.New("amount is below the minimum withdrawal")

	// ErrInsufficientBalance rejects withdrawals exceeding available funds.
	ErrInsufficientBalance = errors.New("insufficient available balance")

	// ErrKycNotApproved gates withdrawals on an approved KYC record.
	ErrKycNotApproved = errors.New("kyc is not approved")

	// ErrDuplicateOperation signals the idempotency guard fired; callers
	// treat it as a successful no-op so retries stay safe.
	ErrDuplicateOperation = errors.New("operation already processed")

	// ErrInvalidState rejects resolving a withdrawal outside the pending state.
	ErrInvalidState = errors.New("withdrawal is not pending")

	// ErrReferrerMissing marks a commission whose referrer no longer
	// exists; logged and skipped, never propagated to the purchase flow.
	ErrReferrerMissing = errors.New("referrer not found")

	// ErrExternalTxnRequired rejects approvals without a payout reference.
	ErrExternalTxnRequired = errors.New("external transaction reference is required")

	// ErrRejectionReasonRequired rejects rejections without a reason.
	ErrRejectionReasonRequired = errors.New("rejection reason is required")

	// ErrInconsistentHistory surfaces a ledger history that would force a
	// bucket negative. Buckets never go negative silently.
	ErrInconsistentHistory = errors.New("ledger history is inconsistent")
)
