package engine

import (
	"testing"

	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/models"
	"github.com/learnex/ledger/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// The request and resolve gates run before any storage access, so a nil
// database proves rejection happens with no write.
func newTestEngine() *BalanceEngine {
	app := &config.AppConfig{
		MinimumWithdrawal:  d("100"),
		RecentTransactions: 10,
	}

	e := NewBalanceEngine(nil, app, logrus.New())
	e.kycCheck = func(m *models.Member) bool { return true }

	return e
}

func TestRequestWithdrawalRejectsBadAmounts(t *testing.T) {
	e := newTestEngine()
	member := &models.Member{ID: 1, UID: "UID001"}

	for _, amount := range []string{"0", "-50"} {
		withdrawal, err := e.RequestWithdrawal(member, d(amount), "bank_transfer", "IBAN123")

		assert.Nil(t, withdrawal)
		assert.Equal(t, ErrInvalidAmount, err)
	}

	withdrawal, err := e.RequestWithdrawal(member, d("99.99"), "bank_transfer", "IBAN123")

	assert.Nil(t, withdrawal)
	assert.Equal(t, ErrBelowMinimum, err)
}

func TestRequestWithdrawalRequiresApprovedKyc(t *testing.T) {
	e := newTestEngine()
	e.kycCheck = func(m *models.Member) bool { return false }

	member := &models.Member{ID: 1, UID: "UID001"}

	withdrawal, err := e.RequestWithdrawal(member, d("150"), "bank_transfer", "IBAN123")

	assert.Nil(t, withdrawal)
	assert.Equal(t, ErrKycNotApproved, err)
}

func TestResolveWithdrawalArgumentGates(t *testing.T) {
	e := newTestEngine()

	withdrawal, err := e.ResolveWithdrawal("abc", types.ActionApprove, 1, "", "")
	assert.Nil(t, withdrawal)
	assert.Equal(t, ErrExternalTxnRequired, err)

	withdrawal, err = e.ResolveWithdrawal("abc", types.ActionReject, 1, "", "")
	assert.Nil(t, withdrawal)
	assert.Equal(t, ErrRejectionReasonRequired, err)

	withdrawal, err = e.ResolveWithdrawal("abc", "escalate", 1, "TXN1", "reason")
	assert.Nil(t, withdrawal)
	assert.Equal(t, ErrInvalidState, err)
}
