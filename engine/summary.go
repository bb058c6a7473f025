package engine

import (
	"github.com/learnex/ledger/models"
)

// BalanceSummary is the member-facing view of the ledger.
type BalanceSummary struct {
	Balance            models.BalanceJSON           `json:"balance"`
	RecentTransactions []*models.BalanceTransaction `json:"recent_transactions"`
}

// Summary returns the bucket view plus the most recent ledger entries.
func (e *BalanceEngine) Summary(memberID int64) (*BalanceSummary, error) {
	balance := &models.Balance{}

	if result := e.db.Where("member_id = ?", memberID).
		FirstOrCreate(balance, models.Balance{MemberID: memberID}); result.Error != nil {
		return nil, result.Error
	}

	var transactions []*models.BalanceTransaction

	if result := e.db.Where("member_id = ?", memberID).
		Order("id desc").
		Limit(e.app.RecentTransactions).
		Find(&transactions); result.Error != nil {
		return nil, result.Error
	}

	return &BalanceSummary{
		Balance:            balance.ToJSON(),
		RecentTransactions: transactions,
	}, nil
}
