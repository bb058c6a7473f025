package engine

import (
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceEngine is the single authority over Balance documents and their
// audit trail. Constructed once at process start and handed to the HTTP
// controllers, the purchase worker and the cron jobs.
type BalanceEngine struct {
	db       *gorm.DB
	app      *config.AppConfig
	logger   *logrus.Logger
	runner   atomicRunner
	kycCheck func(*models.Member) bool
}

func NewBalanceEngine(db *gorm.DB, app *config.AppConfig, logger *logrus.Logger) *BalanceEngine {
	e := &BalanceEngine{
		db:     db,
		app:    app,
		logger: logger,
		kycCheck: func(m *models.Member) bool {
			return m.KycApproved()
		},
	}

	if app.AtomicUpdates {
		e.runner = &txRunner{db: db}
	} else {
		e.runner = &sequentialRunner{db: db}
	}

	return e
}

// lockBalance loads (or creates) the member's balance row under a
// FOR UPDATE lock so same-member operations linearize.
func (e *BalanceEngine) lockBalance(tx *gorm.DB, memberID int64) (*models.Balance, error) {
	balance := &models.Balance{}

	result := tx.Clauses(clause.Locking{
		Strength: "UPDATE",
		Table:    clause.Table{Name: "balances"},
	}).Where("member_id = ?", memberID).FirstOrCreate(balance, models.Balance{MemberID: memberID})

	if result.Error != nil {
		return nil, result.Error
	}

	return balance, nil
}
