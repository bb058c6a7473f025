package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/controllers/entities"
	"github.com/learnex/ledger/controllers/helpers"
	"github.com/learnex/ledger/controllers/queries"
	"github.com/learnex/ledger/models"
)

func transactionToEntity(transaction *models.BalanceTransaction) *entities.TransactionEntity {
	entity := &entities.TransactionEntity{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Type:        transaction.Type,
		Status:      transaction.Status,
		Category:    transaction.Category,
		Description: transaction.Description,
		Tier:        transaction.Tier,
		CreatedAt:   transaction.CreatedAt,
	}

	if transaction.RelatedTransactionID != nil {
		entity.RelatedTransactionID = *transaction.RelatedTransactionID
	}

	return entity
}

func GetBalance(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	cache_key := "ledger:balance:" + CurrentUser.UID
	cached := &entities.BalanceEntity{}
	if err := config.Redis.GetKey(cache_key, cached); err == nil {
		return c.Status(200).JSON(cached)
	}

	summary, err := BalanceEngine.Summary(CurrentUser.ID)
	if err != nil {
		return RenderEngineError(c, err)
	}

	balance := CurrentUser.GetBalance()

	entity := &entities.BalanceEntity{
		Available:          summary.Balance.Available,
		Pending:            summary.Balance.Pending,
		Processing:         summary.Balance.Processing,
		Withdrawn:          summary.Balance.Withdrawn,
		TotalEarnings:      summary.Balance.TotalEarnings,
		LastSyncedAt:       balance.LastSyncedAt,
		RecentTransactions: make([]*entities.TransactionEntity, 0),
	}

	for _, transaction := range summary.RecentTransactions {
		entity.RecentTransactions = append(entity.RecentTransactions, transactionToEntity(transaction))
	}

	config.Redis.SetKey(cache_key, entity, 30*time.Second)

	return c.Status(200).JSON(entity)
}

func GetTransactions(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errors := new(helpers.Errors)
	params := new(queries.TransactionQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}

	if params.Page == 0 {
		params.Page = 1
	}

	tx := config.DataBase.Where("member_id = ?", CurrentUser.ID)
	if params.Type != "" {
		tx = tx.Where("type = ?", params.Type)
	}
	if params.Category != "" {
		tx = tx.Where("category = ?", params.Category)
	}
	if params.Status != "" {
		tx = tx.Where("status = ?", params.Status)
	}

	var transactions []*models.BalanceTransaction

	tx.Order("id desc").Offset(params.Page*params.Limit - params.Limit).Limit(params.Limit).Find(&transactions)

	transaction_entities := make([]*entities.TransactionEntity, 0)
	for _, transaction := range transactions {
		transaction_entities = append(transaction_entities, transactionToEntity(transaction))
	}

	c.Response().Header.Add("page", strconv.FormatInt(int64(params.Page), 10))
	c.Response().Header.Add("per-page", strconv.FormatInt(int64(len(transactions)), 10))

	return c.Status(200).JSON(transaction_entities)
}
