package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/controllers/entities"
	"github.com/learnex/ledger/controllers/helpers"
	"github.com/learnex/ledger/controllers/queries"
	"github.com/learnex/ledger/models"
)

func withdrawalToEntity(withdrawal *models.Withdrawal, admin bool) *entities.WithdrawalEntity {
	entity := &entities.WithdrawalEntity{
		UID:             withdrawal.UID,
		Amount:          withdrawal.Amount,
		Method:          withdrawal.Method,
		Status:          withdrawal.Status,
		RejectionReason: withdrawal.RejectionReason,
		ExternalTxnID:   withdrawal.ExternalTxnID,
		CreatedAt:       withdrawal.CreatedAt,
		ProcessedAt:     withdrawal.ProcessedAt,
	}

	if admin {
		entity.MemberID = withdrawal.MemberID
	}

	return entity
}

func CreateWithdrawal(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errors := new(helpers.Errors)
	payload := new(helpers.CreateWithdrawalPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	withdrawal, err := BalanceEngine.RequestWithdrawal(CurrentUser, payload.Amount, payload.Method, payload.AccountDetails)
	if err != nil {
		return RenderEngineError(c, err)
	}

	config.Redis.DeleteKey("ledger:balance:" + CurrentUser.UID)

	return c.Status(201).JSON(withdrawalToEntity(withdrawal, false))
}

func GetWithdrawals(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errors := new(helpers.Errors)
	params := new(queries.WithdrawalQueries)

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
	if params.Status != "" {
		tx = tx.Where("status = ?", params.Status)
	}

	var withdrawals []*models.Withdrawal

	tx.Order("id desc").Offset(params.Page*params.Limit - params.Limit).Limit(params.Limit).Find(&withdrawals)

	withdrawal_entities := make([]*entities.WithdrawalEntity, 0)
	for _, withdrawal := range withdrawals {
		withdrawal_entities = append(withdrawal_entities, withdrawalToEntity(withdrawal, false))
	}

	c.Response().Header.Add("page", strconv.FormatInt(int64(params.Page), 10))
	c.Response().Header.Add("per-page", strconv.FormatInt(int64(len(withdrawals)), 10))

	return c.Status(200).JSON(withdrawal_entities)
}
