package admin_controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/controllers"
	"github.com/learnex/ledger/controllers/entities"
	"github.com/learnex/ledger/controllers/helpers"
	"github.com/learnex/ledger/controllers/queries"
	"github.com/learnex/ledger/models"
)

func GetWithdrawals(c *fiber.Ctx) error {
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

	tx := config.DataBase.Order("id desc")
	if params.Status != "" {
		tx = tx.Where("status = ?", params.Status)
	}

	var withdrawals []*models.Withdrawal

	tx.Offset(params.Page*params.Limit - params.Limit).Limit(params.Limit).Find(&withdrawals)

	withdrawal_entities := make([]*entities.WithdrawalEntity, 0)
	for _, withdrawal := range withdrawals {
		entity := &entities.WithdrawalEntity{
			UID:             withdrawal.UID,
			MemberID:        withdrawal.MemberID,
			Amount:          withdrawal.Amount,
			Method:          withdrawal.Method,
			Status:          withdrawal.Status,
			RejectionReason: withdrawal.RejectionReason,
			ExternalTxnID:   withdrawal.ExternalTxnID,
			CreatedAt:       withdrawal.CreatedAt,
			ProcessedAt:     withdrawal.ProcessedAt,
		}
		withdrawal_entities = append(withdrawal_entities, entity)
	}

	c.Response().Header.Add("page", strconv.FormatInt(int64(params.Page), 10))
	c.Response().Header.Add("per-page", strconv.FormatInt(int64(len(withdrawals)), 10))

	return c.Status(200).JSON(withdrawal_entities)
}

func ResolveWithdrawal(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errors := new(helpers.Errors)
	payload := new(helpers.ResolveWithdrawalPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	withdrawal, err := controllers.BalanceEngine.ResolveWithdrawal(
		c.Params("uid"),
		payload.Action,
		CurrentUser.ID,
		payload.ExternalTxnID,
		payload.RejectionReason,
	)
	if err != nil {
		return controllers.RenderEngineError(c, err)
	}

	member := withdrawal.Member()
	config.Redis.DeleteKey("ledger:balance:" + member.UID)

	return c.Status(200).JSON(withdrawal.ToJSON())
}
