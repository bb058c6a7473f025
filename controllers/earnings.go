package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/controllers/entities"
	"github.com/learnex/ledger/controllers/helpers"
	"github.com/learnex/ledger/controllers/queries"
	"github.com/learnex/ledger/models"
)

func GetEarnings(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	var errors = new(helpers.Errors)
	params := new(queries.EarningQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	if params.TimeTo == 0 {
		params.TimeTo = time.Now().Unix()
	}

	var earnings []*models.AffiliateEarning

	config.DataBase.
		Where(
			"member_id = ? AND created_at >= ? AND created_at <= ?",
			CurrentUser.ID,
			time.Unix(params.TimeFrom, 0),
			time.Unix(params.TimeTo, 0),
		).
		Find(&earnings)

	earning_entities := make([]*entities.EarningEntity, 0)
	for _, earning := range earnings {
		earning_entities = append(earning_entities, &entities.EarningEntity{
			ID:                  earning.ID,
			SourceTransactionID: earning.SourceTransactionID,
			PackageID:           earning.PackageID,
			Amount:              earning.Amount,
			Tier:                earning.Tier,
			Status:              earning.Status,
			AvailableAt:         earning.AvailableAt,
			CreatedAt:           earning.CreatedAt,
		})
	}

	return c.Status(200).JSON(earning_entities)
}
