package admin_controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/controllers"
	"github.com/learnex/ledger/controllers/helpers"
	"github.com/learnex/ledger/models"
)

// SyncBalances rebuilds one balance (uid) or sweeps all of them from raw
// ledger history. Cron triggers the all variant nightly; support staff
// use the single-member variant after an incident.
func SyncBalances(c *fiber.Ctx) error {
	payload := new(helpers.SyncBalancesPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if payload.All {
		synced, err := controllers.BalanceEngine.ReconcileAll()
		if err != nil {
			return controllers.RenderEngineError(c, err)
		}

		return c.Status(200).JSON(fiber.Map{"synced": synced})
	}

	member := models.FindMemberByUID(payload.UID)
	if member == nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.balance.member_not_found"},
		})
	}

	snapshot, err := controllers.BalanceEngine.Reconcile(member.ID)
	if err != nil {
		return controllers.RenderEngineError(c, err)
	}

	config.Redis.DeleteKey("ledger:balance:" + member.UID)

	return c.Status(200).JSON(fiber.Map{
		"synced": 1,
		"result": fiber.Map{
			"available":      snapshot.Available,
			"pending":        snapshot.Pending,
			"processing":     snapshot.Processing,
			"withdrawn":      snapshot.Withdrawn,
			"total_earnings": snapshot.TotalEarnings,
		},
	})
}

// MatureBalances releases pending earnings. Without force only matured
// earnings move; force is the administrative move-all override.
func MatureBalances(c *fiber.Ctx) error {
	payload := new(helpers.MatureBalancesPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if payload.All {
		released, err := controllers.BalanceEngine.MatureAll(payload.Force)
		if err != nil {
			return controllers.RenderEngineError(c, err)
		}

		return c.Status(200).JSON(fiber.Map{"released": released})
	}

	member := models.FindMemberByUID(payload.UID)
	if member == nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.balance.member_not_found"},
		})
	}

	moved, err := controllers.BalanceEngine.MaturePending(member.ID, payload.Force)
	if err != nil {
		return controllers.RenderEngineError(c, err)
	}

	config.Redis.DeleteKey("ledger:balance:" + member.UID)

	return c.Status(200).JSON(fiber.Map{"released": moved})
}
