package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/controllers/entities"
)

func GetTimestamp(c *fiber.Ctx) error {
	return c.Status(200).JSON(time.Now().Unix())
}

// GetLeaderboard aggregates lifetime earnings per affiliate. Cached for a
// minute; the board is eventually consistent by nature.
func GetLeaderboard(c *fiber.Ctx) error {
	cache_key := "ledger:leaderboard"

	cached := make([]*entities.LeaderboardEntry, 0)
	if err := config.Redis.GetKey(cache_key, &cached); err == nil && len(cached) > 0 {
		return c.Status(200).JSON(cached)
	}

	leaderboard := make([]*entities.LeaderboardEntry, 0)

	config.DataBase.
		Table("affiliate_earnings").
		Select("members.uid as member_uid", "SUM(affiliate_earnings.amount) as earned", "COUNT(DISTINCT affiliate_earnings.source_transaction_id) as referrals").
		Joins("JOIN members ON members.id = affiliate_earnings.member_id").
		Group("members.uid").
		Order("earned desc").
		Limit(25).
		Find(&leaderboard)

	config.Redis.SetKey(cache_key, leaderboard, time.Minute)

	return c.Status(200).JSON(leaderboard)
}
