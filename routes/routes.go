package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnex/ledger/controllers"
	"github.com/learnex/ledger/controllers/admin_controllers"
	"github.com/learnex/ledger/engine"
	"github.com/learnex/ledger/routes/middlewares"
)

func SetupRouter(balance_engine *engine.BalanceEngine) *fiber.App {
	app := fiber.New()

	controllers.SetBalanceEngine(balance_engine)

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/leaderboard", controllers.GetLeaderboard)

	api := app.Group("/api/v2", middlewares.Authenticate)

	api.Get("/balance", controllers.GetBalance)
	api.Get("/balance/transactions", controllers.GetTransactions)
	api.Get("/balance/earnings", controllers.GetEarnings)

	api.Post("/withdrawals", controllers.CreateWithdrawal)
	api.Get("/withdrawals", controllers.GetWithdrawals)

	admin := api.Group("/admin", middlewares.AdminVaildator)

	admin.Get("/withdrawals", admin_controllers.GetWithdrawals)
	admin.Post("/withdrawals/:uid/resolve", admin_controllers.ResolveWithdrawal)
	admin.Post("/balances/sync", admin_controllers.SyncBalances)
	admin.Post("/balances/mature", admin_controllers.MatureBalances)

	return app
}
