package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/engine"
	"github.com/learnex/ledger/mq_client"
	"github.com/learnex/ledger/routes"
)

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := mq_client.Connect(); err != nil {
		fmt.Println(err.Error())
		return
	}

	balance_engine := engine.NewBalanceEngine(config.DataBase, config.App, config.Logger)

	r := routes.SetupRouter(balance_engine)

	r.Listen(":3000")
}
