package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/engine"
	"github.com/learnex/ledger/mq_client"
	"github.com/learnex/ledger/workers/daemons"
)

func CreateWorker(id string, balance_engine *engine.BalanceEngine) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob(balance_engine)
	case "purchase_consumer":
		return daemons.NewPurchaseConsumer(balance_engine)
	default:
		return nil
	}
}

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

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start ledger-daemon: " + id)
		worker := CreateWorker(id, balance_engine)

		worker.Start()
	}
}
