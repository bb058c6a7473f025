package workers

import (
	"encoding/json"

	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/engine"
	"github.com/learnex/ledger/types"
)

type PurchaseProcessorWorker struct {
	Engine *engine.BalanceEngine
}

func NewPurchaseProcessorWorker(balance_engine *engine.BalanceEngine) *PurchaseProcessorWorker {
	return &PurchaseProcessorWorker{Engine: balance_engine}
}

func (w PurchaseProcessorWorker) Process(payload []byte) {
	var purchase *types.PurchaseApproved
	if err := json.Unmarshal(payload, &purchase); err != nil {
		config.Logger.Errorf("purchase processor: invalid payload: %v", err)
		return
	}

	w.Engine.ProcessPurchase(*purchase)
}
