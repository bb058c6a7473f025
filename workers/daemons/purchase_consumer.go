package daemons

import (
	"time"

	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/engine"
	"github.com/learnex/ledger/workers"
	"github.com/nats-io/nats.go"
)

// PurchaseConsumer feeds approved purchases from the marketplace into the
// balance engine. Crediting is idempotent on (member, purchase, tier), so
// redelivered messages are harmless.
type PurchaseConsumer struct {
	Running bool
	Worker  *workers.PurchaseProcessorWorker
}

func NewPurchaseConsumer(balance_engine *engine.BalanceEngine) *PurchaseConsumer {
	return &PurchaseConsumer{
		Running: true,
		Worker:  workers.NewPurchaseProcessorWorker(balance_engine),
	}
}

func (d *PurchaseConsumer) Stop() {
	d.Running = false
}

func (d *PurchaseConsumer) Start() {
	_, err := config.Nats.QueueSubscribe("purchases.approved", "ledger", func(m *nats.Msg) {
		d.Worker.Process(m.Data)
	})
	if err != nil {
		config.Logger.Fatalf("failed to subscribe purchases.approved: %v", err)
	}

	for {
		if !d.Running {
			break
		}

		time.Sleep(1 * time.Second)
	}
}
