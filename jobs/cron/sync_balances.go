package cron

import (
	"github.com/jasonlvhit/gocron"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/engine"
)

// SyncBalancesJob rebuilds every balance from raw ledger history each
// night, repairing any drift between the buckets and the earning and
// withdrawal records.
type SyncBalancesJob struct {
	Engine *engine.BalanceEngine
}

func (j *SyncBalancesJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("02:00:00").Do(j.syncAll)
	<-s.Start()
}

func (j *SyncBalancesJob) syncAll() {
	synced, err := j.Engine.ReconcileAll()
	if err != nil {
		config.Logger.Errorf("reconciliation sweep failed: %v", err)
		return
	}

	config.Logger.Infof("reconciliation sweep synced %d balances", synced)
}
