package cron

import (
	"github.com/jasonlvhit/gocron"
	"github.com/learnex/ledger/config"
	"github.com/learnex/ledger/engine"
)

// ReleasePendingJob runs the daily maturation sweep: earnings past their
// holding window move from pending to available.
type ReleasePendingJob struct {
	Engine *engine.BalanceEngine
}

func (j *ReleasePendingJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:00:00").Do(j.releaseMatured)
	<-s.Start()
}

func (j *ReleasePendingJob) releaseMatured() {
	released, err := j.Engine.MatureAll(false)
	if err != nil {
		config.Logger.Errorf("maturation sweep failed: %v", err)
		return
	}

	config.Logger.Infof("maturation sweep released earnings for %d members", released)
}
