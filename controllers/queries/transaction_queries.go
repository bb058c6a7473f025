package queries

import "github.com/learnex/ledger/controllers/helpers"

type TransactionQueries struct {
	Limit    int    `query:"limit" validate:"uint"`
	Page     int    `query:"page" validate:"uint"`
	Type     string `query:"type"`
	Category string `query:"category"`
	Status   string `query:"status"`
}

func (t TransactionQueries) Messages() map[string]string {
	return helpers.VaildateMessage("balance.transaction")
}

func (t TransactionQueries) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}
