package queries

import "github.com/learnex/ledger/controllers/helpers"

type WithdrawalQueries struct {
	Limit  int    `query:"limit" validate:"uint"`
	Page   int    `query:"page" validate:"uint"`
	Status string `query:"status"`
}

func (t WithdrawalQueries) Messages() map[string]string {
	return helpers.VaildateMessage("balance.withdrawal")
}

func (t WithdrawalQueries) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}
