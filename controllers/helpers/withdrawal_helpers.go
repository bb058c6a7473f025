package helpers

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
)

type CreateWithdrawalPayload struct {
	Amount         decimal.Decimal `json:"amount" form:"amount" validate:"VaildateAmount"`
	Method         string          `json:"method" form:"method" validate:"required"`
	AccountDetails string          `json:"account_details" form:"account_details" validate:"required"`
}

func (p CreateWithdrawalPayload) Messages() map[string]string {
	invalid_message := "balance.withdrawal.invalid_{field}"

	return validate.MS{
		"required":       "balance.withdrawal.missing_{field}",
		"VaildateAmount": invalid_message,
	}
}

func (p CreateWithdrawalPayload) VaildateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}
