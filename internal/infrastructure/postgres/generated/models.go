package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	CustomerNumber          int64              `json:"customer_number"`
	AccountNumber           int64              `json:"account_number"`
	CreationTime            pgtype.Timestamptz `json:"creation_time"`
	AccountType             int64              `json:"account_type"`
	Balance                 int64              `json:"balance"`
	LastInterestCalculation pgtype.Timestamptz `json:"last_interest_calculation"`
}

type AccountHistory struct {
	AccountNumber int64              `json:"account_number"`
	Ts            pgtype.Timestamptz `json:"ts"`
	Memo          pgtype.Text        `json:"memo"`
	ChangeAmount  int64              `json:"change_amount"`
}

type AggregateBalance struct {
	Shard   int64 `json:"shard"`
	Balance int64 `json:"balance"`
}

type Customer struct {
	CustomerNumber int64       `json:"customer_number"`
	LastName       pgtype.Text `json:"last_name"`
	FirstName      pgtype.Text `json:"first_name"`
}
