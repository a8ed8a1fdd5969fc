package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const resetLedger = `-- name: ResetLedger :exec
TRUNCATE account_history, accounts, customers, aggregate_balance
`

func (q *Queries) ResetLedger(ctx context.Context) error {
	_, err := q.db.Exec(ctx, resetLedger)
	return err
}

type InsertCustomersParams struct {
	CustomerNumber int64       `json:"customer_number"`
	LastName       pgtype.Text `json:"last_name"`
	FirstName      pgtype.Text `json:"first_name"`
}

type InsertAccountsParams struct {
	CustomerNumber int64              `json:"customer_number"`
	AccountNumber  int64              `json:"account_number"`
	CreationTime   pgtype.Timestamptz `json:"creation_time"`
	AccountType    int64              `json:"account_type"`
	Balance        int64              `json:"balance"`
}

type InsertHistoryBatchParams struct {
	AccountNumber int64              `json:"account_number"`
	Ts            pgtype.Timestamptz `json:"ts"`
	Memo          pgtype.Text        `json:"memo"`
	ChangeAmount  int64              `json:"change_amount"`
}
