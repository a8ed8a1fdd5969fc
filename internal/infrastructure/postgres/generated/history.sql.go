package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertHistory = `-- name: InsertHistory :exec
INSERT INTO account_history (account_number, ts, memo, change_amount)
VALUES ($1, $2, $3, $4)
`

type InsertHistoryParams struct {
	AccountNumber int64              `json:"account_number"`
	Ts            pgtype.Timestamptz `json:"ts"`
	Memo          pgtype.Text        `json:"memo"`
	ChangeAmount  int64              `json:"change_amount"`
}

func (q *Queries) InsertHistory(ctx context.Context, arg InsertHistoryParams) error {
	_, err := q.db.Exec(ctx, insertHistory,
		arg.AccountNumber,
		arg.Ts,
		arg.Memo,
		arg.ChangeAmount,
	)
	return err
}

const listRecentHistory = `-- name: ListRecentHistory :many
SELECT account_number, ts, memo, change_amount FROM account_history
WHERE account_number = $1
ORDER BY ts DESC
LIMIT $2
`

type ListRecentHistoryParams struct {
	AccountNumber int64 `json:"account_number"`
	Limit         int32 `json:"limit"`
}

func (q *Queries) ListRecentHistory(ctx context.Context, arg ListRecentHistoryParams) ([]AccountHistory, error) {
	rows, err := q.db.Query(ctx, listRecentHistory, arg.AccountNumber, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AccountHistory{}
	for rows.Next() {
		var i AccountHistory
		if err := rows.Scan(
			&i.AccountNumber,
			&i.Ts,
			&i.Memo,
			&i.ChangeAmount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
