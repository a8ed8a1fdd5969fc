package generated

import (
	"context"
)

const addToShard = `-- name: AddToShard :execrows
UPDATE aggregate_balance SET balance = balance + $2
WHERE shard = $1
`

type AddToShardParams struct {
	Shard  int64 `json:"shard"`
	Amount int64 `json:"amount"`
}

func (q *Queries) AddToShard(ctx context.Context, arg AddToShardParams) (int64, error) {
	result, err := q.db.Exec(ctx, addToShard, arg.Shard, arg.Amount)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listShards = `-- name: ListShards :many
SELECT shard, balance FROM aggregate_balance
ORDER BY shard
`

func (q *Queries) ListShards(ctx context.Context) ([]AggregateBalance, error) {
	rows, err := q.db.Query(ctx, listShards)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AggregateBalance{}
	for rows.Next() {
		var i AggregateBalance
		if err := rows.Scan(&i.Shard, &i.Balance); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const seedShards = `-- name: SeedShards :exec
INSERT INTO aggregate_balance (shard, balance)
SELECT s, 0 FROM generate_series(0, $1::bigint - 1) AS s
ON CONFLICT (shard) DO NOTHING
`

func (q *Queries) SeedShards(ctx context.Context, count int64) error {
	_, err := q.db.Exec(ctx, seedShards, count)
	return err
}

const sumShards = `-- name: SumShards :one
SELECT COALESCE(SUM(balance), 0)::bigint AS total FROM aggregate_balance
`

func (q *Queries) SumShards(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, sumShards)
	var total int64
	err := row.Scan(&total)
	return total, err
}
