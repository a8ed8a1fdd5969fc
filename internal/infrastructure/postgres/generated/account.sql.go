package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getAccountBalance = `-- name: GetAccountBalance :many
SELECT balance FROM accounts
WHERE account_number = $1
`

func (q *Queries) GetAccountBalance(ctx context.Context, accountNumber int64) ([]int64, error) {
	rows, err := q.db.Query(ctx, getAccountBalance, accountNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []int64{}
	for rows.Next() {
		var balance int64
		if err := rows.Scan(&balance); err != nil {
			return nil, err
		}
		items = append(items, balance)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getAccountForChange = `-- name: GetAccountForChange :many
SELECT balance, now()::timestamptz AS tx_time FROM accounts
WHERE customer_number = $1 AND account_number = $2
`

type GetAccountForChangeParams struct {
	CustomerNumber int64 `json:"customer_number"`
	AccountNumber  int64 `json:"account_number"`
}

type GetAccountForChangeRow struct {
	Balance int64              `json:"balance"`
	TxTime  pgtype.Timestamptz `json:"tx_time"`
}

func (q *Queries) GetAccountForChange(ctx context.Context, arg GetAccountForChangeParams) ([]GetAccountForChangeRow, error) {
	rows, err := q.db.Query(ctx, getAccountForChange, arg.CustomerNumber, arg.AccountNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GetAccountForChangeRow{}
	for rows.Next() {
		var i GetAccountForChangeRow
		if err := rows.Scan(&i.Balance, &i.TxTime); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getAccountForInterest = `-- name: GetAccountForInterest :many
SELECT customer_number, account_number, creation_time, account_type, balance, last_interest_calculation, now()::timestamptz AS tx_time
FROM accounts
WHERE customer_number = $1 AND account_number = $2
`

type GetAccountForInterestParams struct {
	CustomerNumber int64 `json:"customer_number"`
	AccountNumber  int64 `json:"account_number"`
}

type GetAccountForInterestRow struct {
	CustomerNumber          int64              `json:"customer_number"`
	AccountNumber           int64              `json:"account_number"`
	CreationTime            pgtype.Timestamptz `json:"creation_time"`
	AccountType             int64              `json:"account_type"`
	Balance                 int64              `json:"balance"`
	LastInterestCalculation pgtype.Timestamptz `json:"last_interest_calculation"`
	TxTime                  pgtype.Timestamptz `json:"tx_time"`
}

func (q *Queries) GetAccountForInterest(ctx context.Context, arg GetAccountForInterestParams) ([]GetAccountForInterestRow, error) {
	rows, err := q.db.Query(ctx, getAccountForInterest, arg.CustomerNumber, arg.AccountNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GetAccountForInterestRow{}
	for rows.Next() {
		var i GetAccountForInterestRow
		if err := rows.Scan(
			&i.CustomerNumber,
			&i.AccountNumber,
			&i.CreationTime,
			&i.AccountType,
			&i.Balance,
			&i.LastInterestCalculation,
			&i.TxTime,
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

const getCustomerBalance = `-- name: GetCustomerBalance :many
SELECT SUM(a.balance)::bigint AS balance
FROM accounts a
JOIN customers c ON c.customer_number = a.customer_number
WHERE c.customer_number = $1
GROUP BY c.customer_number
`

func (q *Queries) GetCustomerBalance(ctx context.Context, customerNumber int64) ([]int64, error) {
	rows, err := q.db.Query(ctx, getCustomerBalance, customerNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []int64{}
	for rows.Next() {
		var balance int64
		if err := rows.Scan(&balance); err != nil {
			return nil, err
		}
		items = append(items, balance)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listInterestCandidates = `-- name: ListInterestCandidates :many
SELECT customer_number, account_number, last_interest_calculation
FROM accounts
WHERE account_number > $2
  AND (last_interest_calculation IS NULL
   OR CASE WHEN $1::bool THEN
          date_part('month', last_interest_calculation AT TIME ZONE 'UTC') <> date_part('month', now() AT TIME ZONE 'UTC')
          AND date_part('year', last_interest_calculation AT TIME ZONE 'UTC') <> date_part('year', now() AT TIME ZONE 'UTC')
      ELSE
          date_part('month', last_interest_calculation AT TIME ZONE 'UTC') <> date_part('month', now() AT TIME ZONE 'UTC')
          OR date_part('year', last_interest_calculation AT TIME ZONE 'UTC') <> date_part('year', now() AT TIME ZONE 'UTC')
      END)
ORDER BY account_number
LIMIT $3
`

type ListInterestCandidatesParams struct {
	Legacy bool  `json:"legacy"`
	After  int64 `json:"after"`
	Limit  int32 `json:"limit"`
}

type ListInterestCandidatesRow struct {
	CustomerNumber          int64              `json:"customer_number"`
	AccountNumber           int64              `json:"account_number"`
	LastInterestCalculation pgtype.Timestamptz `json:"last_interest_calculation"`
}

func (q *Queries) ListInterestCandidates(ctx context.Context, arg ListInterestCandidatesParams) ([]ListInterestCandidatesRow, error) {
	rows, err := q.db.Query(ctx, listInterestCandidates, arg.Legacy, arg.After, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListInterestCandidatesRow{}
	for rows.Next() {
		var i ListInterestCandidatesRow
		if err := rows.Scan(&i.CustomerNumber, &i.AccountNumber, &i.LastInterestCalculation); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const setLastInterestCalculation = `-- name: SetLastInterestCalculation :execrows
UPDATE accounts SET last_interest_calculation = $3
WHERE customer_number = $1 AND account_number = $2
`

type SetLastInterestCalculationParams struct {
	CustomerNumber          int64              `json:"customer_number"`
	AccountNumber           int64              `json:"account_number"`
	LastInterestCalculation pgtype.Timestamptz `json:"last_interest_calculation"`
}

func (q *Queries) SetLastInterestCalculation(ctx context.Context, arg SetLastInterestCalculationParams) (int64, error) {
	result, err := q.db.Exec(ctx, setLastInterestCalculation, arg.CustomerNumber, arg.AccountNumber, arg.LastInterestCalculation)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const sumAccountBalances = `-- name: SumAccountBalances :one
SELECT COALESCE(SUM(balance), 0)::bigint AS total FROM accounts
`

func (q *Queries) SumAccountBalances(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, sumAccountBalances)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const updateAccountBalance = `-- name: UpdateAccountBalance :execrows
UPDATE accounts SET balance = $3
WHERE customer_number = $1 AND account_number = $2
`

type UpdateAccountBalanceParams struct {
	CustomerNumber int64 `json:"customer_number"`
	AccountNumber  int64 `json:"account_number"`
	Balance        int64 `json:"balance"`
}

func (q *Queries) UpdateAccountBalance(ctx context.Context, arg UpdateAccountBalanceParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateAccountBalance, arg.CustomerNumber, arg.AccountNumber, arg.Balance)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
