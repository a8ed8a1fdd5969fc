package generated

import (
	"context"
)

// iteratorForInsertCustomers implements pgx.CopyFromSource.
type iteratorForInsertCustomers struct {
	rows                 []InsertCustomersParams
	skippedFirstNextCall bool
}

func (r *iteratorForInsertCustomers) Next() bool {
	if len(r.rows) == 0 {
		return false
	}
	if !r.skippedFirstNextCall {
		r.skippedFirstNextCall = true
		return true
	}
	r.rows = r.rows[1:]
	return len(r.rows) > 0
}

func (r iteratorForInsertCustomers) Values() ([]interface{}, error) {
	return []interface{}{
		r.rows[0].CustomerNumber,
		r.rows[0].LastName,
		r.rows[0].FirstName,
	}, nil
}

func (r iteratorForInsertCustomers) Err() error {
	return nil
}

func (q *Queries) InsertCustomers(ctx context.Context, arg []InsertCustomersParams) (int64, error) {
	return q.db.CopyFrom(ctx, []string{"customers"}, []string{"customer_number", "last_name", "first_name"}, &iteratorForInsertCustomers{rows: arg})
}

// iteratorForInsertAccounts implements pgx.CopyFromSource.
type iteratorForInsertAccounts struct {
	rows                 []InsertAccountsParams
	skippedFirstNextCall bool
}

func (r *iteratorForInsertAccounts) Next() bool {
	if len(r.rows) == 0 {
		return false
	}
	if !r.skippedFirstNextCall {
		r.skippedFirstNextCall = true
		return true
	}
	r.rows = r.rows[1:]
	return len(r.rows) > 0
}

func (r iteratorForInsertAccounts) Values() ([]interface{}, error) {
	return []interface{}{
		r.rows[0].CustomerNumber,
		r.rows[0].AccountNumber,
		r.rows[0].CreationTime,
		r.rows[0].AccountType,
		r.rows[0].Balance,
	}, nil
}

func (r iteratorForInsertAccounts) Err() error {
	return nil
}

func (q *Queries) InsertAccounts(ctx context.Context, arg []InsertAccountsParams) (int64, error) {
	return q.db.CopyFrom(ctx, []string{"accounts"}, []string{"customer_number", "account_number", "creation_time", "account_type", "balance"}, &iteratorForInsertAccounts{rows: arg})
}

// iteratorForInsertHistoryBatch implements pgx.CopyFromSource.
type iteratorForInsertHistoryBatch struct {
	rows                 []InsertHistoryBatchParams
	skippedFirstNextCall bool
}

func (r *iteratorForInsertHistoryBatch) Next() bool {
	if len(r.rows) == 0 {
		return false
	}
	if !r.skippedFirstNextCall {
		r.skippedFirstNextCall = true
		return true
	}
	r.rows = r.rows[1:]
	return len(r.rows) > 0
}

func (r iteratorForInsertHistoryBatch) Values() ([]interface{}, error) {
	return []interface{}{
		r.rows[0].AccountNumber,
		r.rows[0].Ts,
		r.rows[0].Memo,
		r.rows[0].ChangeAmount,
	}, nil
}

func (r iteratorForInsertHistoryBatch) Err() error {
	return nil
}

func (q *Queries) InsertHistoryBatch(ctx context.Context, arg []InsertHistoryBatchParams) (int64, error) {
	return q.db.CopyFrom(ctx, []string{"account_history"}, []string{"account_number", "ts", "memo", "change_amount"}, &iteratorForInsertHistoryBatch{rows: arg})
}
