package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// CentsToAmount converts cents to a dollar amount.
func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// HistoryEntryResponse represents one balance change in API responses.
type HistoryEntryResponse struct {
	AccountNumber int64           `json:"account_number"`
	Ts            time.Time       `json:"ts"`
	ChangeCents   int64           `json:"change_cents"`
	ChangeAmount  decimal.Decimal `json:"change_amount"`
	Memo          string          `json:"memo,omitempty"`
}

// HistoryEntryFromDomain converts a domain history entry to response.
func HistoryEntryFromDomain(h *domain.HistoryEntry) *HistoryEntryResponse {
	return &HistoryEntryResponse{
		AccountNumber: h.AccountNumber,
		Ts:            h.Ts,
		ChangeCents:   h.ChangeAmount,
		ChangeAmount:  CentsToAmount(h.ChangeAmount),
		Memo:          h.Memo,
	}
}

// HistoryResponse is a newest-first list of history entries.
type HistoryResponse struct {
	AccountNumber int64                   `json:"account_number"`
	Entries       []*HistoryEntryResponse `json:"entries"`
}

// HistoryFromDomain converts domain history entries to response.
func HistoryFromDomain(accountNumber int64, entries []*domain.HistoryEntry) *HistoryResponse {
	result := make([]*HistoryEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = HistoryEntryFromDomain(e)
	}
	return &HistoryResponse{AccountNumber: accountNumber, Entries: result}
}

// BalanceResponse represents an account or customer balance.
type BalanceResponse struct {
	AccountNumber  *int64          `json:"account_number,omitempty"`
	CustomerNumber *int64          `json:"customer_number,omitempty"`
	BalanceCents   int64           `json:"balance_cents"`
	Balance        decimal.Decimal `json:"balance"`
}

// AccountBalance builds the balance response of an account.
func AccountBalance(accountNumber, cents int64) *BalanceResponse {
	return &BalanceResponse{AccountNumber: &accountNumber, BalanceCents: cents, Balance: CentsToAmount(cents)}
}

// CustomerBalance builds the balance response of a customer.
func CustomerBalance(customerNumber, cents int64) *BalanceResponse {
	return &BalanceResponse{CustomerNumber: &customerNumber, BalanceCents: cents, Balance: CentsToAmount(cents)}
}

// InterestRunResponse represents an interest run report.
type InterestRunResponse struct {
	ID             string          `json:"id"`
	StartedAt      time.Time       `json:"started_at"`
	FinishedAt     time.Time       `json:"finished_at"`
	Applied        int             `json:"applied"`
	AlreadyApplied int             `json:"already_applied"`
	NotFound       int             `json:"not_found"`
	CreditedCents  int64           `json:"credited_cents"`
	Credited       decimal.Decimal `json:"credited"`
}

// InterestRunFromDomain converts a domain interest run to response.
func InterestRunFromDomain(r *domain.InterestRun) *InterestRunResponse {
	return &InterestRunResponse{
		ID:             r.ID,
		StartedAt:      r.StartedAt,
		FinishedAt:     r.FinishedAt,
		Applied:        r.Applied,
		AlreadyApplied: r.AlreadyApplied,
		NotFound:       r.NotFound,
		CreditedCents:  r.CreditedCents,
		Credited:       CentsToAmount(r.CreditedCents),
	}
}

// ShardResponse is one aggregate balance shard.
type ShardResponse struct {
	Shard        int64 `json:"shard"`
	BalanceCents int64 `json:"balance_cents"`
}

// ConsistencyResponse represents the result of a consistency check.
type ConsistencyResponse struct {
	Status            string          `json:"status"`
	Consistent        bool            `json:"consistent"`
	Skipped           bool            `json:"skipped"`
	AccountTotalCents int64           `json:"account_total_cents"`
	ShardTotalCents   int64           `json:"shard_total_cents"`
	Shards            []ShardResponse `json:"shards,omitempty"`
	CheckedAt         time.Time       `json:"checked_at"`
}

// ConsistencyFromReport converts a consistency report to response.
func ConsistencyFromReport(r *usecase.ConsistencyReport) *ConsistencyResponse {
	resp := &ConsistencyResponse{
		Consistent:        r.Consistent,
		Skipped:           r.Skipped,
		AccountTotalCents: r.AccountTotal,
		ShardTotalCents:   r.ShardTotal,
		CheckedAt:         r.CheckedAt,
	}

	switch {
	case r.Skipped:
		resp.Status = "skipped"
	case r.Consistent:
		resp.Status = "ok"
	default:
		resp.Status = "mismatch"
	}

	for _, s := range r.ShardBalances {
		resp.Shards = append(resp.Shards, ShardResponse{Shard: s.Shard, BalanceCents: s.Balance})
	}

	return resp
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	Number    int64  `json:"number"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	CustomerNumber          int64      `json:"customer_number"`
	AccountNumber           int64      `json:"account_number"`
	Type                    string     `json:"type"`
	BalanceCents            int64      `json:"balance_cents"`
	CreationTime            time.Time  `json:"creation_time"`
	LastInterestCalculation *time.Time `json:"last_interest_calculation,omitempty"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		CustomerNumber:          a.CustomerNumber,
		AccountNumber:           a.AccountNumber,
		Type:                    a.Type.String(),
		BalanceCents:            a.Balance,
		CreationTime:            a.CreationTime,
		LastInterestCalculation: a.LastInterestCalculation,
	}
}

// ProvisionResponse lists the customers and accounts created.
type ProvisionResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Accounts  []*AccountResponse `json:"accounts"`
}

// ProvisionFromResult converts a provisioning result to response.
func ProvisionFromResult(r *usecase.ProvisionResult) *ProvisionResponse {
	resp := &ProvisionResponse{
		Customers: make([]CustomerResponse, len(r.Customers)),
		Accounts:  make([]*AccountResponse, len(r.Accounts)),
	}
	for i, c := range r.Customers {
		resp.Customers[i] = CustomerResponse{Number: c.Number, FirstName: c.FirstName, LastName: c.LastName}
	}
	for i := range r.Accounts {
		resp.Accounts[i] = AccountFromDomain(&r.Accounts[i])
	}
	return resp
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
