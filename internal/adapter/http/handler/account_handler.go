package handler

import (
	"context"
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/domain"
)

// DefaultHistoryLimit is used when the history request has no limit.
const DefaultHistoryLimit = 10

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	AccountBalance(ctx context.Context, accountNumber int64) (int64, error)
	CustomerBalance(ctx context.Context, customerNumber int64) (int64, error)
	RecentHistory(ctx context.Context, accountNumber int64, n int) ([]*domain.HistoryEntry, error)
}

// AccountHandler handles balance and history queries.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Balance returns the balance of one account.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	account, err := parseNumberParam(r, "account")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account number", err.Error())
		return
	}

	cents, err := h.accountUC.AccountBalance(r.Context(), account)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountBalance(account, cents))
}

// CustomerBalance returns the sum of a customer's account balances.
func (h *AccountHandler) CustomerBalance(w http.ResponseWriter, r *http.Request) {
	customer, err := parseNumberParam(r, "customer")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer number", err.Error())
		return
	}

	cents, err := h.accountUC.CustomerBalance(r.Context(), customer)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get customer balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerBalance(customer, cents))
}

// History returns the most recent history entries of an account.
func (h *AccountHandler) History(w http.ResponseWriter, r *http.Request) {
	account, err := parseNumberParam(r, "account")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account number", err.Error())
		return
	}

	limit, err := parseIntQuery(r, "limit", DefaultHistoryLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit", err.Error())
		return
	}

	entries, err := h.accountUC.RecentHistory(r.Context(), account, limit)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryFromDomain(account, entries))
}
