package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	Deposit(ctx context.Context, input usecase.DepositInput) (*domain.HistoryEntry, error)
}

// LedgerHandler handles balance changes.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Deposit applies a signed balance change to an account.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	customer, err := parseNumberParam(r, "customer")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer number", err.Error())
		return
	}
	account, err := parseNumberParam(r, "account")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account number", err.Error())
		return
	}

	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(customer, account)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid amount", err.Error())
		return
	}

	entry, err := h.ledgerUC.Deposit(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to apply deposit", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.HistoryEntryFromDomain(entry))
}
