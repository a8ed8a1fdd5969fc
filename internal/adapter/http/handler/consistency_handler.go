package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// ConsistencyService defines the behavior needed by ConsistencyHandler.
type ConsistencyService interface {
	VerifyConsistency(ctx context.Context) (*usecase.ConsistencyReport, error)
}

// ConsistencyHandler exposes the aggregate balance check.
type ConsistencyHandler struct {
	consistencyUC ConsistencyService
}

// NewConsistencyHandler creates a new ConsistencyHandler.
func NewConsistencyHandler(consistencyUC ConsistencyService) *ConsistencyHandler {
	return &ConsistencyHandler{consistencyUC: consistencyUC}
}

// Check compares account balances with the aggregate shards.
func (h *ConsistencyHandler) Check(w http.ResponseWriter, r *http.Request) {
	report, err := h.consistencyUC.VerifyConsistency(r.Context())
	if errors.Is(err, domain.ErrInconsistentBalances) && report != nil {
		writeJSON(w, http.StatusConflict, dto.ConsistencyFromReport(report))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "consistency check failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyFromReport(report))
}
