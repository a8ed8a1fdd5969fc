package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/usecase"
)

// ProvisioningService defines the behavior needed by ProvisionHandler.
type ProvisioningService interface {
	Provision(ctx context.Context, input usecase.ProvisionInput) (*usecase.ProvisionResult, error)
}

// ProvisionHandler bulk-creates customers and accounts.
type ProvisionHandler struct {
	provisioningUC ProvisioningService
}

// NewProvisionHandler creates a new ProvisionHandler.
func NewProvisionHandler(provisioningUC ProvisioningService) *ProvisionHandler {
	return &ProvisionHandler{provisioningUC: provisioningUC}
}

// Provision seeds the ledger, optionally resetting it first.
func (h *ProvisionHandler) Provision(w http.ResponseWriter, r *http.Request) {
	var req dto.ProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid provisioning request", err.Error())
		return
	}

	result, err := h.provisioningUC.Provision(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to provision ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ProvisionFromResult(result))
}
