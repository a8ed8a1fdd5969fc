package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/domain"
)

// InterestService defines the behavior needed by InterestHandler.
type InterestService interface {
	RunInterestAccrual(ctx context.Context) (*domain.InterestRun, error)
	LastRun(ctx context.Context) (*domain.InterestRun, error)
}

// InterestHandler triggers interest runs and reports on them.
type InterestHandler struct {
	interestUC InterestService
}

// NewInterestHandler creates a new InterestHandler.
func NewInterestHandler(interestUC InterestService) *InterestHandler {
	return &InterestHandler{interestUC: interestUC}
}

// Run executes one interest accrual pass synchronously.
func (h *InterestHandler) Run(w http.ResponseWriter, r *http.Request) {
	run, err := h.interestUC.RunInterestAccrual(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "interest run aborted", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InterestRunFromDomain(run))
}

// LastRun returns the report of the last completed run.
func (h *InterestHandler) LastRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.interestUC.LastRun(r.Context())
	if errors.Is(err, domain.ErrNoResults) {
		writeError(w, http.StatusNotFound, "no interest run recorded", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get last interest run", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InterestRunFromDomain(run))
}
