package dto

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// ErrInvalidAmount is returned when a deposit request carries no usable amount.
var ErrInvalidAmount = errors.New("exactly one of cents or amount is required, amount must have at most two decimal places")

// DepositRequest represents a signed balance change. Either Cents or
// Amount (in dollars) must be set. Negative values withdraw.
type DepositRequest struct {
	Cents  *int64           `json:"cents,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Memo   string           `json:"memo,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *DepositRequest) ToUseCaseInput(customerNumber, accountNumber int64) (usecase.DepositInput, error) {
	input := usecase.DepositInput{
		CustomerNumber: customerNumber,
		AccountNumber:  accountNumber,
		Memo:           r.Memo,
	}

	switch {
	case r.Cents != nil && r.Amount == nil:
		input.Cents = *r.Cents
	case r.Amount != nil && r.Cents == nil:
		cents, err := AmountToCents(*r.Amount)
		if err != nil {
			return usecase.DepositInput{}, err
		}
		input.Cents = cents
	default:
		return usecase.DepositInput{}, ErrInvalidAmount
	}

	return input, nil
}

// ProvisionCustomerRequest describes one customer to create.
type ProvisionCustomerRequest struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Accounts  []string `json:"accounts"`
}

// ProvisionRequest represents a bulk provisioning request.
type ProvisionRequest struct {
	Reset     bool                       `json:"reset"`
	Customers []ProvisionCustomerRequest `json:"customers"`
}

// ToUseCaseInput converts to use case input.
func (r *ProvisionRequest) ToUseCaseInput() (usecase.ProvisionInput, error) {
	input := usecase.ProvisionInput{
		Reset:     r.Reset,
		Customers: make([]usecase.ProvisionCustomer, 0, len(r.Customers)),
	}

	for i, c := range r.Customers {
		types := make([]domain.AccountType, 0, len(c.Accounts))
		for _, name := range c.Accounts {
			typ, err := domain.ParseAccountType(name)
			if err != nil {
				return usecase.ProvisionInput{}, fmt.Errorf("customer %d: %w", i, err)
			}
			types = append(types, typ)
		}

		input.Customers = append(input.Customers, usecase.ProvisionCustomer{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Accounts:  types,
		})
	}

	return input, nil
}

// AmountToCents converts a dollar amount with at most two decimal places to cents.
func AmountToCents(amount decimal.Decimal) (int64, error) {
	cents := amount.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, ErrInvalidAmount
	}
	if cents.GreaterThan(decimal.NewFromInt(domain.MaxChangeCents)) ||
		cents.LessThan(decimal.NewFromInt(-domain.MaxChangeCents)) {
		return 0, domain.ErrAmountTooLarge
	}
	return cents.IntPart(), nil
}
