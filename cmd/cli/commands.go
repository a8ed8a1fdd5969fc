package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/bankledger/internal/adapter/http/dto"
)

func depositCmd(c *apiClient) *cobra.Command {
	var (
		amount string
		memo   string
		key    string
	)

	cmd := &cobra.Command{
		Use:   "deposit <customer> <account>",
		Short: "Deposit into (or withdraw from, with a negative amount) an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, account, err := parseNumbers(args[0], args[1])
			if err != nil {
				return err
			}
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			if key == "" {
				key = newIdempotencyKey()
			}

			var resp dto.HistoryEntryResponse
			path := fmt.Sprintf("/api/v1/customers/%d/accounts/%d/deposits", customer, account)
			if err := c.post(path, dto.DepositRequest{Amount: &amt, Memo: memo},
				map[string]string{"Idempotency-Key": key}, &resp); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount in currency units, e.g. 1.50 or -0.25")
	cmd.Flags().StringVar(&memo, "memo", "", "Memo recorded in the account history")
	cmd.Flags().StringVar(&key, "idempotency-key", "", "Idempotency key (generated when empty)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func balanceCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance queries",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "account <account>",
			Short: "Show the balance of one account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return showBalance(cmd, c, "/api/v1/accounts/%d/balance", args[0])
			},
		},
		&cobra.Command{
			Use:   "customer <customer>",
			Short: "Show the total balance of a customer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return showBalance(cmd, c, "/api/v1/customers/%d/balance", args[0])
			},
		},
	)

	return cmd
}

func showBalance(cmd *cobra.Command, c *apiClient, pathFmt, arg string) error {
	n, err := parseNumber(arg)
	if err != nil {
		return err
	}
	var resp dto.BalanceResponse
	if err := c.get(fmt.Sprintf(pathFmt, n), &resp); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", resp.Balance.StringFixed(2))
	return err
}

func historyCmd(c *apiClient) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <account>",
		Short: "Show the most recent history entries of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			var resp dto.HistoryResponse
			if err := c.get(fmt.Sprintf("/api/v1/accounts/%d/history?limit=%d", n, limit), &resp); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-32s %12s  %s\n", "TIMESTAMP", "CHANGE", "MEMO")
			for _, e := range resp.Entries {
				fmt.Fprintf(out, "%-32s %12s  %s\n", e.Ts.Format("2006-01-02T15:04:05.000000Z07:00"), e.ChangeAmount.StringFixed(2), e.Memo)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries to show")

	return cmd
}

func interestCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Interest accrual",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Run one interest accrual pass",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				var resp dto.InterestRunResponse
				if err := c.post("/api/v1/interest/runs", nil, nil, &resp); err != nil {
					return err
				}
				return printInterestRun(cmd, &resp)
			},
		},
		&cobra.Command{
			Use:   "last",
			Short: "Show the report of the last interest run",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				var resp dto.InterestRunResponse
				if err := c.get("/api/v1/interest/runs/last", &resp); err != nil {
					return err
				}
				return printInterestRun(cmd, &resp)
			},
		},
	)

	return cmd
}

func printInterestRun(cmd *cobra.Command, run *dto.InterestRunResponse) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Run %s: applied=%d already_applied=%d not_found=%d credited=%s\n",
		run.ID, run.Applied, run.AlreadyApplied, run.NotFound, run.Credited.StringFixed(2))
	return err
}

func ledgerCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkConsistency(cmd, c)
		},
	})

	return cmd
}

func checkConsistency(cmd *cobra.Command, c *apiClient) error {
	out := cmd.OutOrStdout()

	var resp dto.ConsistencyResponse
	err := c.get("/api/v1/ledger/consistency", &resp)

	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
		fmt.Fprintf(out, "Consistency check FAILED\n")
		return err
	}
	if err != nil {
		return err
	}

	switch resp.Status {
	case "skipped":
		fmt.Fprintf(out, "Consistency check SKIPPED (aggregate balance disabled)\n")
	default:
		fmt.Fprintf(out, "Consistency check PASSED\n")
		fmt.Fprintf(out, "Accounts: %d cents, shards: %d cents\n", resp.AccountTotalCents, resp.ShardTotalCents)
	}
	return nil
}

func seedCmd(c *apiClient) *cobra.Command {
	var (
		reset    bool
		accounts string
		names    []string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision customers and accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildProvisionRequest(reset, names, accounts)
			if err != nil {
				return err
			}
			var resp dto.ProvisionResponse
			if err := c.post("/api/v1/admin/provision", req, nil, &resp); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Clear all tables before provisioning")
	cmd.Flags().StringSliceVar(&names, "customer", []string{"Ada Lovelace", "Alan Turing"}, "Customer as \"First Last\" (repeatable)")
	cmd.Flags().StringVar(&accounts, "accounts", "savings,checking", "Comma separated account types opened for each customer")

	return cmd
}

func buildProvisionRequest(reset bool, names []string, accounts string) (*dto.ProvisionRequest, error) {
	var types []string
	for _, a := range strings.Split(accounts, ",") {
		if a = strings.TrimSpace(a); a != "" {
			types = append(types, a)
		}
	}

	req := &dto.ProvisionRequest{Reset: reset}
	for _, name := range names {
		first, last, ok := strings.Cut(strings.TrimSpace(name), " ")
		if !ok || first == "" || strings.TrimSpace(last) == "" {
			return nil, fmt.Errorf("customer %q must be \"First Last\"", name)
		}
		req.Customers = append(req.Customers, dto.ProvisionCustomerRequest{
			FirstName: first,
			LastName:  strings.TrimSpace(last),
			Accounts:  types,
		})
	}
	return req, nil
}

func parseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

func parseNumbers(customer, account string) (int64, int64, error) {
	c, err := parseNumber(customer)
	if err != nil {
		return 0, 0, err
	}
	a, err := parseNumber(account)
	if err != nil {
		return 0, 0, err
	}
	return c, a, nil
}
