package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/bankledger/internal/adapter/http/dto"
)

func execute(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--url", srv.URL}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, struct {
		A int `json:"a"`
	}{A: 1}))

	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestDeposit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/customers/7/accounts/42/deposits", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))

		var req dto.DepositRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Amount)
		assert.Equal(t, "1.5", req.Amount.String())
		assert.Equal(t, "rent", req.Memo)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.HistoryEntryResponse{AccountNumber: 42, ChangeCents: 150, Memo: "rent"})
	}))
	defer srv.Close()

	out, err := execute(t, srv, "deposit", "7", "42", "--amount", "1.50", "--memo", "rent", "--idempotency-key", "key-1")
	require.NoError(t, err)
	assert.Contains(t, out, `"change_cents": 150`)
}

func TestDeposit_InvalidArguments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	_, err := execute(t, srv, "deposit", "x", "42", "--amount", "1")
	assert.ErrorContains(t, err, "invalid number")

	_, err = execute(t, srv, "deposit", "7", "42", "--amount", "lots")
	assert.ErrorContains(t, err, "invalid amount")
}

func TestDeposit_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "insufficient_funds", Message: "balance cannot go negative"})
	}))
	defer srv.Close()

	_, err := execute(t, srv, "deposit", "7", "42", "--amount=-5")
	require.Error(t, err)

	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, err.Error(), "insufficient_funds")
}

func TestBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/accounts/42/balance":
			_ = json.NewEncoder(w).Encode(dto.AccountBalance(42, 151))
		case "/api/v1/customers/7/balance":
			_ = json.NewEncoder(w).Encode(dto.CustomerBalance(7, 20000))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	out, err := execute(t, srv, "balance", "account", "42")
	require.NoError(t, err)
	assert.Equal(t, "1.51\n", out)

	out, err = execute(t, srv, "balance", "customer", "7")
	require.NoError(t, err)
	assert.Equal(t, "200.00\n", out)
}

func TestHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/42/history", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(dto.HistoryResponse{
			AccountNumber: 42,
			Entries: []*dto.HistoryEntryResponse{
				{AccountNumber: 42, ChangeAmount: dto.CentsToAmount(1), Memo: "Monthly Interest"},
				{AccountNumber: 42, ChangeAmount: dto.CentsToAmount(150), Memo: "Initial Deposit"},
			},
		})
	}))
	defer srv.Close()

	out, err := execute(t, srv, "history", "42", "--limit", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "0.01")
	assert.Contains(t, lines[1], "Monthly Interest")
	assert.Contains(t, lines[2], "1.50")
}

func TestInterest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/interest/runs":
			_ = json.NewEncoder(w).Encode(dto.InterestRunResponse{ID: "run-1", Applied: 2, CreditedCents: 191, Credited: dto.CentsToAmount(191)})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/interest/runs/last":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "not_found"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	out, err := execute(t, srv, "interest", "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Run run-1: applied=2")
	assert.Contains(t, out, "credited=1.91")

	_, err = execute(t, srv, "interest", "last")
	assert.ErrorContains(t, err, "status 404")
}

func TestConsistency(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    dto.ConsistencyResponse
		want    string
		wantErr bool
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   dto.ConsistencyResponse{Status: "ok", Consistent: true, AccountTotalCents: 1301, ShardTotalCents: 1301},
			want:   "PASSED",
		},
		{
			name:   "skipped",
			status: http.StatusOK,
			body:   dto.ConsistencyResponse{Status: "skipped", Consistent: true, Skipped: true},
			want:   "SKIPPED",
		},
		{
			name:    "mismatch",
			status:  http.StatusConflict,
			body:    dto.ConsistencyResponse{Status: "mismatch", AccountTotalCents: 1301, ShardTotalCents: 1308},
			want:    "FAILED",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/ledger/consistency", r.URL.Path)
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			out, err := execute(t, srv, "ledger", "consistency")
			assert.Contains(t, out, tt.want)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/provision", r.URL.Path)

		var req dto.ProvisionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Reset)
		require.Len(t, req.Customers, 1)
		assert.Equal(t, "Grace", req.Customers[0].FirstName)
		assert.Equal(t, "Hopper", req.Customers[0].LastName)
		assert.Equal(t, []string{"savings"}, req.Customers[0].Accounts)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.ProvisionResponse{Customers: []dto.CustomerResponse{{Number: 9, FirstName: "Grace", LastName: "Hopper"}}})
	}))
	defer srv.Close()

	out, err := execute(t, srv, "seed", "--reset", "--customer", "Grace Hopper", "--accounts", "savings")
	require.NoError(t, err)
	assert.Contains(t, out, `"first_name": "Grace"`)
}

func TestBuildProvisionRequest(t *testing.T) {
	req, err := buildProvisionRequest(false, []string{"Ada Lovelace", " Alan  Turing "}, "savings, checking,")
	require.NoError(t, err)
	require.Len(t, req.Customers, 2)
	assert.Equal(t, "Turing", req.Customers[1].LastName)
	assert.Equal(t, []string{"savings", "checking"}, req.Customers[0].Accounts)

	_, err = buildProvisionRequest(false, []string{"Cher"}, "savings")
	assert.Error(t, err)
}
