package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/himalayanmicrofin/hmfin/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient_EmptyBaseURL(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}

func TestSignIn(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/signin", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asha@example.in", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data": map[string]any{
				"token": "tok-xyz",
				"user":  map[string]any{"id": 7, "name": "Asha", "phone": "9812345678"},
			},
		})
	})

	result, err := client.SignIn(context.Background(), "asha@example.in", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", result.Token)
	assert.Equal(t, int64(7), result.User.ID)
	assert.Equal(t, "Asha", result.User.Name)
}

func TestSignIn_RejectedCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "invalid credentials",
		})
	})

	_, err := client.SignIn(context.Background(), "asha@example.in", "wrong")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestLoans_SendsBearerTokenAndPaging(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "/loans", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("skip"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"message": map[string]any{
				"loans": []map[string]any{
					{
						"id":            3,
						"amount":        "10000",
						"emi_amount":    "933.33",
						"total_payable": 11200,
						"loan_status":   "Active",
					},
				},
			},
		})
	}, WithToken("tok-abc"))

	loans, err := client.Loans(context.Background(), 20, 10)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, int64(3), loans[0].ID)
	// Amounts decode from both JSON strings and numbers.
	assert.True(t, loans[0].EMIAmount.Equal(decimal.RequireFromString("933.33")))
	assert.True(t, loans[0].TotalPayable.Equal(decimal.NewFromInt(11200)))
}

func TestLoanDue_DecodesVerbatimFigures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/loans/9/due", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"message": map[string]any{
				"totalDue":           "1866.66",
				"totalOverdue":       "933.33",
				"totalPartialRemain": "0",
				"totalLateFee":       "25",
			},
		})
	})

	due, err := client.LoanDue(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, due.TotalDue.Equal(decimal.RequireFromString("1866.66")))
	assert.True(t, due.TotalLateFee.Equal(decimal.NewFromInt(25)))
}

func TestApplyForLoan_ValidatesBeforeSending(t *testing.T) {
	called := false
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	})

	app := LoanApplication{
		PlanID:               2,
		PrincipalAmount:      decimal.NewFromInt(10000),
		PreferedInstallments: 12,
		// guarantor fields missing
	}
	_, err := client.ApplyForLoan(context.Background(), app)
	require.Error(t, err)
	assert.False(t, called, "invalid application must not reach the server")
}

func TestApplyForLoan_SendsRawInputs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "10000", body["principal_amount"])
		assert.EqualValues(t, 12, body["prefered_installments"])
		// Client-side preview figures never travel with the form.
		assert.NotContains(t, body, "emi_amount")
		assert.NotContains(t, body, "total_payable")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"message": map[string]any{
				"loan": map[string]any{"id": 88, "loan_status": "Pending"},
			},
		})
	})

	loan, err := client.ApplyForLoan(context.Background(), LoanApplication{
		PlanID:                2,
		PrincipalAmount:       decimal.NewFromInt(10000),
		PreferedInstallments:  12,
		GuarantorName:         "Ram Prasad",
		GuarantorPhone:        "9898989898",
		GuarantorAddress:      "Ward 4, Ilam",
		GuarantorRelationship: "Brother",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(88), loan.ID)
}

func TestCollectLoanEMI_RejectsNonPositiveAmount(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("request must not be sent")
	})

	err := client.CollectLoanEMI(context.Background(), 5, EMICollection{
		TotalPaid: decimal.Zero,
		PayDate:   "2026-08-31",
	})
	require.Error(t, err)
}

func TestDo_SessionExpiredOn401(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, WithToken("stale"))

	_, err := client.Wallet(context.Background())
	assert.True(t, errors.Is(err, common.ErrSessionExpired))
}

func TestDo_UnavailableOn500(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Wallet(context.Background())
	assert.True(t, errors.Is(err, common.ErrAPIUnavailable))
}

func TestDo_NotFoundOn404(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.LoanDetails(context.Background(), 999)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRequestWithdrawal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/withdrawal", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2500", body["withdrawal_amount"])
		_ = json.NewEncoder(w).Encode(map[string]any{"status": true, "message": "requested"})
	})

	err := client.RequestWithdrawal(context.Background(), WithdrawalRequest{
		WithdrawalAmount: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)
}
