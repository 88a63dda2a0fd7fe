package format

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "₹0.00"},
		{"7", "₹7.00"},
		{"933.33", "₹933.33"},
		{"1000", "₹1,000.00"},
		{"1000.00", "₹1,000.00"},
		{"11200", "₹11,200.00"},
		{"123456.5", "₹123,456.50"},
		{"1234567.89", "₹1,234,567.89"},
		{"-500", "-₹500.00"},
		{"-1234.5", "-₹1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(dec(t, tt.amount)))
		})
	}
}

func TestCurrency_TrailingZerosIrrelevant(t *testing.T) {
	// 1000 and 1000.00 must render identically.
	assert.Equal(t, Currency(dec(t, "1000")), Currency(dec(t, "1000.00")))
	assert.Equal(t, Currency(dec(t, "5400")), Currency(dec(t, "5400.000")))
}

func TestRecordID(t *testing.T) {
	tests := []struct {
		name     string
		category IDCategory
		want     string
		id       int64
	}{
		{name: "user padded", category: CategoryUser, id: 7, want: "HMU000007"},
		{name: "user at width boundary", category: CategoryUser, id: 123456, want: "HMU123456"},
		{name: "user beyond width", category: CategoryUser, id: 1234567, want: "HMU1234567"},
		{name: "loan", category: CategoryLoan, id: 42, want: "HML000042"},
		{name: "fixed deposit", category: CategoryFD, id: 9, want: "HMF000009"},
		{name: "recurring deposit", category: CategoryRD, id: 310, want: "HMR000310"},
		{name: "withdrawal short pad", category: CategoryWithdrawal, id: 3, want: "HMW03"},
		{name: "withdrawal beyond pad", category: CategoryWithdrawal, id: 157, want: "HMW157"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecordID(tt.id, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordID_Injective(t *testing.T) {
	categories := []IDCategory{CategoryUser, CategoryLoan, CategoryFD, CategoryRD}
	seen := make(map[string]bool)

	for _, cat := range categories {
		for id := int64(0); id < 200; id++ {
			code, err := RecordID(id, cat)
			require.NoError(t, err)
			assert.False(t, seen[code], "duplicate code %s", code)
			seen[code] = true
		}
	}
}

func TestRecordID_UnknownCategory(t *testing.T) {
	_, err := RecordID(1, IDCategory("Plan"))
	var catErr *UnsupportedIDCategoryError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, IDCategory("Plan"), catErr.Category)
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plus country code", raw: "+919812345678", want: "98123 45678"},
		{name: "bare country code", raw: "919812345678", want: "98123 45678"},
		{name: "leading zero", raw: "09812345678", want: "98123 45678"},
		{name: "plain ten digits", raw: "9812345678", want: "98123 45678"},
		{name: "already grouped", raw: "98123 45678", want: "98123 45678"},
		{name: "dashed", raw: "98123-45678", want: "98123 45678"},
		{name: "too short passes through", raw: "12345", want: "12345"},
		{name: "too long passes through", raw: "981234567890", want: "981234567890"},
		{name: "non numeric passes through", raw: "landline", want: "landline"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.raw))
		})
	}
}
