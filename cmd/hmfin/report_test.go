package main

import (
	"testing"
	"time"

	"github.com/himalayanmicrofin/hmfin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFilterFlagsParse(t *testing.T) {
	tests := []struct {
		name     string
		flags    reportFilterFlags
		wantErr  bool
		wantFrom time.Time
	}{
		{
			name:     "date range",
			flags:    reportFilterFlags{from: "2026-08-01", to: "2026-08-31"},
			wantFrom: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "empty filter",
			flags: reportFilterFlags{},
		},
		{
			name:  "plan type loan",
			flags: reportFilterFlags{planType: "Loan"},
		},
		{
			name:    "bad from date",
			flags:   reportFilterFlags{from: "01/08/2026"},
			wantErr: true,
		},
		{
			name:    "bad plan type",
			flags:   reportFilterFlags{planType: "Savings"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := tt.flags.parse()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, filter.From)
			assert.Equal(t, tt.flags.planType, filter.PlanType)
		})
	}
}

func TestReportRecordCode(t *testing.T) {
	tests := []struct {
		planType string
		want     string
	}{
		{planType: "Loan", want: "HML000012"},
		{planType: "FD", want: "HMF000012"},
		{planType: "RD", want: "HMR000012"},
	}

	for _, tt := range tests {
		t.Run(tt.planType, func(t *testing.T) {
			code, err := reportRecordCode(&model.ReportEntry{PlanType: tt.planType, RecordID: 12})
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}
