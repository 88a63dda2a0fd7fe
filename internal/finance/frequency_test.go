package finance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodsPerYear(t *testing.T) {
	tests := []struct {
		freq RateFrequency
		want int64
	}{
		{Daily, 365},
		{Weekly, 52},
		{Monthly, 12},
		{Quarterly, 4},
		{HalfYearly, 2},
		{Yearly, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			got, err := PeriodsPerYear(tt.freq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodsPerYear_Unsupported(t *testing.T) {
	_, err := PeriodsPerYear(RateFrequency("Fortnightly"))
	require.Error(t, err)

	var freqErr *UnsupportedFrequencyError
	require.True(t, errors.As(err, &freqErr))
	assert.Equal(t, "Fortnightly", freqErr.Label)
	assert.Contains(t, err.Error(), "Fortnightly")
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		label   string
		want    RateFrequency
		wantErr bool
	}{
		{label: "Monthly", want: Monthly},
		{label: "Weekly", want: Weekly},
		{label: "Daily", want: Daily},
		{label: "Quarterly", want: Quarterly},
		{label: "HalfYearly", want: HalfYearly},
		{label: "Half-Yearly", want: HalfYearly},
		{label: "Half Yearly", want: HalfYearly},
		{label: "Yearly", want: Yearly},
		{label: "Fortnightly", wantErr: true},
		{label: "monthly", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseFrequency(tt.label)
			if tt.wantErr {
				var freqErr *UnsupportedFrequencyError
				require.True(t, errors.As(err, &freqErr))
				assert.Equal(t, tt.label, freqErr.Label)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
