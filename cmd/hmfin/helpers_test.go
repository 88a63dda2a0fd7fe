package main

import (
	"testing"

	"github.com/himalayanmicrofin/hmfin/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "whole rupees", input: "10000", want: "10000"},
		{name: "paise", input: "933.33", want: "933.33"},
		{name: "not a number", input: "ten thousand", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("0")
	assert.Error(t, err, "ids start at 1")

	_, err = parseID("-3")
	assert.Error(t, err)

	_, err = parseID("HML000042")
	assert.Error(t, err, "display codes are not accepted as ids")
}

func TestAssignmentCode(t *testing.T) {
	code, err := assignmentCode(7, "FD")
	require.NoError(t, err)
	assert.Equal(t, "HMF000007", code)

	code, err = assignmentCode(7, "RD")
	require.NoError(t, err)
	assert.Equal(t, "HMR000007", code)

	// Anything that is not a deposit category is a loan.
	code, err = assignmentCode(7, "Loan")
	require.NoError(t, err)
	assert.Equal(t, "HML000007", code)
}

func TestDepositCategory(t *testing.T) {
	cat, err := depositCategory("FD")
	require.NoError(t, err)
	assert.Equal(t, format.CategoryFD, cat)

	cat, err = depositCategory("RD")
	require.NoError(t, err)
	assert.Equal(t, format.CategoryRD, cat)

	_, err = depositCategory("SB")
	assert.Error(t, err)
}

func TestCommandWiring(t *testing.T) {
	// Every command group registered on the root must resolve.
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{
		"auth", "profile", "plans", "loans", "deposits", "estimate",
		"wallet", "kyc", "assignments", "collect", "correct", "report", "version",
	} {
		assert.True(t, names[want], "root should have %q subcommand", want)
	}
}

func TestApplyLoanCmdFlags(t *testing.T) {
	cmd := applyLoanCmd()

	for _, name := range []string{
		"plan", "principal", "installments",
		"guarantor-name", "guarantor-phone", "guarantor-address", "guarantor-relationship",
	} {
		assert.NotNil(t, cmd.Flag(name), "apply should have --%s", name)
	}

	assert.Equal(t, "false", cmd.Flag("yes").DefValue, "confirmation should be on by default")
}

func TestEstimateLoanCmdDefaults(t *testing.T) {
	cmd := estimateLoanCmd()

	assert.Equal(t, "Yearly", cmd.Flag("interest-frequency").DefValue)
	assert.Equal(t, "Monthly", cmd.Flag("emi-frequency").DefValue)
}
