package responses_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finhub/finhub.go/ledger"
	"github.com/finhub/finhub.go/lib/responses"
)

func TestLedgerError(t *testing.T) {
	tests := []struct {
		err  error
		want responses.ErrorResponse
	}{
		{ledger.ErrAccountNotFound, responses.AccountNotFoundError},
		{ledger.ErrEntryNotFound, responses.EntryNotFoundError},
		{ledger.ErrInsufficientFunds, responses.InsufficientFundsError},
		{ledger.ErrSelfTransfer, responses.SelfTransferError},
		{ledger.ErrInvalidAmount, responses.BadArgumentsError},
	}
	for _, tt := range tests {
		resp, ok := responses.LedgerError(tt.err)
		assert.True(t, ok, tt.err.Error())
		assert.Equal(t, tt.want, resp)
	}
}

func TestLedgerErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("withdraw: %w", ledger.ErrInsufficientFunds)

	resp, ok := responses.LedgerError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, responses.InsufficientFundsError, resp)
}

func TestLedgerErrorUnknown(t *testing.T) {
	resp, ok := responses.LedgerError(errors.New("connection refused"))
	assert.False(t, ok)
	assert.Equal(t, responses.GeneralServerError, resp)
}
