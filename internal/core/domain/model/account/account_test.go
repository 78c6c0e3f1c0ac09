package account_test

import (
	"testing"

	"solarstore/internal/core/domain/model/account"
	"solarstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetails(t *testing.T) {
	t.Run("valid details", func(t *testing.T) {
		details, err := account.NewDetails("0123456789", "First Bank", "PFOS Enterprise")

		require.NoError(t, err)
		require.NoError(t, details.Validate())
		assert.Equal(t, "0123456789", details.AccountNumber())
		assert.Equal(t, "First Bank", details.BankName())
		assert.Equal(t, "PFOS Enterprise", details.AccountName())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := account.NewDetails("", "First Bank", "PFOS Enterprise")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = account.NewDetails("0123456789", "", "PFOS Enterprise")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = account.NewDetails("0123456789", "First Bank", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPlaceholderDetails(t *testing.T) {
	details := account.PlaceholderDetails()

	require.NoError(t, details.Validate())
	assert.Equal(t, "Not available", details.AccountNumber())
	assert.Equal(t, "Not available", details.BankName())
	assert.Equal(t, "Not available", details.AccountName())
}

func TestDetails_Validate_ZeroValue(t *testing.T) {
	var details account.Details
	assert.Equal(t, account.ErrDetailsAreNotConstructed, details.Validate())
}
