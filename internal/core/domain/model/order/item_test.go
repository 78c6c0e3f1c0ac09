package order_test

import (
	"testing"

	"solarstore/internal/core/domain/model/order"
	"solarstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem("Solar Panel 300W", decimal.NewFromInt(1000), 2)

		require.NoError(t, err)
		assert.Equal(t, "Solar Panel 300W", item.Name())
		assert.True(t, item.UnitPrice().Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(2000)))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := order.NewItem("", decimal.NewFromInt(10), 1)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero price", func(t *testing.T) {
		_, err := order.NewItem("Inverter", decimal.Zero, 1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := order.NewItem("Inverter", decimal.NewFromInt(-5), 1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem("Battery", decimal.NewFromInt(500), 0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewItem("Battery", decimal.NewFromInt(500), -3)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItem_Validate_ZeroValue(t *testing.T) {
	var item order.Item
	assert.Equal(t, order.ErrItemIsNotConstructed, item.Validate())
}

func TestItem_Subtotal_FractionalPrice(t *testing.T) {
	item, err := order.NewItem("Cable", decimal.RequireFromString("19.99"), 3)

	require.NoError(t, err)
	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("59.97")))
}

func TestTotalOf(t *testing.T) {
	panel, _ := order.NewItem("Panel", decimal.NewFromInt(1000), 2)
	battery, _ := order.NewItem("Battery", decimal.RequireFromString("499.50"), 1)

	total := order.TotalOf([]order.Item{panel, battery})

	assert.True(t, total.Equal(decimal.RequireFromString("2499.50")))
	assert.True(t, order.TotalOf(nil).IsZero())
}
