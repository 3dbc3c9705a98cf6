package product_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, quantity int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Bolt M6", quantity, 1250, "pcs")
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		p := testProduct(t, 10)
		assert.Equal(t, "Bolt M6", p.Name())
		assert.Equal(t, 10, p.Quantity())
		assert.Equal(t, int64(1250), p.Price())
		assert.Equal(t, "pcs", p.Unit())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", 10, 1250, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Bolt M6", -1, 1250, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("decrements stock", func(t *testing.T) {
		p := testProduct(t, 10)
		require.NoError(t, p.Reserve(4))
		assert.Equal(t, 6, p.Quantity())
	})

	t.Run("reserving exactly the remaining stock succeeds", func(t *testing.T) {
		p := testProduct(t, 5)
		require.NoError(t, p.Reserve(5))
		assert.Equal(t, 0, p.Quantity())
	})

	t.Run("over-reservation fails and leaves stock unchanged", func(t *testing.T) {
		p := testProduct(t, 5)
		err := p.Reserve(6)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 5, p.Quantity())

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Equal(t, 5, stockErr.Available)
	})

	t.Run("reserving from empty stock fails", func(t *testing.T) {
		p := testProduct(t, 5)
		require.NoError(t, p.Reserve(5))
		require.ErrorIs(t, p.Reserve(1), errs.ErrInsufficientStock)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		p := testProduct(t, 5)
		require.ErrorIs(t, p.Reserve(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, p.Reserve(-2), errs.ErrValueIsOutOfRange)
	})
}

func TestProduct_Restock(t *testing.T) {
	p := testProduct(t, 5)
	require.NoError(t, p.Reserve(5))
	require.NoError(t, p.Restock(5))
	assert.Equal(t, 5, p.Quantity())

	require.ErrorIs(t, p.Restock(0), errs.ErrValueIsInvalid)
}

func TestProduct_Validate(t *testing.T) {
	var zero product.Product
	require.ErrorIs(t, zero.Validate(), product.ErrProductIsNotConstructed)

	var nilProduct *product.Product
	require.ErrorIs(t, nilProduct.Validate(), product.ErrProductIsNotConstructed)

	require.NoError(t, testProduct(t, 1).Validate())
}
