package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Bolt M6", quantity, 1250, "pcs")
	require.NoError(t, err)
	return item
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{testItem(t, 5)},
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates draft with item snapshot", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.LinkToFolder())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 5, o.Items()[0].Quantity())
		assert.Equal(t, int64(1250), o.Items()[0].Price())
		assert.Equal(t, "pcs", o.Items()[0].Unit())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero-value client id", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			[]order.Item{testItem(t, 1)}, time.Now())
		require.Error(t, err)
	})

	t.Run("items are copied, not shared", func(t *testing.T) {
		items := []order.Item{testItem(t, 1)}
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, time.Now())
		require.NoError(t, err)

		items[0] = testItem(t, 99)
		assert.Equal(t, 1, o.Items()[0].Quantity())
	})
}

func TestNewItem_Validation(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Bolt M6", 0, 10, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Bolt M6", 1, -1, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 1, 10, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full forward walk", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.SignByEmployee("orders/folder-1"))
		assert.Equal(t, order.SignedByEmployee, o.Status())
		assert.Equal(t, "orders/folder-1", o.LinkToFolder())

		require.NoError(t, o.SignByClient())
		assert.Equal(t, order.SignedByClient, o.Status())

		require.NoError(t, o.Finish())
		assert.Equal(t, order.Finished, o.Status())

		require.NoError(t, o.MarkDeliveryFinished())
		assert.Equal(t, order.DeliveryFinished, o.Status())
	})

	t.Run("sign by employee outside draft fails with cannot assign", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.SignByEmployee("orders/folder-1"))

		err := o.SignByEmployee("orders/folder-2")
		require.ErrorIs(t, err, order.ErrCannotAssignOrder)
		assert.Equal(t, order.SignedByEmployee, o.Status())
		assert.Equal(t, "orders/folder-1", o.LinkToFolder())
	})

	t.Run("sign by employee requires folder link", func(t *testing.T) {
		o := testOrder(t)
		err := o.SignByEmployee("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("finish from draft fails and leaves status unchanged", func(t *testing.T) {
		o := testOrder(t)
		err := o.Finish()
		require.ErrorIs(t, err, errs.ErrInvalidStatus)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("mark delivery finished twice fails", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.SignByEmployee("orders/folder-1"))
		require.NoError(t, o.SignByClient())
		require.NoError(t, o.Finish())
		require.NoError(t, o.MarkDeliveryFinished())

		require.ErrorIs(t, o.MarkDeliveryFinished(), errs.ErrInvalidStatus)
	})
}

func TestOrder_EnsureCanDelete(t *testing.T) {
	t.Run("draft can be deleted", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.EnsureCanDelete())
	})

	t.Run("any non-draft state refuses deletion", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.SignByEmployee("orders/folder-1"))

		require.ErrorIs(t, o.EnsureCanDelete(), order.ErrCannotDeleteOrder)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{testItem(t, 2)},
			order.SignedByClient, time.Now(), "orders/folder-9")
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.SignedByClient, o.Status())
		assert.Equal(t, "orders/folder-9", o.LinkToFolder())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{testItem(t, 2)},
			order.Unknown, time.Now(), "")
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

	o := testOrder(t)
	require.NoError(t, o.Validate())
}
