package delivery_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	assert.Equal(t, delivery.WaitingForDelivery, d.Status())
	assert.Nil(t, d.Assignee())
	assert.Nil(t, d.StartTime())
	assert.Nil(t, d.EndTime())
}

func TestDelivery_Assign(t *testing.T) {
	t.Run("stamps courier and start time", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		courierID := kernel.NewUUID()

		require.NoError(t, d.Assign(courierID))
		assert.Equal(t, delivery.InProcess, d.Status())
		require.NotNil(t, d.Assignee())
		assert.True(t, d.Assignee().IsEqual(courierID))
		require.NotNil(t, d.StartTime())
		assert.Nil(t, d.EndTime())
	})

	t.Run("in-process delivery cannot be reassigned", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		first := kernel.NewUUID()
		require.NoError(t, d.Assign(first))

		require.ErrorIs(t, d.Assign(kernel.NewUUID()), errs.ErrInvalidStatus)
		assert.True(t, d.Assignee().IsEqual(first))
	})
}

func TestDelivery_Complete(t *testing.T) {
	t.Run("assigned courier completes and end time is stamped", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		courierID := kernel.NewUUID()
		require.NoError(t, d.Assign(courierID))

		require.NoError(t, d.Complete(courierID))
		assert.Equal(t, delivery.Done, d.Status())
		require.NotNil(t, d.EndTime())
		assert.False(t, d.EndTime().Before(*d.StartTime()))
	})

	t.Run("other courier is forbidden and status is unchanged", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, d.Assign(kernel.NewUUID()))

		require.ErrorIs(t, d.Complete(kernel.NewUUID()), errs.ErrForbidden)
		assert.Equal(t, delivery.InProcess, d.Status())
		assert.Nil(t, d.EndTime())
	})

	t.Run("waiting delivery cannot be completed", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		require.ErrorIs(t, d.Complete(kernel.NewUUID()), errs.ErrForbidden)
	})

	t.Run("done delivery cannot be completed again", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		courierID := kernel.NewUUID()
		require.NoError(t, d.Assign(courierID))
		require.NoError(t, d.Complete(courierID))

		require.ErrorIs(t, d.Complete(courierID), errs.ErrInvalidStatus)
	})
}

func TestRestoreDelivery(t *testing.T) {
	courierID := kernel.NewUUID()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), &courierID, delivery.InProcess, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, delivery.InProcess, d.Status())

	_, err = delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), nil, delivery.Unknown, nil, nil)
	require.Error(t, err)
}
