package preparing_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/preparing"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreparingOrder(t *testing.T) {
	p, err := preparing.NewPreparingOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	assert.Equal(t, preparing.WaitingForPreparing, p.Status())
	assert.Nil(t, p.Assignee())
}

func TestPreparingOrder_Assign(t *testing.T) {
	t.Run("waiting task becomes in process", func(t *testing.T) {
		p, err := preparing.NewPreparingOrder(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		employeeID := kernel.NewUUID()

		require.NoError(t, p.Assign(employeeID))
		assert.Equal(t, preparing.InProcess, p.Status())
		require.NotNil(t, p.Assignee())
		assert.True(t, p.Assignee().IsEqual(employeeID))
	})

	t.Run("non-waiting task cannot be assigned", func(t *testing.T) {
		p, err := preparing.NewPreparingOrder(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, p.Assign(kernel.NewUUID()))

		require.ErrorIs(t, p.Assign(kernel.NewUUID()), errs.ErrInvalidStatus)
	})
}

func TestPreparingOrder_Complete(t *testing.T) {
	t.Run("assigned employee completes the task", func(t *testing.T) {
		p, err := preparing.NewPreparingOrder(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		employeeID := kernel.NewUUID()
		require.NoError(t, p.Assign(employeeID))

		require.NoError(t, p.Complete(employeeID))
		assert.Equal(t, preparing.Done, p.Status())
	})

	t.Run("other employee is forbidden", func(t *testing.T) {
		p, err := preparing.NewPreparingOrder(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, p.Assign(kernel.NewUUID()))

		require.ErrorIs(t, p.Complete(kernel.NewUUID()), errs.ErrForbidden)
		assert.Equal(t, preparing.InProcess, p.Status())
	})

	t.Run("unassigned task is forbidden for anyone", func(t *testing.T) {
		p, err := preparing.NewPreparingOrder(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		require.ErrorIs(t, p.Complete(kernel.NewUUID()), errs.ErrForbidden)
	})

	t.Run("done task cannot be completed again", func(t *testing.T) {
		p, err := preparing.NewPreparingOrder(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		employeeID := kernel.NewUUID()
		require.NoError(t, p.Assign(employeeID))
		require.NoError(t, p.Complete(employeeID))

		require.ErrorIs(t, p.Complete(employeeID), errs.ErrInvalidStatus)
	})
}

func TestRestorePreparingOrder(t *testing.T) {
	employeeID := kernel.NewUUID()
	p, err := preparing.RestorePreparingOrder(
		kernel.NewUUID(), kernel.NewUUID(), &employeeID, preparing.InProcess)
	require.NoError(t, err)
	assert.Equal(t, preparing.InProcess, p.Status())

	_, err = preparing.RestorePreparingOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil, preparing.Unknown)
	require.Error(t, err)
}
