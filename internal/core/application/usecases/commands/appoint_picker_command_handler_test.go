package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/preparing"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppointPickerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	taskID := kernel.NewUUID()
	employeeID := kernel.NewUUID()

	testEmployee, err := staff.NewEmployee(employeeID, "Alice Smith")
	require.NoError(t, err)
	testTask, err := preparing.NewPreparingOrder(taskID, kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewAppointPickerCommand(taskID, employeeID)
	require.NoError(t, err)

	employeeRepo := new(MockEmployeeRepository)
	preparingRepo := new(MockPreparingOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Get", ctx, employeeID).Return(testEmployee, nil).Once(),
		uow.On("PreparingOrderRepository").Return(preparingRepo).Once(),
		preparingRepo.On("Get", ctx, taskID).Return(testTask, nil).Once(),
		preparingRepo.On("Update", ctx, mock.AnythingOfType("*preparing.PreparingOrder")).Return(nil).Once(),
		employeeRepo.On("Update", ctx, mock.AnythingOfType("*staff.Employee")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPreparingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAppointPickerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, testEmployee.IsActive())
	assert.Equal(t, preparing.InProcess, testTask.Status())
	require.NotNil(t, testTask.Assignee())
	assert.True(t, testTask.Assignee().IsEqual(employeeID))
	employeeRepo.AssertExpectations(t)
	preparingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAppointPickerCommandHandler_Handle_BusyEmployee(t *testing.T) {
	ctx := t.Context()

	taskID := kernel.NewUUID()
	employeeID := kernel.NewUUID()

	testEmployee, err := staff.RestoreEmployee(employeeID, "Alice Smith", false)
	require.NoError(t, err)
	testTask, err := preparing.NewPreparingOrder(taskID, kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewAppointPickerCommand(taskID, employeeID)
	require.NoError(t, err)

	employeeRepo := new(MockEmployeeRepository)
	preparingRepo := new(MockPreparingOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Get", ctx, employeeID).Return(testEmployee, nil).Once(),
		uow.On("PreparingOrderRepository").Return(preparingRepo).Once(),
		preparingRepo.On("Get", ctx, taskID).Return(testTask, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPreparingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAppointPickerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidStatus)
	assert.Equal(t, preparing.WaitingForPreparing, testTask.Status())
	preparingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
