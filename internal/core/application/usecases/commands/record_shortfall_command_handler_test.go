package commands_test

import (
	"testing"

	"deliverypay/internal/core/application/usecases/commands"
	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordShortfallCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierAggregate := testCourier(t)
	shortfallID := kernel.NewUUID()

	cmd, err := commands.NewRecordShortfallCommand(
		shortfallID, courierAggregate.ID(), kernel.MoneyFromInt(700), testReportDate(t))
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	cashRepo := new(MockCashRepository)
	uow := new(MockCashUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", mock.Anything, courierAggregate.ID()).Return(courierAggregate, nil).Once(),
		uow.On("CashRepository").Return(cashRepo).Once(),
		cashRepo.On("AddShortfall", mock.Anything, mock.MatchedBy(func(s *courier.Shortfall) bool {
			return s.ID() == shortfallID &&
				s.CourierID() == courierAggregate.ID() &&
				s.Amount().IsEqual(kernel.MoneyFromInt(700)) &&
				s.Status() == courier.ShortfallStatusPending
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCashUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShortfallCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	cashRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewRecordShortfallCommand_Validation(t *testing.T) {
	t.Run("should reject non positive amount", func(t *testing.T) {
		_, err := commands.NewRecordShortfallCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.ZeroMoney(), testReportDate(t))
		require.Error(t, err)
	})

	t.Run("should reject non constructed command", func(t *testing.T) {
		cmd := commands.RecordShortfallCommand{}
		require.Error(t, cmd.Validate())
	})
}
