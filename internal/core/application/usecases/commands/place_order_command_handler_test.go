package commands_test

import (
	"strings"
	"testing"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/commands"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	var persisted *order.Order

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*order.Order)
		}).
		Return(nil)

	uow := new(MockUoW)
	expectTx(uow)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewPlaceOrderCommandHandler(factory)
	cmd, err := commands.NewPlaceOrderCommand(
		mustID(t, "CUS-5"),
		mustID(t, "ST-CMB-01"),
		kernel.ID{},
		249.50,
		[]order.Item{mustItem(t, "PROD-1", 3, 0.5)},
	)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.OrderID, "ORD-"))
	assert.Equal(t, "PENDING", result.Status)

	require.NotNil(t, persisted)
	assert.Equal(t, order.Pending, persisted.Status())
	assert.Equal(t, order.CarrierUnassigned, persisted.Carrier().Kind())
	assert.InDelta(t, 1.5, persisted.RequiredCapacity(), 1e-9)
	uow.AssertCalled(t, "Commit", mock.Anything)
}

func TestNewPlaceOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		mustID(t, "CUS-5"), mustID(t, "ST-CMB-01"), kernel.ID{}, 10, nil,
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPlaceOrderCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		mustID(t, "CUS-5"), mustID(t, "ST-CMB-01"), kernel.ID{}, -0.01,
		[]order.Item{mustItem(t, "PROD-1", 1, 1)},
	)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
