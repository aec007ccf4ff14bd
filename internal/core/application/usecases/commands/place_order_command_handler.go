package commands

import (
	"context"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
)

// PlaceOrderResult reports the identifier and status of a freshly
// placed order.
type PlaceOrderResult struct {
	OrderID string
	Status  string
}

// PlaceOrderCommandHandler creates new orders in PENDING status.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. Generates the order
// identifier, builds the aggregate in PENDING status, and persists it with
// its line items in one transaction.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	orderID := kernel.NewGeneratedID("ORD")

	newOrder, err := order.NewOrder(
		orderID,
		cmd.CustomerID(),
		cmd.StoreID(),
		cmd.SubCityID(),
		time.Now().UTC(),
		cmd.TotalPrice(),
		cmd.Items(),
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()

	err = inTransaction(ctx, uow, func(ctx context.Context) error {
		return uow.OrderRepository().Add(ctx, newOrder)
	})
	if err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		OrderID: newOrder.ID().String(),
		Status:  newOrder.Status().String(),
	}, nil
}
