// Package orderrepo implements order persistence. It maps the order
// aggregate to the orders and order_items tables and reconstructs the
// carrier variant from the persisted status and carrier columns.
package orderrepo

import (
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// OrderDTO represents the database row for an order aggregate. Carrier
// columns are nullable and filled in as the order advances; they are never
// cleared, so a delivered order keeps its full routing history.
type OrderDTO struct {
	ID          string  `gorm:"type:text;primaryKey"`
	CustomerID  string  `gorm:"type:text;index"`
	StoreID     string  `gorm:"type:text;index"`
	SubCityID   *string `gorm:"type:text"`
	OrderedAt   time.Time
	TotalPrice  float64
	Status      string         `gorm:"type:text;index"`
	TripID      *string        `gorm:"type:text;index"`
	TruckID     *string        `gorm:"type:text"`
	DriverID    *string        `gorm:"type:text;index"`
	AssistantID *string        `gorm:"type:text"`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line item.
type OrderItemDTO struct {
	OrderID   string `gorm:"type:text;primaryKey"`
	ProductID string `gorm:"type:text;primaryKey"`
	Quantity  int
	SpaceRate float64
}

// TableName specifies the database table name for line item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		StoreID:    aggregate.StoreID().String(),
		OrderedAt:  aggregate.OrderedAt(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     aggregate.Status().String(),
	}

	if !aggregate.SubCityID().IsZero() {
		dto.SubCityID = stringPtr(aggregate.SubCityID().String())
	}

	carrier := aggregate.Carrier()
	switch carrier.Kind() {
	case order.CarrierInTransit:
		dto.TripID = stringPtr(carrier.TripID().String())
	case order.CarrierOnTruck:
		dto.TruckID = stringPtr(carrier.TruckID().String())
		dto.DriverID = stringPtr(carrier.DriverID().String())
		dto.AssistantID = stringPtr(carrier.AssistantID().String())
	case order.CarrierDelivered:
		dto.DriverID = stringPtr(carrier.DriverID().String())
	case order.CarrierUnassigned, order.CarrierInStore:
		// no extra columns: the unassigned carrier is empty and the
		// in-store carrier duplicates the order's own store
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().String(),
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			SpaceRate: item.SpaceRate(),
		})
	}
	dto.Items = items

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.NewID(dto.StoreID)
	if err != nil {
		return nil, err
	}

	var subCityID kernel.ID
	if dto.SubCityID != nil {
		subCityID, err = kernel.NewID(*dto.SubCityID)
		if err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.NewID(itemDTO.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity, itemDTO.SpaceRate)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	carrier, err := carrierFromDTO(dto, status, storeID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, storeID, subCityID,
		dto.OrderedAt, dto.TotalPrice, items, status, carrier,
	)
}

// carrierFromDTO rebuilds the carrier variant matching the persisted status.
// Rows whose carrier columns do not support their status are rejected.
func carrierFromDTO(dto OrderDTO, status order.Status, storeID kernel.ID) (order.Carrier, error) {
	switch status {
	case order.Pending:
		return order.UnassignedCarrier(), nil

	case order.OnTrain:
		tripID, err := idFromColumn(dto.TripID, "tripID")
		if err != nil {
			return order.Carrier{}, err
		}
		return order.InTransitCarrier(tripID)

	case order.InStore:
		return order.InStoreCarrier(storeID)

	case order.OnTruck:
		truckID, err := idFromColumn(dto.TruckID, "truckID")
		if err != nil {
			return order.Carrier{}, err
		}
		driverID, err := idFromColumn(dto.DriverID, "driverID")
		if err != nil {
			return order.Carrier{}, err
		}
		assistantID, err := idFromColumn(dto.AssistantID, "assistantID")
		if err != nil {
			return order.Carrier{}, err
		}
		return order.OnTruckCarrier(truckID, driverID, assistantID)

	case order.Delivered:
		driverID, err := idFromColumn(dto.DriverID, "driverID")
		if err != nil {
			return order.Carrier{}, err
		}
		return order.DeliveredCarrier(driverID)
	}

	return order.Carrier{}, errs.NewValueIsInvalidError("status")
}

func idFromColumn(column *string, paramName string) (kernel.ID, error) {
	if column == nil {
		return kernel.ID{}, errs.NewValueIsRequiredError(paramName)
	}
	return kernel.NewID(*column)
}

func stringPtr(s string) *string {
	return &s
}
