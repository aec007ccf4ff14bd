// Package triprepo implements trip persistence. It maps the trip aggregate
// to the trips table and its reserved orders to the trip_orders junction.
package triprepo

import (
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/trip"
)

// TripDTO represents the database row for a trip aggregate. The
// available_capacity column is the authoritative capacity ledger; it only
// ever decreases within a trip's lifetime.
type TripDTO struct {
	ID                 string `gorm:"type:text;primaryKey"`
	DestinationStoreID string `gorm:"type:text;index"`
	DepartureDate      time.Time
	DepartureTime      string `gorm:"type:text"`
	TotalCapacity      float64
	AvailableCapacity  float64
	Orders             []TripOrderDTO `gorm:"foreignKey:TripID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for trip rows.
func (TripDTO) TableName() string {
	return "trips"
}

// TripOrderDTO represents one reserved order on a trip.
type TripOrderDTO struct {
	TripID  string `gorm:"type:text;primaryKey"`
	OrderID string `gorm:"type:text;primaryKey"`
}

// TableName specifies the database table name for reservation rows.
func (TripOrderDTO) TableName() string {
	return "trip_orders"
}

func fromDomain(aggregate *trip.Trip) TripDTO {
	orders := make([]TripOrderDTO, 0, len(aggregate.OrderIDs()))
	for _, orderID := range aggregate.OrderIDs() {
		orders = append(orders, TripOrderDTO{
			TripID:  aggregate.ID().String(),
			OrderID: orderID.String(),
		})
	}

	return TripDTO{
		ID:                 aggregate.ID().String(),
		DestinationStoreID: aggregate.DestinationStoreID().String(),
		DepartureDate:      aggregate.DepartureDate(),
		DepartureTime:      aggregate.DepartureTime(),
		TotalCapacity:      aggregate.TotalCapacity(),
		AvailableCapacity:  aggregate.AvailableCapacity(),
		Orders:             orders,
	}
}

func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.NewID(dto.DestinationStoreID)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.ID, 0, len(dto.Orders))
	for _, orderDTO := range dto.Orders {
		orderID, orderErr := kernel.NewID(orderDTO.OrderID)
		if orderErr != nil {
			return nil, orderErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return trip.RestoreTrip(
		id, storeID,
		dto.DepartureDate, dto.DepartureTime,
		dto.TotalCapacity, dto.AvailableCapacity,
		orderIDs,
	)
}
