package queries

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler lists the orders a driver still has to deliver.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver load queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders in TRUCK status are the driver's current
// load; DELIVERED orders stay on the list as their completed history. The
// COALESCE guards rows whose truck column was never written.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]GetDriverOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDriverOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			store_id,
			COALESCE(truck_id, '') AS truck_id,
			status,
			ordered_at,
			total_price
		FROM orders
		WHERE driver_id = ?
		  AND status IN (?, ?)
		ORDER BY ordered_at, id
	`, query.DriverID().String(), order.OnTruck.String(), order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDriverOrdersQueryResponse

		err = rows.Scan(
			&resp.OrderID,
			&resp.StoreID,
			&resp.TruckID,
			&resp.Status,
			&resp.OrderedAt,
			&resp.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
