package queries

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler lists the dispatch backlog with per-order
// capacity requirements.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for backlog queries.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query. Oldest orders come first so the dispatcher
// works the backlog in arrival sequence.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.store_id,
			o.ordered_at,
			o.total_price,
			COALESCE(SUM(i.quantity * i.space_rate), 0) AS required_capacity
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ?
		GROUP BY o.id, o.store_id, o.ordered_at, o.total_price
		ORDER BY o.ordered_at, o.id
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingOrdersQueryResponse

		err = rows.Scan(
			&resp.OrderID,
			&resp.StoreID,
			&resp.OrderedAt,
			&resp.TotalPrice,
			&resp.RequiredCapacity,
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
