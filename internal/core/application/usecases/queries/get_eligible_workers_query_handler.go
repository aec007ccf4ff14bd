package queries

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"

	"gorm.io/gorm"
)

// GetEligibleWorkersQueryHandler lists a store's delivery roster with the
// weekly hour gate evaluated per worker.
type GetEligibleWorkersQueryHandler struct {
	db *gorm.DB
}

// NewGetEligibleWorkersQueryHandler creates a handler for roster queries.
func NewGetEligibleWorkersQueryHandler(db *gorm.DB) GetEligibleWorkersQueryHandler {
	return GetEligibleWorkersQueryHandler{db: db}
}

// Handle executes the query. The eligibility flag uses the same strict
// ceiling as the assignment gate: exactly 40 hours is ineligible.
func (h GetEligibleWorkersQueryHandler) Handle(
	ctx context.Context,
	query GetEligibleWorkersQuery,
) ([]GetEligibleWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]GetEligibleWorkersQueryResponse, 0)

	sql := `
		SELECT
			id,
			name,
			role,
			worked_hours
		FROM delivery_workers
		WHERE store_id = ?
	`
	args := []any{query.StoreID().String()}

	if query.Role() != worker.RoleUnknown {
		sql += " AND role = ?"
		args = append(args, query.Role().String())
	}

	sql += " ORDER BY role, name, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetEligibleWorkersQueryResponse

		err = rows.Scan(
			&resp.WorkerID,
			&resp.Name,
			&resp.Role,
			&resp.WorkedHours,
		)
		if err != nil {
			return nil, err
		}

		resp.CanAssign = resp.WorkedHours < worker.WeeklyHourCeiling
		workers = append(workers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
