package queries

import (
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrGetEligibleWorkersQueryIsNotConstructed = errors.New(
	"GetEligibleWorkersQuery must be created via NewGetEligibleWorkersQuery constructor",
)

// GetEligibleWorkersQuery retrieves a store's delivery workers with their
// assignment eligibility, optionally narrowed to one role. Ineligible workers
// are included with the flag down rather than filtered out, so a roster view
// can show who is over hours.
type GetEligibleWorkersQuery struct {
	storeID kernel.ID
	role    worker.Role

	guard guard.ConstructorGuard
}

// NewGetEligibleWorkersQuery creates a query for the given store's workers.
// RoleUnknown lists the whole roster; RoleDriver or RoleAssistant narrows it.
func NewGetEligibleWorkersQuery(storeID kernel.ID, role worker.Role) (GetEligibleWorkersQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetEligibleWorkersQuery{}, err
	}

	if role != worker.RoleUnknown {
		if err := role.Validate(); err != nil {
			return GetEligibleWorkersQuery{}, err
		}
	}

	return GetEligibleWorkersQuery{
		storeID: storeID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEligibleWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleWorkersQueryIsNotConstructed)
}

// StoreID returns the store whose roster is listed.
func (q GetEligibleWorkersQuery) StoreID() kernel.ID {
	return q.storeID
}

// Role returns the role filter, RoleUnknown for the full roster.
func (q GetEligibleWorkersQuery) Role() worker.Role {
	return q.role
}

// GetEligibleWorkersQueryResponse is one roster row.
type GetEligibleWorkersQueryResponse struct {
	WorkerID    string
	Name        string
	Role        string
	WorkedHours float64
	CanAssign   bool
}
