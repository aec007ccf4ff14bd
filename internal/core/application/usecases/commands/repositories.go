// Package commands contains the write operations of the fulfillment pipeline.
// Each transition is a command/handler pair following one pattern: validate
// the command, open a unit of work, re-read current state under row locks,
// check the precondition, apply the status write and any ledger mutation, and
// commit, or abort entirely and leave every record unchanged.
package commands

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories its transition
// touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// WorkerRepoFactory provides access to the worker repository within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// OrderUoW manages transactions for order-only transitions
	// (store acceptance, delivery confirmation, order placement).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions spanning the order and the trip
	// capacity ledger for the train dispatch transition.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		TripRepoFactory
	}

	// DispatchUoWFactory creates dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// CrewUoW manages transactions spanning the order and the delivery
	// workers for the truck assignment transition.
	CrewUoW interface {
		TxManager
		OrderRepoFactory
		WorkerRepoFactory
	}

	// CrewUoWFactory creates crew unit of work instances.
	CrewUoWFactory interface {
		Create() CrewUoW
	}

	// WorkerUoW manages transactions for worker-only operations
	// (hour accrual, weekly reset).
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	// WorkerUoWFactory creates worker unit of work instances.
	WorkerUoWFactory interface {
		Create() WorkerUoW
	}
)
