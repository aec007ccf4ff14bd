// Package workerrepo implements delivery worker persistence.
package workerrepo

import (
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
)

// DeliveryWorkerDTO represents the database row for a delivery worker.
type DeliveryWorkerDTO struct {
	ID          string `gorm:"type:text;primaryKey"`
	StoreID     string `gorm:"type:text;index"`
	Name        string `gorm:"type:text"`
	Role        string `gorm:"type:text;index"`
	WorkedHours float64
}

// TableName specifies the database table name for worker rows.
func (DeliveryWorkerDTO) TableName() string {
	return "delivery_workers"
}

func fromDomain(aggregate *worker.DeliveryWorker) DeliveryWorkerDTO {
	return DeliveryWorkerDTO{
		ID:          aggregate.ID().String(),
		StoreID:     aggregate.StoreID().String(),
		Name:        aggregate.Name(),
		Role:        aggregate.Role().String(),
		WorkedHours: aggregate.WorkedHours(),
	}
}

func toDomain(dto DeliveryWorkerDTO) (*worker.DeliveryWorker, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.NewID(dto.StoreID)
	if err != nil {
		return nil, err
	}

	role, err := worker.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return worker.RestoreDeliveryWorker(id, storeID, dto.Name, role, dto.WorkedHours)
}
