package repositories

import (
	"context"

	"equipment-api/internal/entities"
	"equipment-api/internal/infrastructure/memdb"
	apperrors "equipment-api/pkg/errors"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	// GetCatalog читает оборудование и все параметры, включая осиротевшие, одним снимком.
	GetCatalog(ctx context.Context) ([]entities.Equipment, []entities.Parameter, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error
	// DeleteEquipment возвращает число параметров, оставшихся с удалённым equipmentId.
	DeleteEquipment(ctx context.Context, id uint64) (int, error)
}

type EquipmentRepository struct {
	storage *memdb.DB
}

func NewEquipmentRepository(storage *memdb.DB) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	var equipments []entities.Equipment
	err := r.storage.View(ctx, func(tx *memdb.Tx) error {
		equipments = tx.Equipments.All()
		for i := range equipments {
			equipments[i].Parameters = parametersOf(tx, equipments[i].ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return equipments, nil
}

func (r *EquipmentRepository) GetCatalog(ctx context.Context) ([]entities.Equipment, []entities.Parameter, error) {
	var (
		equipments []entities.Equipment
		parameters []entities.Parameter
	)
	err := r.storage.View(ctx, func(tx *memdb.Tx) error {
		equipments = tx.Equipments.All()
		for i := range equipments {
			equipments[i].Parameters = parametersOf(tx, equipments[i].ID)
		}
		parameters = tx.Parameters.All()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return equipments, parameters, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	var equipment entities.Equipment
	err := r.storage.View(ctx, func(tx *memdb.Tx) error {
		found, ok := tx.Equipments.Get(id)
		if !ok {
			return apperrors.ErrNotFound
		}
		equipment = found
		equipment.Parameters = parametersOf(tx, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	var created entities.Equipment
	err := r.storage.Update(ctx, func(tx *memdb.Tx) error {
		created = tx.Equipments.Insert(func(id uint64) entities.Equipment {
			equipment.ID = id
			equipment.Parameters = nil
			return equipment
		})
		// Параметры могли быть созданы раньше оборудования с этим id
		created.Parameters = parametersOf(tx, created.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error {
	return r.storage.Update(ctx, func(tx *memdb.Tx) error {
		current, ok := tx.Equipments.Get(id)
		if !ok {
			return apperrors.ErrNotFound
		}
		current.Name = equipment.Name
		current.Description = equipment.Description
		current.Code = equipment.Code
		tx.Equipments.Replace(id, current)
		return nil
	})
}

// DeleteEquipment не трогает параметры: они остаются в хранилище с прежним equipmentId.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) (int, error) {
	var orphaned int
	err := r.storage.Update(ctx, func(tx *memdb.Tx) error {
		if !tx.Equipments.Delete(id) {
			return apperrors.ErrNotFound
		}
		orphaned = tx.EquipmentParameters.Len(id)
		return nil
	})
	return orphaned, err
}

// parametersOf не возвращает nil, в JSON всегда массив.
func parametersOf(tx *memdb.Tx, equipmentID uint64) []entities.Parameter {
	ids := tx.EquipmentParameters.Children(equipmentID)
	out := make([]entities.Parameter, 0, len(ids))
	for _, pid := range ids {
		if p, ok := tx.Parameters.Get(pid); ok {
			out = append(out, p)
		}
	}
	return out
}
