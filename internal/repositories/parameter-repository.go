package repositories

import (
	"context"

	"equipment-api/internal/entities"
	"equipment-api/internal/infrastructure/memdb"
	apperrors "equipment-api/pkg/errors"
)

type ParameterRepositoryInterface interface {
	GetParameters(ctx context.Context) ([]entities.Parameter, error)
	FindParameter(ctx context.Context, id uint64) (*entities.Parameter, error)
	CreateParameter(ctx context.Context, parameter entities.Parameter) (*entities.Parameter, error)
	UpdateParameter(ctx context.Context, id uint64, parameter entities.Parameter) error
	DeleteParameter(ctx context.Context, id uint64) error
}

type ParameterRepository struct {
	storage *memdb.DB
}

func NewParameterRepository(storage *memdb.DB) ParameterRepositoryInterface {
	return &ParameterRepository{
		storage: storage,
	}
}

func (r *ParameterRepository) GetParameters(ctx context.Context) ([]entities.Parameter, error) {
	var parameters []entities.Parameter
	err := r.storage.View(ctx, func(tx *memdb.Tx) error {
		parameters = tx.Parameters.All()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parameters, nil
}

func (r *ParameterRepository) FindParameter(ctx context.Context, id uint64) (*entities.Parameter, error) {
	var parameter entities.Parameter
	err := r.storage.View(ctx, func(tx *memdb.Tx) error {
		found, ok := tx.Parameters.Get(id)
		if !ok {
			return apperrors.ErrNotFound
		}
		parameter = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &parameter, nil
}

// CreateParameter не проверяет существование оборудования: ссылка индексируется как есть.
func (r *ParameterRepository) CreateParameter(ctx context.Context, parameter entities.Parameter) (*entities.Parameter, error) {
	var created entities.Parameter
	err := r.storage.Update(ctx, func(tx *memdb.Tx) error {
		created = tx.Parameters.Insert(func(id uint64) entities.Parameter {
			parameter.ID = id
			return parameter
		})
		tx.EquipmentParameters.Add(created.EquipmentID, created.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateParameter не меняет EquipmentID, индекс не трогаем.
func (r *ParameterRepository) UpdateParameter(ctx context.Context, id uint64, parameter entities.Parameter) error {
	return r.storage.Update(ctx, func(tx *memdb.Tx) error {
		current, ok := tx.Parameters.Get(id)
		if !ok {
			return apperrors.ErrNotFound
		}
		current.Name = parameter.Name
		current.Description = parameter.Description
		current.EquipmentCode = parameter.EquipmentCode
		tx.Parameters.Replace(id, current)
		return nil
	})
}

func (r *ParameterRepository) DeleteParameter(ctx context.Context, id uint64) error {
	return r.storage.Update(ctx, func(tx *memdb.Tx) error {
		current, ok := tx.Parameters.Get(id)
		if !ok {
			return apperrors.ErrNotFound
		}
		tx.Parameters.Delete(id)
		tx.EquipmentParameters.Remove(current.EquipmentID, id)
		return nil
	})
}
