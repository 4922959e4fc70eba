package services

import (
	"context"

	"equipment-api/internal/dto"
	"equipment-api/internal/entities"
	"equipment-api/internal/events"
	"equipment-api/internal/repositories"
	"equipment-api/pkg/eventbus"

	"go.uber.org/zap"
)

type ParameterServiceInterface interface {
	GetParameters(ctx context.Context) ([]entities.Parameter, error)
	FindParameter(ctx context.Context, id uint64) (*entities.Parameter, error)
	CreateParameter(ctx context.Context, dto dto.CreateParameterDTO) (*entities.Parameter, error)
	UpdateParameter(ctx context.Context, id uint64, dto dto.UpdateParameterDTO) error
	DeleteParameter(ctx context.Context, id uint64) error
}

type ParameterService struct {
	parameterRepository repositories.ParameterRepositoryInterface
	bus                 *eventbus.Bus
	logger              *zap.Logger
}

func NewParameterService(parameterRepository repositories.ParameterRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *ParameterService {
	return &ParameterService{
		parameterRepository: parameterRepository,
		bus:                 bus,
		logger:              logger,
	}
}

func (s *ParameterService) GetParameters(ctx context.Context) ([]entities.Parameter, error) {
	return s.parameterRepository.GetParameters(ctx)
}

func (s *ParameterService) FindParameter(ctx context.Context, id uint64) (*entities.Parameter, error) {
	return s.parameterRepository.FindParameter(ctx, id)
}

// CreateParameter принимает equipmentId и equipmentCode как есть, без сверки с оборудованием.
func (s *ParameterService) CreateParameter(ctx context.Context, dto dto.CreateParameterDTO) (*entities.Parameter, error) {
	created, err := s.parameterRepository.CreateParameter(ctx, entities.Parameter{
		Name:          dto.Name,
		Description:   dto.Description,
		EquipmentCode: dto.EquipmentCode,
		EquipmentID:   dto.EquipmentID,
	})
	if err != nil {
		s.logger.Error("CreateParameter: repository error", zap.Any("payload", dto), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Parameter created",
		zap.Uint64("id", created.ID),
		zap.Uint64("equipment_id", created.EquipmentID),
	)
	s.bus.Publish(ctx, events.ParameterCreatedEvent{Parameter: *created})
	return created, nil
}

func (s *ParameterService) UpdateParameter(ctx context.Context, id uint64, dto dto.UpdateParameterDTO) error {
	changes := entities.Parameter{
		Name:          dto.Name,
		Description:   dto.Description,
		EquipmentCode: dto.EquipmentCode,
	}
	if err := s.parameterRepository.UpdateParameter(ctx, id, changes); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.ParameterUpdatedEvent{ID: id, Parameter: changes})
	return nil
}

func (s *ParameterService) DeleteParameter(ctx context.Context, id uint64) error {
	if err := s.parameterRepository.DeleteParameter(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.ParameterDeletedEvent{ID: id})
	return nil
}
