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

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	GetCatalog(ctx context.Context) ([]entities.Equipment, []entities.Parameter, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, dto dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, dto dto.UpdateEquipmentDTO) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	bus                 *eventbus.Bus
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		bus:                 bus,
		logger:              logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepository.GetEquipments(ctx)
}

func (s *EquipmentService) GetCatalog(ctx context.Context) ([]entities.Equipment, []entities.Parameter, error) {
	return s.equipmentRepository.GetCatalog(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, dto dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	created, err := s.equipmentRepository.CreateEquipment(ctx, entities.Equipment{
		Name:        dto.Name,
		Description: dto.Description,
		Code:        dto.Code,
	})
	if err != nil {
		s.logger.Error("CreateEquipment: repository error", zap.Any("payload", dto), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Equipment created", zap.Uint64("id", created.ID), zap.String("code", created.Code))
	s.bus.Publish(ctx, events.EquipmentCreatedEvent{Equipment: *created})
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, dto dto.UpdateEquipmentDTO) error {
	changes := entities.Equipment{
		Name:        dto.Name,
		Description: dto.Description,
		Code:        dto.Code,
	}
	if err := s.equipmentRepository.UpdateEquipment(ctx, id, changes); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.EquipmentUpdatedEvent{ID: id, Equipment: changes})
	return nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	orphaned, err := s.equipmentRepository.DeleteEquipment(ctx, id)
	if err != nil {
		return err
	}

	if orphaned > 0 {
		s.logger.Info("Equipment deleted, parameters left orphaned",
			zap.Uint64("id", id),
			zap.Int("orphaned_parameters", orphaned),
		)
	}
	s.bus.Publish(ctx, events.EquipmentDeletedEvent{ID: id, OrphanedParameters: orphaned})
	return nil
}
