package events

import "equipment-api/internal/entities"

const (
	EquipmentCreated = "equipment.created"
	EquipmentUpdated = "equipment.updated"
	EquipmentDeleted = "equipment.deleted"
	ParameterCreated = "parameter.created"
	ParameterUpdated = "parameter.updated"
	ParameterDeleted = "parameter.deleted"
)

type EquipmentCreatedEvent struct {
	Equipment entities.Equipment
}

func (e EquipmentCreatedEvent) Name() string { return EquipmentCreated }

type EquipmentUpdatedEvent struct {
	ID        uint64
	Equipment entities.Equipment
}

func (e EquipmentUpdatedEvent) Name() string { return EquipmentUpdated }

// EquipmentDeletedEvent - параметры удалённого оборудования не удаляются, их число в OrphanedParameters.
type EquipmentDeletedEvent struct {
	ID                 uint64
	OrphanedParameters int
}

func (e EquipmentDeletedEvent) Name() string { return EquipmentDeleted }

type ParameterCreatedEvent struct {
	Parameter entities.Parameter
}

func (e ParameterCreatedEvent) Name() string { return ParameterCreated }

type ParameterUpdatedEvent struct {
	ID        uint64
	Parameter entities.Parameter
}

func (e ParameterUpdatedEvent) Name() string { return ParameterUpdated }

type ParameterDeletedEvent struct {
	ID uint64
}

func (e ParameterDeletedEvent) Name() string { return ParameterDeleted }
