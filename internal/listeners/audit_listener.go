package listeners

import (
	"context"

	"equipment-api/internal/events"
	"equipment-api/pkg/eventbus"

	"go.uber.org/zap"
)

// AuditListener пишет каждое изменение каталога в лог отдельной строкой.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger.Named("audit")}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	for _, name := range []string{
		events.EquipmentCreated,
		events.EquipmentUpdated,
		events.EquipmentDeleted,
		events.ParameterCreated,
		events.ParameterUpdated,
		events.ParameterDeleted,
	} {
		bus.Subscribe(name, l.Handle)
	}
}

func (l *AuditListener) Handle(ctx context.Context, event eventbus.Event) error {
	fields := []zap.Field{zap.String("event", event.Name())}

	switch e := event.(type) {
	case events.EquipmentCreatedEvent:
		fields = append(fields, zap.Uint64("equipment_id", e.Equipment.ID), zap.String("code", e.Equipment.Code))
	case events.EquipmentUpdatedEvent:
		fields = append(fields, zap.Uint64("equipment_id", e.ID), zap.String("code", e.Equipment.Code))
	case events.EquipmentDeletedEvent:
		fields = append(fields, zap.Uint64("equipment_id", e.ID), zap.Int("orphaned_parameters", e.OrphanedParameters))
	case events.ParameterCreatedEvent:
		fields = append(fields,
			zap.Uint64("parameter_id", e.Parameter.ID),
			zap.Uint64("equipment_id", e.Parameter.EquipmentID),
			zap.String("equipment_code", e.Parameter.EquipmentCode),
		)
	case events.ParameterUpdatedEvent:
		fields = append(fields, zap.Uint64("parameter_id", e.ID), zap.String("equipment_code", e.Parameter.EquipmentCode))
	case events.ParameterDeletedEvent:
		fields = append(fields, zap.Uint64("parameter_id", e.ID))
	}

	l.logger.Info("catalog changed", fields...)
	return nil
}
