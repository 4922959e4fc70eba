package seeders

import (
	"context"
	"fmt"
	"os"

	"equipment-api/internal/dto"
	"equipment-api/internal/services"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File - формат файла начального наполнения.
//
//	equipment:
//	  - name: Pump
//	    description: Main feed pump
//	    code: PUMP1
//	    parameters:
//	      - name: Pressure
//	        description: Outlet pressure, bar
type File struct {
	Equipment []EquipmentSeed `yaml:"equipment"`
}

type EquipmentSeed struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Code        string          `yaml:"code"`
	Parameters  []ParameterSeed `yaml:"parameters"`
}

// EquipmentCode по умолчанию берётся из code родительского оборудования.
type ParameterSeed struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	EquipmentCode string `yaml:"equipmentCode"`
}

type Seeder struct {
	equipmentService services.EquipmentServiceInterface
	parameterService services.ParameterServiceInterface
	validate         *validator.Validate
	logger           *zap.Logger
}

func NewSeeder(
	equipmentService services.EquipmentServiceInterface,
	parameterService services.ParameterServiceInterface,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		equipmentService: equipmentService,
		parameterService: parameterService,
		validate:         validator.New(),
		logger:           logger,
	}
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл сидов: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("не удалось разобрать файл сидов %s: %w", path, err)
	}
	return &f, nil
}

func (s *Seeder) SeedFile(ctx context.Context, path string) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	return s.Seed(ctx, f)
}

// Seed создаёт записи через сервисы, поэтому id и индекс параметров
// получаются такими же, как при создании через HTTP. Файл проверяется целиком
// до первой записи: невалидный файл не оставляет половину данных.
func (s *Seeder) Seed(ctx context.Context, f *File) error {
	if err := s.check(f); err != nil {
		return err
	}

	var parameters int
	for i, e := range f.Equipment {
		created, err := s.equipmentService.CreateEquipment(ctx, equipmentDTO(e))
		if err != nil {
			return fmt.Errorf("equipment #%d (%s): %w", i, e.Code, err)
		}

		for j, p := range e.Parameters {
			if _, err := s.parameterService.CreateParameter(ctx, parameterDTO(p, created.ID, created.Code)); err != nil {
				return fmt.Errorf("equipment #%d (%s) parameter #%d: %w", i, e.Code, j, err)
			}
			parameters++
		}
	}

	s.logger.Info("Seed data loaded",
		zap.Int("equipment", len(f.Equipment)),
		zap.Int("parameters", parameters),
	)
	return nil
}

func (s *Seeder) check(f *File) error {
	for i, e := range f.Equipment {
		if err := s.validate.Struct(equipmentDTO(e)); err != nil {
			return fmt.Errorf("equipment #%d (%s): %w", i, e.Code, err)
		}
		for j, p := range e.Parameters {
			if err := s.validate.Struct(parameterDTO(p, 0, e.Code)); err != nil {
				return fmt.Errorf("equipment #%d (%s) parameter #%d: %w", i, e.Code, j, err)
			}
		}
	}
	return nil
}

func equipmentDTO(e EquipmentSeed) dto.CreateEquipmentDTO {
	return dto.CreateEquipmentDTO{
		Name:        e.Name,
		Description: e.Description,
		Code:        e.Code,
	}
}

func parameterDTO(p ParameterSeed, equipmentID uint64, equipmentCode string) dto.CreateParameterDTO {
	code := p.EquipmentCode
	if code == "" {
		code = equipmentCode
	}
	return dto.CreateParameterDTO{
		Name:          p.Name,
		Description:   p.Description,
		EquipmentCode: code,
		EquipmentID:   equipmentID,
	}
}
