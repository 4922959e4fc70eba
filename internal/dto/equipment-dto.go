package dto

// PUT заменяет все изменяемые поля, поэтому create и update требуют одно и то же.
type CreateEquipmentDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

type UpdateEquipmentDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Code        string `json:"code" validate:"required"`
}
