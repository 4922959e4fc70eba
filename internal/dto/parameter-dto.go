package dto

type CreateParameterDTO struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description" validate:"required"`
	EquipmentCode string `json:"equipmentCode" validate:"required"`
	EquipmentID   uint64 `json:"equipmentId"`
}

// EquipmentID принимается как в теле создания, но не применяется.
type UpdateParameterDTO struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description" validate:"required"`
	EquipmentCode string `json:"equipmentCode" validate:"required"`
	EquipmentID   uint64 `json:"equipmentId"`
}
