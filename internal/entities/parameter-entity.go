package entities

type Parameter struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Копия Equipment.Code, с оборудованием не сверяется
	EquipmentCode string `json:"equipmentCode"`
	EquipmentID   uint64 `json:"equipmentId"`
}
