package dto

type HealthDTO struct {
	Status     string `json:"status"`
	Equipments int    `json:"equipment"`
	Parameters int    `json:"parameters"`
}
