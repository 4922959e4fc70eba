package entities

type Equipment struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Code        string `json:"code"`

	// Заполняется из индекса при чтении, в таблице не хранится
	Parameters []Parameter `json:"parameters"`
}
