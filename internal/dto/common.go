package dto

// DeleteDTO: тело DELETE-запросов; ресурс определяется путём, запись — id.
type DeleteDTO struct {
	ID uint64 `json:"id"`
}
