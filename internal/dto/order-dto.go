package dto

import "github.com/aarondl/null/v8"

// OrderDTO: строка заявки для админ-панели, все колонки таблицы.
// Необязательные колонки сериализуются как null, когда пусты.
type OrderDTO struct {
	ID           uint64       `json:"id"`
	CustomerType string       `json:"customer_type"`
	CompanyName  null.String  `json:"company_name"`
	INN          null.String  `json:"inn"`
	Email        string       `json:"email"`
	Phone        null.String  `json:"phone"`
	Length       null.Float64 `json:"length"`
	Width        null.Float64 `json:"width"`
	Height       null.Float64 `json:"height"`
	PlasticType  null.String  `json:"plastic_type"`
	Color        null.String  `json:"color"`
	Infill       null.Int     `json:"infill"`
	Quantity     int          `json:"quantity"`
	Description  null.String  `json:"description"`
	FileURL      null.String  `json:"file_url"`
	FileName     null.String  `json:"file_name"`
	Status       string       `json:"status"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    null.String  `json:"updated_at"`
}

// UpdateOrderStatusDTO: тело POST /api/orders/status.
// Отсутствие полей контроллер проверяет сам, чтобы вернуть
// оригинальное сообщение "Missing order_id or status".
type UpdateOrderStatusDTO struct {
	OrderID uint64 `json:"order_id"`
	Status  string `json:"status"`
}
