package dto

// OrderSubmissionDTO — заявка с формы сайта. Ключи повторяют имена полей
// формы (camelCase). Поля не валидируются намеренно: заявка не должна
// теряться из-за кривого телефона, достаточно разобранного JSON.
type OrderSubmissionDTO struct {
	CustomerType string `json:"customerType"`
	CompanyName  string `json:"companyName"`
	INN          string `json:"inn"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Length       string `json:"length"`
	Width        string `json:"width"`
	Height       string `json:"height"`
	Plastic      string `json:"plastic"`
	Color        string `json:"color"`
	Infill       string `json:"infill"`
	Quantity     string `json:"quantity"`
	Description  string `json:"description"`
	FileName     string `json:"fileName"`
	FileBase64   string `json:"fileBase64"`
}

// IsLegal: блок с компанией и ИНН показывается только юрлицам.
func (d OrderSubmissionDTO) IsLegal() bool {
	return d.CustomerType == "legal"
}
