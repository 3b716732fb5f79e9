package dto

import "github.com/aarondl/null/v8"

// CreateClientDTO: что админка присылает для добавления логотипа клиента.
type CreateClientDTO struct {
	Name         string `json:"name" validate:"required"`
	LogoURL      string `json:"logo_url" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    *bool  `json:"is_visible"`
}

// UpdateClientDTO: частичное обновление, незаполненные поля не трогаются.
type UpdateClientDTO struct {
	ID           uint64      `json:"id"`
	Name         null.String `json:"name,omitempty" validate:"omitempty,min=1"`
	LogoURL      null.String `json:"logo_url,omitempty" validate:"omitempty,min=1"`
	DisplayOrder null.Int    `json:"display_order,omitempty"`
	IsVisible    null.Bool   `json:"is_visible,omitempty"`
}

// ClientDTO: полная проекция для авторизованных запросов. Ещё не обновлявшаяся
// запись отдаёт "updated_at": null, ключ не пропадает.
type ClientDTO struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	LogoURL      string      `json:"logo_url"`
	DisplayOrder int         `json:"display_order"`
	IsVisible    bool        `json:"is_visible"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    null.String `json:"updated_at"`
}

// PublicClientDTO: публичная проекция, без служебных полей и таймстемпов.
type PublicClientDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	DisplayOrder int    `json:"display_order"`
}
