package dto

import "github.com/aarondl/null/v8"

type CreatePortfolioItemDTO struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    *bool  `json:"is_visible"`
}

type UpdatePortfolioItemDTO struct {
	ID           uint64      `json:"id"`
	Title        null.String `json:"title,omitempty" validate:"omitempty,min=1"`
	Description  null.String `json:"description,omitempty"`
	ImageURL     null.String `json:"image_url,omitempty" validate:"omitempty,min=1"`
	DisplayOrder null.Int    `json:"display_order,omitempty"`
	IsVisible    null.Bool   `json:"is_visible,omitempty"`
}

// PortfolioItemDTO: полная проекция для админки.
type PortfolioItemDTO struct {
	ID           uint64      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	ImageURL     string      `json:"image_url"`
	DisplayOrder int         `json:"display_order"`
	IsVisible    bool        `json:"is_visible"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    null.String `json:"updated_at"`
}

// PublicPortfolioItemDTO: то, что отдаёт публичная витрина.
type PublicPortfolioItemDTO struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsVisible    bool   `json:"is_visible"`
	CreatedAt    string `json:"created_at,omitempty"`
}
