package dto

// ============================
// Create & Update Request DTO
// ============================

type CreateCategoryRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Link        string `json:"link"`
}

type UpdateCategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}
