package dto

// ============================
// Create & Update Request DTO
// ============================

type CreateResourceRequest struct {
	Title    string `json:"title" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
	URL      string `json:"url" validate:"required"`
}

type UpdateResourceRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	URL      string `json:"url"`
}
