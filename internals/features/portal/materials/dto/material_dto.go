package dto

// ============================
// Create & Update Request DTO
// ============================

type CreateMaterialRequest struct {
	Title    string `json:"title" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=presentation video chat_web"`
	URL      string `json:"url"`
	VideoURL string `json:"videoUrl"`
}

type UpdateMaterialRequest struct {
	Title    string `json:"title"`
	Type     string `json:"type" validate:"omitempty,oneof=presentation video chat_web"`
	URL      string `json:"url"`
	VideoURL string `json:"videoUrl"`
}
