package dto

// ============================
// Create & Update Request DTO
// ============================
// Only the allow-listed fields exist here: anything else in the body is
// dropped, never persisted. Update fields are carry-forward: an absent or
// empty value keeps the stored one (PUT cannot clear a field).

type CreateCapsuleRequest struct {
	Title       string `json:"title" validate:"required"`
	VideoURL    string `json:"videoUrl" validate:"required"`
	DownloadURL string `json:"downloadUrl"`
	Description string `json:"description"`
}

type UpdateCapsuleRequest struct {
	Title       string `json:"title"`
	VideoURL    string `json:"videoUrl"`
	DownloadURL string `json:"downloadUrl"`
	Description string `json:"description"`
}
