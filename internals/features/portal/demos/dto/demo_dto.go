package dto

// ============================
// Create & Update Request DTO
// ============================
// industryId is required at creation but never checked against the industries
// collection: the store keeps no referential integrity between the two.

type CreateIndustryRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateIndustryRequest struct {
	Name string `json:"name"`
}

type CreateDemoRequest struct {
	Title       string `json:"title" validate:"required"`
	URL         string `json:"url" validate:"required"`
	DownloadURL string `json:"downloadUrl"`
	IndustryID  string `json:"industryId" validate:"required"`
}

type UpdateDemoRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	DownloadURL string `json:"downloadUrl"`
	IndustryID  string `json:"industryId"`
}
