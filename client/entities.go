package client

import "time"

// Wire shapes of the six portal collections, field names as the API emits them.

type Capsule struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	VideoURL    string `json:"videoUrl"`
	DownloadURL string `json:"downloadUrl"`
	Description string `json:"description"`
}

type Category struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Industry struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Demo struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	DownloadURL string `json:"downloadUrl"`
	IndustryID  string `json:"industryId"`
}

type Material struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Type     string `json:"type"` // presentation | video | chat_web
	URL      string `json:"url"`
	VideoURL string `json:"videoUrl"`
}

type Resource struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// Write payloads. Updates are carry-forward on the server: an empty field
// means "keep the stored value", not "clear it".

type CapsuleInput struct {
	Title       string `json:"title"`
	VideoURL    string `json:"videoUrl"`
	DownloadURL string `json:"downloadUrl"`
	Description string `json:"description"`
}

type CategoryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

type IndustryInput struct {
	Name string `json:"name"`
}

type DemoInput struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	DownloadURL string `json:"downloadUrl"`
	IndustryID  string `json:"industryId"`
}

type MaterialInput struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	VideoURL string `json:"videoUrl"`
}

type ResourceInput struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	URL      string `json:"url"`
}
