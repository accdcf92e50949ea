package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Canonical shape uses imageUrl; the historical `type` field was migrated to an
// image asset per icon keyword and is not accepted on the wire anymore.
type ResourceModel struct {
	ResourceID        string    `gorm:"column:resource_id;primaryKey;type:uuid" json:"_id"`
	ResourceTitle     string    `gorm:"column:resource_title;type:varchar(255);not null" json:"title"`
	ResourceImageURL  string    `gorm:"column:resource_image_url;type:text;not null" json:"imageUrl"`
	ResourceURL       string    `gorm:"column:resource_url;type:text;not null" json:"url"`
	ResourceCreatedAt time.Time `gorm:"column:resource_created_at;autoCreateTime" json:"createdAt"`
}

// TableName sets the table name for ResourceModel
func (ResourceModel) TableName() string {
	return "resources"
}

func (m *ResourceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ResourceID == "" {
		m.ResourceID = uuid.NewString()
	}
	return nil
}
