package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaterialTypePresentation = "presentation"
	MaterialTypeVideo        = "video"
	MaterialTypeChatWeb      = "chat_web"
)

type MaterialModel struct {
	MaterialID        string    `gorm:"column:material_id;primaryKey;type:uuid" json:"_id"`
	MaterialTitle     string    `gorm:"column:material_title;type:varchar(255);not null" json:"title"`
	MaterialType      string    `gorm:"column:material_type;type:varchar(32);not null" json:"type"`
	MaterialURL       string    `gorm:"column:material_url;type:text" json:"url"`
	MaterialVideoURL  string    `gorm:"column:material_video_url;type:text" json:"videoUrl"`
	MaterialCreatedAt time.Time `gorm:"column:material_created_at;autoCreateTime" json:"-"`
}

// TableName sets the table name for MaterialModel
func (MaterialModel) TableName() string {
	return "materials"
}

func (m *MaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialID == "" {
		m.MaterialID = uuid.NewString()
	}
	return nil
}
