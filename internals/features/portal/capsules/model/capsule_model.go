package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CapsuleModel struct {
	CapsuleID          string    `gorm:"column:capsule_id;primaryKey;type:uuid" json:"_id"`
	CapsuleTitle       string    `gorm:"column:capsule_title;type:varchar(255);not null" json:"title"`
	CapsuleVideoURL    string    `gorm:"column:capsule_video_url;type:text;not null" json:"videoUrl"`
	CapsuleDownloadURL string    `gorm:"column:capsule_download_url;type:text" json:"downloadUrl"`
	CapsuleDescription string    `gorm:"column:capsule_description;type:text" json:"description"`
	CapsuleCreatedAt   time.Time `gorm:"column:capsule_created_at;autoCreateTime" json:"-"`
}

// TableName sets the table name for CapsuleModel
func (CapsuleModel) TableName() string {
	return "capsules"
}

// BeforeCreate assigns the store id. uuid is generated app-side so the model
// behaves the same on Postgres and the sqlite test driver.
func (m *CapsuleModel) BeforeCreate(tx *gorm.DB) error {
	if m.CapsuleID == "" {
		m.CapsuleID = uuid.NewString()
	}
	return nil
}
