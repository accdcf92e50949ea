package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemoModel.DemoIndustryID is a soft reference: no FK constraint, a dangling
// industryId is not an error (the dashboard groups it under "no industry").
type DemoModel struct {
	DemoID          string    `gorm:"column:demo_id;primaryKey;type:uuid" json:"_id"`
	DemoTitle       string    `gorm:"column:demo_title;type:varchar(255);not null" json:"title"`
	DemoURL         string    `gorm:"column:demo_url;type:text;not null" json:"url"`
	DemoDownloadURL string    `gorm:"column:demo_download_url;type:text" json:"downloadUrl"`
	DemoIndustryID  string    `gorm:"column:demo_industry_id;type:uuid;not null;index" json:"industryId"`
	DemoCreatedAt   time.Time `gorm:"column:demo_created_at;autoCreateTime" json:"-"`
}

// TableName sets the table name for DemoModel
func (DemoModel) TableName() string {
	return "demos"
}

func (m *DemoModel) BeforeCreate(tx *gorm.DB) error {
	if m.DemoID == "" {
		m.DemoID = uuid.NewString()
	}
	return nil
}
