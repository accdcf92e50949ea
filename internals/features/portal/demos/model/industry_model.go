package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IndustryModel struct {
	IndustryID        string    `gorm:"column:industry_id;primaryKey;type:uuid" json:"_id"`
	IndustryName      string    `gorm:"column:industry_name;type:varchar(255);not null" json:"name"`
	IndustryCreatedAt time.Time `gorm:"column:industry_created_at;autoCreateTime" json:"-"`
}

// TableName sets the table name for IndustryModel
func (IndustryModel) TableName() string {
	return "industries"
}

func (m *IndustryModel) BeforeCreate(tx *gorm.DB) error {
	if m.IndustryID == "" {
		m.IndustryID = uuid.NewString()
	}
	return nil
}
