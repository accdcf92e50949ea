package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	CategoryID          string    `gorm:"column:category_id;primaryKey;type:uuid" json:"_id"`
	CategoryTitle       string    `gorm:"column:category_title;type:varchar(255);not null" json:"title"`
	CategoryDescription string    `gorm:"column:category_description;type:text;not null" json:"description"`
	CategoryImage       string    `gorm:"column:category_image;type:text;not null" json:"image"`
	CategoryLink        string    `gorm:"column:category_link;type:text" json:"link"`
	CategoryCreatedAt   time.Time `gorm:"column:category_created_at;autoCreateTime" json:"createdAt"`
}

// TableName sets the table name for CategoryModel
func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == "" {
		m.CategoryID = uuid.NewString()
	}
	return nil
}
