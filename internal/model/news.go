package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NewsArticle struct {
	gorm.Model
	Slug      string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Excerpt   string         `json:"excerpt"`
	Tags      datatypes.JSON `json:"tags"`
	Image     string         `json:"image"`
	Published bool           `json:"published" gorm:"default:true"`
}

func (NewsArticle) TableName() string {
	return "news"
}
