package model

import "gorm.io/gorm"

type GalleryImage struct {
	gorm.Model
	Path  string `json:"path" gorm:"not null"` // storage path under the assets bucket
	Alt   string `json:"alt"`
	Order int    `json:"order" gorm:"column:sort_order;default:0"`
}
