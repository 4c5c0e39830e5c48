package model

import "gorm.io/gorm"

type MenuCategory struct {
	gorm.Model
	Title string     `json:"title" gorm:"not null"`
	Order int        `json:"order" gorm:"column:sort_order;default:0"`
	Items []MenuItem `json:"items" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type MenuItem struct {
	gorm.Model
	CategoryID  uint   `json:"category_id" gorm:"index"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Order       int    `json:"order" gorm:"column:sort_order;default:0"`
}
