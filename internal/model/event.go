package model

import "gorm.io/gorm"

type Event struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description" gorm:"type:text"`
	Image       string `json:"image"` // storage path from the admin upload endpoint
	Category    string `json:"category"`
}
