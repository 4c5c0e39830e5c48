package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Form types accepted by the lead endpoint.
type FormType string

const (
	FormTypeVIP          FormType = "vip"
	FormTypeReserve      FormType = "reserve"
	FormTypeConsultation FormType = "consultation"
	FormTypePrivateParty FormType = "private_party"
)

type Lead struct {
	gorm.Model
	FormType FormType       `json:"form_type" gorm:"index;not null"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Message  string         `json:"message" gorm:"type:text"`
	Meta     datatypes.JSON `json:"meta"` // user agent, client IP, submission time
}

// LeadMeta is the request context stored alongside a lead.
type LeadMeta struct {
	UserAgent string `json:"userAgent"`
	IP        string `json:"ip"`
	CreatedAt string `json:"createdAt"`
}
