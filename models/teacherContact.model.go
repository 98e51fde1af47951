package models

import "gorm.io/gorm"

// TeacherContact is a WhatsApp recipient registered against a cluster.
// Teachers are identified solely by phone number; no login is involved.
type TeacherContact struct {
	gorm.Model
	ClusterID   uint   `json:"cluster_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"size:100"`
	PhoneNumber string `json:"phone_number" gorm:"size:20;not null"`
}
