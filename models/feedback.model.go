package models

import "gorm.io/gorm"

// Feedback is an optional rating/comment left against a generated module.
type Feedback struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"index;not null"`
	Rating   int    `json:"rating"` // 1-5 scale
	Comments string `json:"comments"`
}
