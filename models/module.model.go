package models

import (
	"time"

	"gorm.io/gorm"
)

// Module is a localized training module generated for one cluster.
// OriginalContent keeps a truncated copy of the retrieved source excerpt for
// audit; AdaptedContent is the full localized output.
type Module struct {
	gorm.Model
	Title           string `json:"title" gorm:"size:200;not null"`
	ClusterID       uint   `json:"cluster_id" gorm:"index;not null"`
	ManualID        *uint  `json:"manual_id" gorm:"index"`
	OriginalContent string `json:"original_content"`
	AdaptedContent  string `json:"adapted_content" gorm:"not null"`
	Language        string `json:"language" gorm:"size:50"`

	// Approval is monotonic: once approved a module never reverts to draft.
	Approved   bool       `json:"approved" gorm:"default:false;not null"`
	ApprovedAt *time.Time `json:"approved_at"`
}
