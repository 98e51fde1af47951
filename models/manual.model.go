package models

import (
	"time"

	"gorm.io/gorm"
)

// Manual is an uploaded source training document. Modules can only be
// generated from a manual once it has been indexed by the retrieval service.
type Manual struct {
	gorm.Model
	Title     string     `json:"title" gorm:"size:200;not null"`
	Filename  string     `json:"filename" gorm:"size:255;not null"`
	FilePath  string     `json:"file_path" gorm:"size:500;not null"`
	FileSize  int64      `json:"file_size"`
	IsIndexed bool       `json:"is_indexed" gorm:"default:false;not null"`
	IndexedAt *time.Time `json:"indexed_at"`
	ClusterID uint       `json:"cluster_id" gorm:"index;not null"`
}
