package models

import "gorm.io/gorm"

// ExportedPDF is an append-only artifact record. A module accumulates one row
// per export; the current artifact is the newest row whose file still exists
// on disk (files may be removed out-of-band by the retention sweep).
type ExportedPDF struct {
	gorm.Model
	ModuleID     uint   `json:"module_id" gorm:"index;not null"`
	Filename     string `json:"filename" gorm:"size:255;not null"`
	FilePath     string `json:"file_path" gorm:"size:500;not null"`
	DownloadPath string `json:"download_path" gorm:"size:500"`
	Language     string `json:"language" gorm:"size:50"`
}
