package models

import "gorm.io/gorm"

// Cluster is a named group of teachers sharing a region, language and
// infrastructure profile. It is the adaptation target for generated modules.
type Cluster struct {
	gorm.Model
	Name                      string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	RegionType                string `json:"region_type" gorm:"size:50;not null"`
	Language                  string `json:"language" gorm:"size:50;not null"`
	InfrastructureConstraints string `json:"infrastructure_constraints"`
	KeyIssues                 string `json:"key_issues"`
	GradeRange                string `json:"grade_range" gorm:"size:100"`
	Pinned                    bool   `json:"pinned" gorm:"default:false"`
}
