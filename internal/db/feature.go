package db

import "gorm.io/gorm"

// Feature represents one entry in the feature showcase.
// Body 为 Markdown，渲染时经过统一的清洗管道。
type Feature struct {
	gorm.Model
	Slug     string `gorm:"size:100;uniqueIndex;not null"`
	Title    string `gorm:"not null"`
	Tagline  string
	Body     string `gorm:"type:text"`
	ImageURL string
	Position int `gorm:"default:0;index"`
}

// TableName 指定自定义表名。
func (Feature) TableName() string {
	return "features"
}
