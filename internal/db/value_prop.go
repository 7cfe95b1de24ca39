package db

import "gorm.io/gorm"

// ValueProp 是价值主张区块中的一张卡片。
type ValueProp struct {
	gorm.Model
	Slug     string `gorm:"size:100;uniqueIndex;not null"`
	Title    string `gorm:"not null"`
	Summary  string `gorm:"type:text"`
	Icon     string `gorm:"size:50"`
	Position int    `gorm:"default:0;index"`
}

// TableName 指定自定义表名。
func (ValueProp) TableName() string {
	return "value_props"
}
