package db

import (
	"strings"

	"gorm.io/gorm"
)

// PricingPlan 是定价预览区块中的一档套餐。
// Perks 以换行分隔存储，读取时用 PerkList 拆分。
type PricingPlan struct {
	gorm.Model
	Slug        string `gorm:"size:100;uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	PriceCents  int    `gorm:"default:0"`
	Interval    string `gorm:"size:20;default:'month'"`
	Blurb       string
	Perks       string `gorm:"type:text"`
	Highlighted bool   `gorm:"default:false"`
	Position    int    `gorm:"default:0;index"`
}

// TableName 指定自定义表名。
func (PricingPlan) TableName() string {
	return "pricing_plans"
}

// PerkList 返回套餐卖点列表，忽略空行。
func (p PricingPlan) PerkList() []string {
	lines := strings.Split(p.Perks, "\n")
	perks := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		perks = append(perks, trimmed)
	}
	return perks
}
