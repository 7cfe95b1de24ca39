package db

import "time"

// PageVisit 记录访客层面的浏览历史，用于 UV/PV 去重。
type PageVisit struct {
	ID           uint   `gorm:"primaryKey"`
	Path         string `gorm:"size:255;uniqueIndex:idx_page_visits_path_visitor"`
	VisitorID    string `gorm:"size:64;uniqueIndex:idx_page_visits_path_visitor"`
	Views        uint64 `gorm:"default:0"`
	LastViewedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName 指定自定义表名。
func (PageVisit) TableName() string {
	return "page_visits"
}
