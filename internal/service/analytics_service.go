package service

import (
	"errors"
	"time"

	"github.com/launchpage/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnalyticsService 负责记录页面浏览，用于 UV/PV 统计。
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService 创建 AnalyticsService。
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb}
}

// RecordPageView 记录访客对某一路径的浏览。
// 同一访客与路径只保留一行，浏览次数累加。
func (s *AnalyticsService) RecordPageView(path, visitorID string, now time.Time) error {
	if path == "" || visitorID == "" {
		return errors.New("invalid path or visitor id")
	}

	visit := db.PageVisit{
		Path:         path,
		VisitorID:    visitorID,
		Views:        1,
		LastViewedAt: now,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "path"}, {Name: "visitor_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"views":          gorm.Expr("views + 1"),
			"last_viewed_at": now,
		}),
	}).Create(&visit).Error
}

// PageStats 汇总某一路径的 PV 与 UV。
type PageStats struct {
	PageViews      uint64
	UniqueVisitors uint64
}

// StatsFor 返回某一路径的累计浏览统计。
func (s *AnalyticsService) StatsFor(path string) (PageStats, error) {
	var stats PageStats

	row := s.db.Model(&db.PageVisit{}).
		Where("path = ?", path).
		Select("COALESCE(SUM(views), 0) AS page_views, COUNT(*) AS unique_visitors").
		Row()
	if err := row.Scan(&stats.PageViews, &stats.UniqueVisitors); err != nil {
		return PageStats{}, err
	}
	return stats, nil
}
