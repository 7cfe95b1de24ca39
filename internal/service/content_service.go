package service

import (
	"errors"

	"github.com/launchpage/internal/db"
	"gorm.io/gorm"
)

// ErrNoPlans 表示定价套餐尚未初始化（通常是种子未执行）。
var ErrNoPlans = errors.New("no pricing plans configured")

// ContentService 提供首页各区块所需的数据库内容。
type ContentService struct {
	db *gorm.DB
}

// NewContentService returns a new ContentService instance.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// ListValueProps 按展示顺序返回全部价值主张。
func (s *ContentService) ListValueProps() ([]db.ValueProp, error) {
	var props []db.ValueProp
	if err := s.db.Order("position asc, id asc").Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

// ListFeatures 按展示顺序返回全部功能点。
func (s *ContentService) ListFeatures() ([]db.Feature, error) {
	var features []db.Feature
	if err := s.db.Order("position asc, id asc").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// ListPlans 按展示顺序返回全部定价套餐。
// 没有任何套餐时返回 ErrNoPlans，由调用方决定降级方式。
func (s *ContentService) ListPlans() ([]db.PricingPlan, error) {
	var plans []db.PricingPlan
	if err := s.db.Order("position asc, id asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, ErrNoPlans
	}
	return plans, nil
}
