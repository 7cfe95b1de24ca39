package handler

import (
	"github.com/launchpage/internal/content"
	"github.com/launchpage/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	content   *service.ContentService
	analytics *service.AnalyticsService
	site      content.SiteContent
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, site content.SiteContent) *API {
	return &API{
		db:        db,
		content:   service.NewContentService(db),
		analytics: service.NewAnalyticsService(db),
		site:      site,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
