package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchpage/internal/section"
	"github.com/launchpage/internal/service"
)

const (
	visitorCookieName   = "lp_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="zh">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  {{- if .Tagline}}
  <meta name="description" content="{{.Tagline}}">
  {{- end}}
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.StylesheetURL}}">
</head>
<body>
<main>
{{- range .Sections}}
{{.}}
{{- end}}
</main>
<footer>
  <p>&copy; {{.Year}} {{.SiteName}}</p>
</footer>
</body>
</html>
`))

type pageData struct {
	Title         string
	SiteName      string
	Tagline       string
	StylesheetURL string
	Year          int
	Sections      []template.HTML
}

// ShowHome renders the public home page: Hero、ValueGrid、
// FeatureShowcase、PricingPreview 四个区块按固定顺序输出。
func (a *API) ShowHome(c *gin.Context) {
	visitorID := a.ensureVisitorID(c)

	if a.analytics != nil && visitorID != "" {
		if err := a.analytics.RecordPageView("/", visitorID, time.Now().UTC()); err != nil {
			c.Error(err) // 不中断渲染，但记录错误
		}
	}

	props, err := a.content.ListValueProps()
	if err != nil {
		c.Error(err)
		props = nil
	}

	features, err := a.content.ListFeatures()
	if err != nil {
		c.Error(err)
		features = nil
	}

	plans, err := a.content.ListPlans()
	if err != nil {
		if !errors.Is(err, service.ErrNoPlans) {
			c.Error(err)
		}
		plans = nil
	}

	sections := section.ComposeHome(
		section.NewHero(a.site.Hero),
		section.NewValueGrid(a.site.Headings.ValueGrid, props),
		section.NewFeatureShowcase(a.site.Headings.FeatureShowcase, features),
		section.NewPricingPreview(a.site.Headings.PricingPreview, plans),
	)

	rendered := make([]template.HTML, 0, len(sections))
	for _, s := range sections {
		var buf bytes.Buffer
		if err := s.Render(c.Request.Context(), &buf); err != nil {
			c.String(http.StatusInternalServerError, "渲染页面失败")
			return
		}
		// 区块 HTML 出自本仓库的模板，免于二次转义
		rendered = append(rendered, template.HTML(buf.String()))
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(c.Writer, pageData{
		Title:         a.site.SiteName,
		SiteName:      a.site.SiteName,
		Tagline:       a.site.Tagline,
		StylesheetURL: "/static/style.css",
		Year:          time.Now().Year(),
		Sections:      rendered,
	}); err != nil {
		c.Error(err)
	}
}

func (a *API) ensureVisitorID(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookieName); err == nil && strings.TrimSpace(id) != "" {
		return id
	}

	visitorID := uuid.NewString()
	secure := c.Request.TLS != nil

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     visitorCookieName,
		Value:    visitorID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   visitorCookieMaxAge,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})

	return visitorID
}
