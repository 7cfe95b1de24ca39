package e2e

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/launchpage/internal/content"
	"github.com/launchpage/internal/db"
	"github.com/launchpage/internal/dbtool"
	"github.com/launchpage/internal/handler"
	"github.com/launchpage/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(h http.Handler) *localClient {
	jar, _ := cookiejar.New(nil)
	return &localClient{handler: h, jar: jar}
}

func (c *localClient) Get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "http://launchpage.test"+path, nil)
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	resp.Body.Close()
	return resp, string(body)
}

func setupSite(t *testing.T) (*gorm.DB, *localClient) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	seed := &dbtool.SeedFile{
		ValueProps: []dbtool.SeedValueProp{
			{Slug: "fast-launch", Title: "快速上线", Summary: "十分钟完成接入"},
		},
		Features: []dbtool.SeedFeature{
			{Slug: "dashboard", Title: "Dashboard", Body: "**实时**指标"},
		},
		Plans: []dbtool.SeedPlan{
			{Slug: "starter", Name: "Starter", PriceCents: 0, Interval: "month"},
			{Slug: "pro", Name: "Pro", PriceCents: 2900, Interval: "month", Highlighted: true},
		},
	}
	if err := dbtool.ApplySeed(gdb, seed); err != nil {
		t.Fatalf("failed to apply seed: %v", err)
	}

	api := handler.NewAPI(gdb, content.Default())
	r := router.SetupRouter(api, "e2e-secret", "", "")
	return gdb, newLocalClient(r)
}

func TestHomePageEndToEnd(t *testing.T) {
	gdb, client := setupSite(t)

	resp, body := client.Get(t, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	// 区块按固定顺序出现
	order := []string{`id="hero"`, `id="value-grid"`, `id="feature-showcase"`, `id="pricing-preview"`}
	last := -1
	for _, id := range order {
		idx := strings.Index(body, id)
		if idx <= last {
			t.Fatalf("section %s missing or out of order", id)
		}
		last = idx
	}

	// 种子内容真实出现在页面上
	for _, want := range []string{"快速上线", "<strong>实时</strong>", "Starter", "$29"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}

	// 同一访客再次访问只保留一行记录
	if _, body = client.Get(t, "/"); !strings.Contains(body, `id="hero"`) {
		t.Fatal("expected second visit to render home page")
	}

	var count int64
	if err := gdb.Model(&db.PageVisit{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count visits: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one page visit row, got %d", count)
	}

	var visit db.PageVisit
	if err := gdb.First(&visit).Error; err != nil {
		t.Fatalf("failed to load visit: %v", err)
	}
	if visit.Views != 2 {
		t.Fatalf("expected 2 accumulated views, got %d", visit.Views)
	}
}

func TestPingEndToEnd(t *testing.T) {
	_, client := setupSite(t)

	resp, body := client.Get(t, "/ping")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "pong") {
		t.Fatalf("unexpected ping body: %q", body)
	}
}
