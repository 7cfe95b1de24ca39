package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行站点所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	GinMode       string
	SessionSecret string
	StaticDir     string
	StaticURLPath string
	SiteContent   string
	DatasourceURL string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// 数据库连接串通过 ResolveDatasourceURL 的优先级链解析。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "launchpage-dev-secret"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "web/static"
	}

	staticURLPath := strings.TrimSpace(os.Getenv("STATIC_URL_PATH"))
	if staticURLPath == "" {
		staticURLPath = "/static"
	}

	siteContent := strings.TrimSpace(os.Getenv("SITE_CONTENT"))
	if siteContent == "" {
		siteContent = "web/content/site.yaml"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		GinMode:       ginMode,
		SessionSecret: sessionSecret,
		StaticDir:     staticDir,
		StaticURLPath: staticURLPath,
		SiteContent:   siteContent,
		DatasourceURL: ResolveDatasourceURL(CaptureEnvironment()),
	}
}
