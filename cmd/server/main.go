package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/launchpage/internal/config"
	"github.com/launchpage/internal/content"
	"github.com/launchpage/internal/db"
	"github.com/launchpage/internal/handler"
	"github.com/launchpage/internal/router"
)

func main() {
	// 先加载 .env，再读取配置；文件不存在属正常情况
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatasourceURL); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 加载站点文案
	site, err := content.Load(cfg.SiteContent)
	if err != nil {
		log.Fatalf("failed to load site content: %v", err)
	}

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(db.DB, site)
	r := router.SetupRouter(api, cfg.SessionSecret, cfg.StaticDir, cfg.StaticURLPath)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
