package db

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化数据库连接并执行自动迁移。
// datasourceURL 由配置层的优先级链解析得出，这里不再兜底。
func Init(datasourceURL string) error {
	if datasourceURL == "" {
		return errors.New("datasource url is required")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(datasourceURL), &gorm.Config{})
	if err != nil {
		return err
	}

	return AutoMigrate(DB)
}

// AutoMigrate 为核心模型创建表。独立导出以便测试用内存库复用。
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&ValueProp{},
		&Feature{},
		&PricingPlan{},
		&PageVisit{},
	)
}
