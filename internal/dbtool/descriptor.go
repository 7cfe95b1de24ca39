// Package dbtool 提供迁移与种子工具所消费的数据库工具配置。
package dbtool

import "github.com/launchpage/internal/config"

const (
	// SchemaPath 指向数据模型定义文件。
	SchemaPath = "prisma/schema.prisma"
	// MigrationsDir 存放按序号命名的 SQL 迁移文件。
	MigrationsDir = "prisma/migrations"
	// SeedCommand 是外部工具填充初始数据时执行的命令。
	SeedCommand = "go run ./cmd/dbtool seed"
)

// Descriptor 是迁移/种子工具的静态配置，本身不做任何 I/O 与校验。
type Descriptor struct {
	SchemaPath    string
	MigrationsDir string
	SeedCommand   string
	DatasourceURL string
}

// LoadDescriptor 基于环境快照构造配置。除连接串外所有字段均为
// 固定字面量；相同环境下重复求值结果一致。
func LoadDescriptor(env config.Environment) Descriptor {
	return Descriptor{
		SchemaPath:    SchemaPath,
		MigrationsDir: MigrationsDir,
		SeedCommand:   SeedCommand,
		DatasourceURL: config.ResolveDatasourceURL(env),
	}
}
