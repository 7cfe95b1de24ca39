package dbtool

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// ErrNoChange 表示数据库已处于目标版本。
var ErrNoChange = errors.New("database schema already up to date")

// Migrator 按 Descriptor 指定的目录与连接串执行 SQL 迁移。
type Migrator struct {
	desc Descriptor
}

// NewMigrator 校验配置后返回迁移执行器。
func NewMigrator(desc Descriptor) (*Migrator, error) {
	if desc.DatasourceURL == "" {
		return nil, errors.New("missing datasource url")
	}
	if desc.MigrationsDir == "" {
		return nil, errors.New("missing migrations directory")
	}
	return &Migrator{desc: desc}, nil
}

// sourceURL 把迁移目录转成 file:// 形式的 source。
func (m *Migrator) sourceURL() (string, error) {
	dir := m.desc.MigrationsDir
	if !filepath.IsAbs(dir) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(wd, dir)
	}
	u := url.URL{Scheme: "file", Path: dir}
	return u.String(), nil
}

// Up 应用所有未执行的迁移。
func (m *Migrator) Up() error {
	return m.run(func(mig *migrate.Migrate) error {
		return mig.Up()
	})
}

// Down 回滚最近一次迁移。
func (m *Migrator) Down() error {
	return m.run(func(mig *migrate.Migrate) error {
		return mig.Steps(-1)
	})
}

// Version 返回当前迁移版本以及是否处于脏状态。
func (m *Migrator) Version() (uint, bool, error) {
	src, err := m.sourceURL()
	if err != nil {
		return 0, false, err
	}
	mig, err := migrate.New(src, m.desc.DatasourceURL)
	if err != nil {
		return 0, false, err
	}
	defer mig.Close()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (m *Migrator) run(step func(*migrate.Migrate) error) error {
	src, err := m.sourceURL()
	if err != nil {
		return err
	}
	mig, err := migrate.New(src, m.desc.DatasourceURL)
	if err != nil {
		return fmt.Errorf("open migrate instance: %w", err)
	}
	defer mig.Close()

	if err := step(mig); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return ErrNoChange
		}
		return err
	}
	return nil
}
