package dbtool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/launchpage/internal/db"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSeedFile 是迁移目录旁的种子数据文件。
const DefaultSeedFile = "prisma/seed.yaml"

// SeedFile 描述站点初始内容：价值主张、功能与定价套餐。
type SeedFile struct {
	ValueProps []SeedValueProp `yaml:"value_props"`
	Features   []SeedFeature   `yaml:"features"`
	Plans      []SeedPlan      `yaml:"plans"`
}

// SeedValueProp 对应 value_props 表的一行。
type SeedValueProp struct {
	Slug    string `yaml:"slug"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Icon    string `yaml:"icon"`
}

// SeedFeature 对应 features 表的一行。
type SeedFeature struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Body     string `yaml:"body"`
	ImageURL string `yaml:"image_url"`
}

// SeedPlan 对应 pricing_plans 表的一行。
type SeedPlan struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	PriceCents  int      `yaml:"price_cents"`
	Interval    string   `yaml:"interval"`
	Blurb       string   `yaml:"blurb"`
	Perks       []string `yaml:"perks"`
	Highlighted bool     `yaml:"highlighted"`
}

// LoadSeedFile 读取并解析 YAML 种子文件。
func LoadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

// ApplySeed 按 slug 幂等地写入种子数据，已存在的行会被更新。
// Position 取自文件内顺序，保证首页区块的展示次序稳定。
func ApplySeed(gdb *gorm.DB, seed *SeedFile) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		for i, vp := range seed.ValueProps {
			if strings.TrimSpace(vp.Slug) == "" {
				return fmt.Errorf("value prop %d: slug is required", i)
			}
			row := db.ValueProp{
				Slug:     vp.Slug,
				Title:    vp.Title,
				Summary:  vp.Summary,
				Icon:     vp.Icon,
				Position: i,
			}
			if err := upsertBySlug(tx, &row, "title", "summary", "icon", "position"); err != nil {
				return err
			}
		}

		for i, f := range seed.Features {
			if strings.TrimSpace(f.Slug) == "" {
				return fmt.Errorf("feature %d: slug is required", i)
			}
			row := db.Feature{
				Slug:     f.Slug,
				Title:    f.Title,
				Tagline:  f.Tagline,
				Body:     f.Body,
				ImageURL: f.ImageURL,
				Position: i,
			}
			if err := upsertBySlug(tx, &row, "title", "tagline", "body", "image_url", "position"); err != nil {
				return err
			}
		}

		for i, p := range seed.Plans {
			if strings.TrimSpace(p.Slug) == "" {
				return fmt.Errorf("plan %d: slug is required", i)
			}
			row := db.PricingPlan{
				Slug:        p.Slug,
				Name:        p.Name,
				PriceCents:  p.PriceCents,
				Interval:    p.Interval,
				Blurb:       p.Blurb,
				Perks:       strings.Join(p.Perks, "\n"),
				Highlighted: p.Highlighted,
				Position:    i,
			}
			if err := upsertBySlug(tx, &row, "name", "price_cents", "interval", "blurb", "perks", "highlighted", "position"); err != nil {
				return err
			}
		}

		return nil
	})
}

func upsertBySlug(tx *gorm.DB, row interface{}, columns ...string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(row).Error
}
