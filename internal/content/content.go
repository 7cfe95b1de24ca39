// Package content 加载站点静态文案（YAML），数据库之外的首页内容来源。
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteContent 是首页用到的全部静态文案。
type SiteContent struct {
	SiteName string      `yaml:"site_name"`
	Tagline  string      `yaml:"tagline"`
	Hero     HeroContent `yaml:"hero"`
	Headings Headings    `yaml:"headings"`
}

// HeroContent 是首屏区块的文案与行动按钮。
type HeroContent struct {
	Title          string `yaml:"title"`
	Subtitle       string `yaml:"subtitle"`
	CTALabel       string `yaml:"cta_label"`
	CTAURL         string `yaml:"cta_url"`
	SecondaryLabel string `yaml:"secondary_label"`
	SecondaryURL   string `yaml:"secondary_url"`
}

// Headings 是其余区块的标题文案。
type Headings struct {
	ValueGrid       string `yaml:"value_grid"`
	FeatureShowcase string `yaml:"feature_showcase"`
	PricingPreview  string `yaml:"pricing_preview"`
}

// Default 返回内置的兜底文案，文件缺失时站点仍可渲染。
func Default() SiteContent {
	return SiteContent{
		SiteName: "Launchpage",
		Tagline:  "把产品讲清楚的最快方式",
		Hero: HeroContent{
			Title:    "从想法到上线，只差一个页面",
			Subtitle: "Launchpage 帮你在几分钟内搭好产品主页",
			CTALabel: "免费开始",
			CTAURL:   "/signup",
		},
		Headings: Headings{
			ValueGrid:       "为什么选择我们",
			FeatureShowcase: "核心功能",
			PricingPreview:  "定价",
		},
	}
}

// Load 读取 YAML 文案文件，文件不存在时返回内置默认值。
// 文件里省略的字段同样回填默认值。
func Load(path string) (SiteContent, error) {
	defaults := Default()

	if strings.TrimSpace(path) == "" {
		return defaults, nil
	}

	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return SiteContent{}, fmt.Errorf("read site content: %w", err)
	}

	sc := defaults
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return SiteContent{}, fmt.Errorf("parse site content: %w", err)
	}
	return merge(sc, defaults), nil
}

func merge(sc, defaults SiteContent) SiteContent {
	if strings.TrimSpace(sc.SiteName) == "" {
		sc.SiteName = defaults.SiteName
	}
	if strings.TrimSpace(sc.Hero.Title) == "" {
		sc.Hero.Title = defaults.Hero.Title
	}
	if strings.TrimSpace(sc.Headings.ValueGrid) == "" {
		sc.Headings.ValueGrid = defaults.Headings.ValueGrid
	}
	if strings.TrimSpace(sc.Headings.FeatureShowcase) == "" {
		sc.Headings.FeatureShowcase = defaults.Headings.FeatureShowcase
	}
	if strings.TrimSpace(sc.Headings.PricingPreview) == "" {
		sc.Headings.PricingPreview = defaults.Headings.PricingPreview
	}
	return sc
}
