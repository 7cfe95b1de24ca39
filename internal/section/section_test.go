package section

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/launchpage/internal/content"
	"github.com/launchpage/internal/db"
)

func TestComposeHomeFixedOrder(t *testing.T) {
	hero := NewHero(content.HeroContent{Title: "标题"})
	grid := NewValueGrid("为什么", nil)
	showcase := NewFeatureShowcase("功能", nil)
	pricing := NewPricingPreview("定价", nil)

	sections := ComposeHome(hero, grid, showcase, pricing)

	want := []string{"hero", "value-grid", "feature-showcase", "pricing-preview"}
	if len(sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(sections))
	}
	for i, name := range want {
		if sections[i].Name() != name {
			t.Fatalf("expected section %d to be %q, got %q", i, name, sections[i].Name())
		}
	}
}

func TestHeroRender(t *testing.T) {
	hero := NewHero(content.HeroContent{
		Title:    "从想法到上线",
		Subtitle: "几分钟搭好主页",
		CTALabel: "免费开始",
		CTAURL:   "/signup",
	})

	var buf bytes.Buffer
	if err := hero.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `id="hero"`) {
		t.Fatalf("expected hero section id, got %q", out)
	}
	if !strings.Contains(out, "从想法到上线") || !strings.Contains(out, `href="/signup"`) {
		t.Fatalf("expected hero copy and cta, got %q", out)
	}
}

func TestValueGridRender(t *testing.T) {
	grid := NewValueGrid("为什么选择我们", []db.ValueProp{
		{Title: "快速上线", Summary: "十分钟完成接入", Icon: "bolt"},
		{Title: "默认安全", Icon: "shield"},
	})

	var buf bytes.Buffer
	if err := grid.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `id="value-grid"`) {
		t.Fatalf("expected value-grid section id, got %q", out)
	}
	if !strings.Contains(out, "快速上线") || !strings.Contains(out, `data-icon="shield"`) {
		t.Fatalf("expected grid items, got %q", out)
	}
}

func TestFeatureShowcaseRendersMarkdownBody(t *testing.T) {
	showcase := NewFeatureShowcase("核心功能", []db.Feature{
		{Title: "Dashboard", Body: "**实时**指标 <script>alert(1)</script>"},
	})

	var buf bytes.Buffer
	if err := showcase.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<strong>实时</strong>") {
		t.Fatalf("expected rendered markdown body, got %q", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected body to be sanitized, got %q", out)
	}
}

func TestPricingPreviewRender(t *testing.T) {
	pricing := NewPricingPreview("定价", []db.PricingPlan{
		{Name: "Starter", PriceCents: 0, Interval: "month", Perks: "单项目\n社区支持"},
		{Name: "Pro", PriceCents: 2900, Interval: "month", Highlighted: true},
	})

	var buf bytes.Buffer
	if err := pricing.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "免费") || !strings.Contains(out, "$29") {
		t.Fatalf("expected formatted prices, got %q", out)
	}
	if !strings.Contains(out, `class="plan highlighted"`) {
		t.Fatalf("expected highlighted plan, got %q", out)
	}
	if !strings.Contains(out, "<li>单项目</li>") {
		t.Fatalf("expected perks list, got %q", out)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents int
		want  string
	}{
		{0, "免费"},
		{2900, "$29"},
		{1999, "$19.99"},
	}

	for _, tt := range tests {
		if got := formatPrice(tt.cents); got != tt.want {
			t.Fatalf("formatPrice(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
