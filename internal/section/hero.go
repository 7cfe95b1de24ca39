package section

import (
	"context"
	"html/template"
	"io"

	"github.com/launchpage/internal/content"
)

var heroTmpl = template.Must(template.New("hero").Parse(`<section id="hero" class="hero">
  <h1>{{.Content.Title}}</h1>
  {{- if .Content.Subtitle}}
  <p class="subtitle">{{.Content.Subtitle}}</p>
  {{- end}}
  <div class="actions">
    {{- if .Content.CTALabel}}
    <a class="cta" href="{{.Content.CTAURL}}">{{.Content.CTALabel}}</a>
    {{- end}}
    {{- if .Content.SecondaryLabel}}
    <a class="secondary" href="{{.Content.SecondaryURL}}">{{.Content.SecondaryLabel}}</a>
    {{- end}}
  </div>
</section>
`))

// Hero 是首屏区块。
type Hero struct {
	Content content.HeroContent
}

// NewHero 用站点文案构造首屏区块。
func NewHero(c content.HeroContent) *Hero {
	return &Hero{Content: c}
}

// Name 返回区块标识。
func (h *Hero) Name() string {
	return "hero"
}

// Render 渲染首屏 HTML。
func (h *Hero) Render(ctx context.Context, w io.Writer) error {
	return heroTmpl.Execute(w, h)
}
