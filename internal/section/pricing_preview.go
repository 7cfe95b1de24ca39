package section

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/launchpage/internal/db"
)

var pricingPreviewTmpl = template.Must(template.New("pricing-preview").Parse(`<section id="pricing-preview" class="pricing-preview">
  {{- if .Heading}}
  <h2>{{.Heading}}</h2>
  {{- end}}
  <div class="plans">
    {{- range .Plans}}
    <div class="plan{{if .Highlighted}} highlighted{{end}}">
      <h3>{{.Name}}</h3>
      <p class="price">{{.Price}}{{if .Interval}}<span class="interval">/{{.Interval}}</span>{{end}}</p>
      {{- if .Blurb}}
      <p class="blurb">{{.Blurb}}</p>
      {{- end}}
      {{- if .Perks}}
      <ul>
        {{- range .Perks}}
        <li>{{.}}</li>
        {{- end}}
      </ul>
      {{- end}}
    </div>
    {{- end}}
  </div>
</section>
`))

// PlanView 是定价套餐的视图模型。
type PlanView struct {
	Name        string
	Price       string
	Interval    string
	Blurb       string
	Perks       []string
	Highlighted bool
}

// PricingPreview 是定价预览区块。
type PricingPreview struct {
	Heading string
	Plans   []PlanView
}

// NewPricingPreview 把数据库行转成区块视图模型。
func NewPricingPreview(heading string, plans []db.PricingPlan) *PricingPreview {
	views := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, PlanView{
			Name:        p.Name,
			Price:       formatPrice(p.PriceCents),
			Interval:    p.Interval,
			Blurb:       p.Blurb,
			Perks:       p.PerkList(),
			Highlighted: p.Highlighted,
		})
	}
	return &PricingPreview{Heading: heading, Plans: views}
}

// Name 返回区块标识。
func (p *PricingPreview) Name() string {
	return "pricing-preview"
}

// Render 渲染定价预览区块。
func (p *PricingPreview) Render(ctx context.Context, w io.Writer) error {
	return pricingPreviewTmpl.Execute(w, p)
}

// formatPrice 把分转成展示价格，0 显示为免费。
func formatPrice(cents int) string {
	if cents == 0 {
		return "免费"
	}
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
