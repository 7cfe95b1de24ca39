package section

import (
	"context"
	"html/template"
	"io"

	"github.com/launchpage/internal/db"
)

var valueGridTmpl = template.Must(template.New("value-grid").Parse(`<section id="value-grid" class="value-grid">
  {{- if .Heading}}
  <h2>{{.Heading}}</h2>
  {{- end}}
  <ul>
    {{- range .Items}}
    <li data-icon="{{.Icon}}">
      <h3>{{.Title}}</h3>
      {{- if .Summary}}
      <p>{{.Summary}}</p>
      {{- end}}
    </li>
    {{- end}}
  </ul>
</section>
`))

// ValueGridItem 是价值主张卡片的视图模型。
type ValueGridItem struct {
	Title   string
	Summary string
	Icon    string
}

// ValueGrid 是价值主张区块。
type ValueGrid struct {
	Heading string
	Items   []ValueGridItem
}

// NewValueGrid 把数据库行转成区块视图模型。
func NewValueGrid(heading string, props []db.ValueProp) *ValueGrid {
	items := make([]ValueGridItem, 0, len(props))
	for _, p := range props {
		items = append(items, ValueGridItem{
			Title:   p.Title,
			Summary: p.Summary,
			Icon:    p.Icon,
		})
	}
	return &ValueGrid{Heading: heading, Items: items}
}

// Name 返回区块标识。
func (g *ValueGrid) Name() string {
	return "value-grid"
}

// Render 渲染价值主张区块。
func (g *ValueGrid) Render(ctx context.Context, w io.Writer) error {
	return valueGridTmpl.Execute(w, g)
}
