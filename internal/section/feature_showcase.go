package section

import (
	"context"
	"html/template"
	"io"

	"github.com/launchpage/internal/db"
	"github.com/launchpage/internal/view"
)

var featureShowcaseTmpl = template.Must(template.New("feature-showcase").Parse(`<section id="feature-showcase" class="feature-showcase">
  {{- if .Heading}}
  <h2>{{.Heading}}</h2>
  {{- end}}
  {{- range .Features}}
  <article>
    <h3>{{.Title}}</h3>
    {{- if .Tagline}}
    <p class="tagline">{{.Tagline}}</p>
    {{- end}}
    {{- if .Body}}
    <div class="body">{{.Body}}</div>
    {{- end}}
    {{- if .ImageURL}}
    <img src="{{.ImageURL}}" alt="{{.Title}}">
    {{- end}}
  </article>
  {{- end}}
</section>
`))

// FeatureView 是功能点的视图模型，Body 已是净化后的 HTML。
type FeatureView struct {
	Title    string
	Tagline  string
	Body     template.HTML
	ImageURL string
}

// FeatureShowcase 是功能展示区块。
type FeatureShowcase struct {
	Heading  string
	Features []FeatureView
}

// NewFeatureShowcase 把数据库行转成区块视图模型，正文走 Markdown 管道。
func NewFeatureShowcase(heading string, features []db.Feature) *FeatureShowcase {
	views := make([]FeatureView, 0, len(features))
	for _, f := range features {
		fv := FeatureView{
			Title:    f.Title,
			Tagline:  f.Tagline,
			ImageURL: f.ImageURL,
		}
		if f.Body != "" {
			fv.Body = view.RenderMarkdown(f.Body)
		}
		views = append(views, fv)
	}
	return &FeatureShowcase{Heading: heading, Features: views}
}

// Name 返回区块标识。
func (s *FeatureShowcase) Name() string {
	return "feature-showcase"
}

// Render 渲染功能展示区块。
func (s *FeatureShowcase) Render(ctx context.Context, w io.Writer) error {
	return featureShowcaseTmpl.Execute(w, s)
}
