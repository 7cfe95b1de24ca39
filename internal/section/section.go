// Package section 定义首页的区块组件与组装器。
package section

import (
	"context"
	"io"
)

// Section 是"渲染一个区块"这一能力的最小接口。
// 组装器只依赖该接口，不关心区块内部实现。
type Section interface {
	Name() string
	Render(ctx context.Context, w io.Writer) error
}

// ComposeHome 按固定顺序组装首页：
// Hero、ValueGrid、FeatureShowcase、PricingPreview。
// 顺序由签名固定，组装本身不会失败。
func ComposeHome(hero, grid, showcase, pricing Section) []Section {
	return []Section{hero, grid, showcase, pricing}
}
