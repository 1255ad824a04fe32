package richtext

import (
	"github.com/amityvox/richtext-go/internal/escape"
	"github.com/amityvox/richtext-go/internal/extract"
	"github.com/amityvox/richtext-go/internal/markdown"
)

// Render 将原始消息文本渲染为 HTML
//
// 管线：提取（六类受保护片段 → 占位符）→ 对剩余可见文本转义 →
// Markdown 替换 → 占位符回填。纯函数，无共享状态，可在任意多条
// 消息上并发调用；查找表只读不写。
//
// 参数:
//   - raw: 作者输入的原始消息文本（不可信）
//   - opts: WithMembers / WithRoles / WithConfig / WithMathRenderer
//
// 返回:
//   - string: 可信 HTML，调用方直接插入 DOM，不得再次转义
func Render(raw string, opts ...Option) string {
	o := applyOptions(opts...)

	text, arena := extract.Run(raw, extract.Options{
		Math:    o.Math,
		Members: o.Members,
		Roles:   o.Roles,
		Config:  o.Config,
		Logger:  Logger,
	})
	text = escape.HTML(text)
	text = markdown.Transform(text)
	return arena.Restore(text)
}
