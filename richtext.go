// Package richtext 将 AmityVox 聊天消息渲染为可信任的 HTML
//
// 这个包实现消息正文的富文本管线：提取保护（代码、公式、深链接、提及）、
// HTML 转义、按固定顺序的 Markdown 替换、占位符回填。
//
// 核心功能：
//   - 将原始消息文本转换为 HTML（提及、公式、代码块、深链接）
//   - LaTeX 风格公式渲染，解析失败时显示可见的回退标记
//   - 角色颜色严格校验（style 属性注入防护）
//   - 长文（RSS、webhook）的完整 Markdown 文档渲染
//   - 通知预览的纯文本摘要
//
// 主要 API：
//   - Render(): 消息管线，纯函数，对任意输入都不会失败
//   - RenderDocument(): 长文渲染（goldmark + bluemonday）
//   - Preview(): 通知用的纯文本摘要
//
// 示例：
//
//	html := richtext.Render(raw,
//	    richtext.WithMembers(members),
//	    richtext.WithRoles(roles),
//	)
//
// 返回的字符串是调用方必须按可信标记插入的 HTML：所有作者输入要么已
// 转义，要么被限制在经过校验的属性上下文中。
package richtext
