package richtext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	previewFencedRe      = regexp.MustCompile("(?s)```[A-Za-z0-9_+#.-]*\n?(.*?)```")
	previewInlineCodeRe  = regexp.MustCompile("`([^`\n]+)`")
	previewDisplayMathRe = regexp.MustCompile(`(?s)\$\$([^$]+?)\$\$`)
	previewInlineMathRe  = regexp.MustCompile(`\$([^$\n]+)\$`)
	previewRoleRe        = regexp.MustCompile(`<@&([0-9A-HJKMNP-TV-Z]{26})>`)
	previewUserRe        = regexp.MustCompile(`<@([0-9A-HJKMNP-TV-Z]{26})>`)
	previewLinkRe        = regexp.MustCompile(`\[([^\]\n]+)\]\(https?://[^)\s]+\)`)
	previewItalicStarRe  = regexp.MustCompile(`\*([^\n*]+?)\*`)
	previewItalicUndRe   = regexp.MustCompile(`\b_([^\n_]+?)_\b`)
	previewMarksRe       = regexp.MustCompile(`\*\*\*|___|\*\*|__|~~|\|\|`)
	previewQuoteRe       = regexp.MustCompile(`(?m)^> `)
	previewListRe        = regexp.MustCompile(`(?m)^(?:[-*]|\d+\.) `)
	previewSpaceRe       = regexp.MustCompile(`\s+`)
)

// Preview 生成通知预览用的纯文本摘要
//
// 受保护片段降级为可读文本（代码和公式保留正文，提及显示截断 id，
// 链接保留标题），Markdown 标记剥除，空白折叠，按 rune 截断到 max
// 并追加省略号。max <= 0 时不截断。
func Preview(raw string, max int) string {
	text := previewFencedRe.ReplaceAllString(raw, "$1")
	text = previewInlineCodeRe.ReplaceAllString(text, "$1")
	text = previewDisplayMathRe.ReplaceAllString(text, "$1")
	text = previewInlineMathRe.ReplaceAllString(text, "$1")
	text = previewRoleRe.ReplaceAllStringFunc(text, func(m string) string {
		return "@" + previewRoleRe.FindStringSubmatch(m)[1][:8]
	})
	text = previewUserRe.ReplaceAllStringFunc(text, func(m string) string {
		return "@" + previewUserRe.FindStringSubmatch(m)[1][:8]
	})
	text = previewLinkRe.ReplaceAllString(text, "$1")
	text = previewMarksRe.ReplaceAllString(text, "")
	text = previewItalicStarRe.ReplaceAllString(text, "$1")
	text = previewItalicUndRe.ReplaceAllString(text, "$1")
	text = previewQuoteRe.ReplaceAllString(text, "")
	text = previewListRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(previewSpaceRe.ReplaceAllString(text, " "))

	if max > 0 && utf8.RuneCountInString(text) > max {
		runes := []rune(text)
		text = string(runes[:max]) + "…"
	}
	return text
}
