// Package markdown applies the ordered inline-markdown substitutions to
// escaped, placeholder-bearing text.
//
// 每条规则是对整个字符串的一次全局替换，后面的规则会看到前面规则产生的
// HTML（例如引用块里的粗体仍然会被加粗）。规则顺序是行为契约的一部分，
// 不可调整。占位符含 NUL 定界符，任何规则的模式都无法匹配进去。
package markdown

import "regexp"

var (
	// 1. ||spoiler||
	spoilerRe = regexp.MustCompile(`\|\|([^\n]+?)\|\|`)

	// 2. ***bold italic*** / ___bold italic___
	boldItalicStarRe       = regexp.MustCompile(`\*\*\*([^\n]+?)\*\*\*`)
	boldItalicUnderscoreRe = regexp.MustCompile(`___([^\n]+?)___`)

	// 3. **bold** / __bold__
	boldStarRe       = regexp.MustCompile(`\*\*([^\n]+?)\*\*`)
	boldUnderscoreRe = regexp.MustCompile(`__([^\n]+?)__`)

	// 4. *italic* / _italic_
	//
	// 下划线形式用 \b 防止在标识符内部（snake_case_names）触发：
	// _ 属于 \w，前后是字母时不存在词边界。
	italicStarRe       = regexp.MustCompile(`\*([^\n*]+?)\*`)
	italicUnderscoreRe = regexp.MustCompile(`\b_([^\n_]+?)_\b`)

	// 5. ~~strikethrough~~
	strikethroughRe = regexp.MustCompile(`~~([^\n]+?)~~`)

	// 6. 引用块：匹配的是已转义的 "&gt; " 行首序列，因此必须在转义之后运行
	blockquoteRe = regexp.MustCompile(`(?m)^&gt; (.+)$`)

	// 7a. [text](url)
	//
	// URL 直接进入 href 属性，" 必须排除在 URL 字符类外，
	// 否则 URL 可以闭合属性值并注入新属性。
	linkRe = regexp.MustCompile(`\[([^\]\n]+)\]\((https?://[^)\s"]+)\)`)

	// 7b. 裸 URL 自动链接。前面是 " 或 = 说明已经在属性上下文里，
	// 跳过（RE2 无后行断言，用捕获组回插替代）。URL 里同样排除 "。
	autolinkRe = regexp.MustCompile(`(^|[^"=])(https?://[^\s<"` + "\x00" + `]+)`)

	// 8. 无序列表项
	unorderedItemRe = regexp.MustCompile(`(?m)^[-*] (.+)$`)

	// 9. 有序列表项
	orderedItemRe = regexp.MustCompile(`(?m)^\d+\. (.+)$`)
)

// Transform 按固定顺序应用全部规则
//
// 输入必须是已转义（且已提取占位符）的文本。列表项按原始行为输出裸
// <li>，不包 <ul>/<ol>。
func Transform(text string) string {
	text = spoilerRe.ReplaceAllString(text, `<span class="spoiler">$1</span>`)
	text = boldItalicStarRe.ReplaceAllString(text, `<strong><em>$1</em></strong>`)
	text = boldItalicUnderscoreRe.ReplaceAllString(text, `<strong><em>$1</em></strong>`)
	text = boldStarRe.ReplaceAllString(text, `<strong>$1</strong>`)
	text = boldUnderscoreRe.ReplaceAllString(text, `<strong>$1</strong>`)
	text = italicStarRe.ReplaceAllString(text, `<em>$1</em>`)
	text = italicUnderscoreRe.ReplaceAllString(text, `<em>$1</em>`)
	text = strikethroughRe.ReplaceAllString(text, `<del>$1</del>`)
	text = blockquoteRe.ReplaceAllString(text, `<blockquote class="md-quote">$1</blockquote>`)
	text = linkRe.ReplaceAllString(text, `<a href="$2" rel="noopener noreferrer" target="_blank">$1</a>`)
	text = autolinkRe.ReplaceAllString(text, `$1<a href="$2" rel="noopener noreferrer" target="_blank">$2</a>`)
	text = unorderedItemRe.ReplaceAllString(text, `<li>$1</li>`)
	text = orderedItemRe.ReplaceAllString(text, `<li>$1</li>`)
	return text
}
