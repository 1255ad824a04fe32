// Package extract 扫描原始消息文本，把必须绕过转义和 Markdown 处理的片段
// （代码块、行内代码、数学公式、深链接、提及）替换为占位符。
//
// 六个类别按固定顺序提取，先提取的类别优先占有文本：后续类别只能看到
// 带占位符的中间串，因此代码块里的 $ 不会被误判为公式。顺序不可变更。
package extract

import (
	"log"
	"regexp"
	"strings"

	"github.com/amityvox/richtext-go/internal/deeplink"
	"github.com/amityvox/richtext-go/internal/escape"
	"github.com/amityvox/richtext-go/internal/mention"
	"github.com/amityvox/richtext-go/internal/mermaid"
	"github.com/amityvox/richtext-go/internal/types"
)

const ulid = `[0-9A-HJKMNP-TV-Z]{26}`

var (
	// fencedCodeRe ```lang\ncode```
	//
	// 语言标签后必须换行，否则 ```hello``` 会把正文当成语言标签吞掉。
	fencedCodeRe = regexp.MustCompile("(?s)```([A-Za-z0-9_+#.-]*)\n(.*?)```")

	// inlineCodeRe `code`，不跨行，不跨占位符
	inlineCodeRe = regexp.MustCompile("`([^`\n\x00]+)`")

	// displayMathRe $$...$$，正文懒匹配，允许夹单个 $
	displayMathRe = regexp.MustCompile(`(?s)\$\$([^` + "\x00" + `]+?)\$\$`)

	// roleMentionRe <@&ULID>
	roleMentionRe = regexp.MustCompile(`<@&(` + ulid + `)>`)

	// userMentionRe <@ULID>
	userMentionRe = regexp.MustCompile(`<@(` + ulid + `)>`)

	// hereRe @here 字面量
	hereRe = regexp.MustCompile(`@here`)
)

// Options 提取阶段的协作者与配置
type Options struct {
	Math    types.MathRenderer
	Members map[string]types.MemberInfo
	Roles   map[string]types.RoleInfo
	Config  *types.RenderConfig
	Logger  *log.Logger
}

// Run 对原始文本执行六阶段提取，返回带占位符的文本和片段 Arena
func Run(raw string, o Options) (string, *Arena) {
	cfg := o.Config
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}
	symbol := cfg.Symbol
	if symbol == nil {
		symbol = types.DefaultSymbol()
	}

	a := &Arena{logger: o.Logger}
	text := raw

	// 1. Fenced code blocks
	text = fencedCodeRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := fencedCodeRe.FindStringSubmatch(m)
		return a.add(SpanCodeBlock, renderCodeBlock(sub[1], sub[2], cfg))
	})

	// 2. Inline code
	text = inlineCodeRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := inlineCodeRe.FindStringSubmatch(m)
		return a.add(SpanInlineCode, "<code>"+escape.HTML(sub[1])+"</code>")
	})

	// 3. Display math
	text = displayMathRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := displayMathRe.FindStringSubmatch(m)
		return a.add(SpanMath, renderMath(o.Math, sub[1], true))
	})

	// 4. Inline math
	text = scanInlineMath(text, func(formula string) string {
		return a.add(SpanMath, renderMath(o.Math, formula, false))
	})

	// 5. Internal deep-links
	text = deeplink.ChannelPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := deeplink.ChannelPattern.FindStringSubmatch(m)
		return a.add(SpanDeepLink, deeplink.ParseChannel(sub).Anchor(symbol.DeepLink))
	})
	text = deeplink.DMPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := deeplink.DMPattern.FindStringSubmatch(m)
		return a.add(SpanDeepLink, deeplink.ParseDM(sub).Anchor(symbol.DeepLink))
	})

	// 6. Mentions: role before user, then @here
	text = roleMentionRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := roleMentionRe.FindStringSubmatch(m)
		return a.add(SpanMention, mention.Role(sub[1], o.Roles, cfg.DefaultRoleColor))
	})
	text = userMentionRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := userMentionRe.FindStringSubmatch(m)
		return a.add(SpanMention, mention.User(sub[1], o.Members))
	})
	text = hereRe.ReplaceAllStringFunc(text, func(string) string {
		return a.add(SpanMention, mention.Here())
	})

	return text, a
}

// renderCodeBlock 渲染围栏代码块
//
// 正文先去除尾部空白再转义；语言标签进入 data-lang 属性。
func renderCodeBlock(lang, body string, cfg *types.RenderConfig) string {
	body = strings.TrimRight(body, " \t\r\n")

	html := "<pre><code"
	if lang != "" {
		html += ` data-lang="` + escape.HTML(lang) + `"`
	}
	html += ">" + escape.HTML(body) + "</code></pre>"

	if cfg.MermaidLinks && strings.EqualFold(lang, "mermaid") {
		if url, err := mermaid.LiveURL(body); err == nil {
			html += `<a class="mermaid-link" href="` + url + `" rel="noopener noreferrer" target="_blank">View diagram</a>`
		}
	}
	return html
}

// renderMath 调用公式渲染器，失败时生成回退标记
//
// 回退：原公式转义后包回 $ 或 $$ 定界符，让作者看到没解析成功的内容。
// 渲染器的错误永远不会离开这里。
func renderMath(mr types.MathRenderer, formula string, display bool) string {
	if mr != nil {
		if html, err := mr.Render(formula, display); err == nil {
			if display {
				return `<span class="math math-display">` + html + `</span>`
			}
			return `<span class="math math-inline">` + html + `</span>`
		}
	}
	delim := "$"
	if display {
		delim = "$$"
	}
	return `<span class="math math-error">` + delim + escape.HTML(formula) + delim + `</span>`
}

// scanInlineMath 提取 $...$ 行内公式
//
// RE2 没有环视，这里用扫描替代源规则的负向环视：
//   - $$ 不是行内公式（成对的已在上一阶段提取）
//   - 闭合 $ 后面紧跟数字时不匹配（"$5 and $6" 这类价格写法）
//   - 公式不跨行、不跨占位符、不为空白
func scanInlineMath(text string, repl func(formula string) string) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(text) && text[i+1] == '$' {
			b.WriteString("$$")
			i += 2
			continue
		}

		// 同一行内找闭合 $
		j := i + 1
		for j < len(text) && text[j] != '$' && text[j] != '\n' && text[j] != '\x00' {
			j++
		}
		if j >= len(text) || text[j] != '$' {
			b.WriteByte('$')
			i++
			continue
		}
		if j+1 < len(text) && isDigit(text[j+1]) {
			b.WriteByte('$')
			i++
			continue
		}
		formula := text[i+1 : j]
		if strings.TrimSpace(formula) == "" {
			b.WriteByte('$')
			i++
			continue
		}

		b.WriteString(repl(formula))
		i = j + 1
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
