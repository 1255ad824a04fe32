package extract

import (
	"log"
	"regexp"
	"strconv"
)

// delimiter 占位符定界字节
//
// NUL 无法通过键盘输入，保证占位符字母表不会与作者输入的内容冲突。
const delimiter = "\x00"

// SpanKind 受保护片段的类别
type SpanKind int

const (
	SpanCodeBlock SpanKind = iota
	SpanInlineCode
	SpanMath
	SpanDeepLink
	SpanMention
)

// Span 一个已渲染的受保护片段
type Span struct {
	Kind SpanKind
	HTML string
}

// Arena 按遇到顺序存放受保护片段，占位符索引即切片下标
//
// 每次渲染独占一个 Arena，渲染结束后即丢弃。
type Arena struct {
	spans  []Span
	logger *log.Logger
}

// add 存入片段并返回其占位符
func (a *Arena) add(kind SpanKind, html string) string {
	a.spans = append(a.spans, Span{Kind: kind, HTML: html})
	return delimiter + strconv.Itoa(len(a.spans)-1) + delimiter
}

// Len 已存入的片段数量
func (a *Arena) Len() int {
	return len(a.spans)
}

// tokenRe 匹配占位符：NUL + 十进制索引 + NUL
var tokenRe = regexp.MustCompile("\x00([0-9]+)\x00")

// Restore 将文本中的占位符替换回暂存的 HTML
//
// 越界索引替换为空串并记录日志：正常管线不会产生越界索引，
// 出现即意味着内部缺陷。
func (a *Arena) Restore(text string) string {
	return tokenRe.ReplaceAllStringFunc(text, func(token string) string {
		idx, err := strconv.Atoi(token[1 : len(token)-1])
		if err != nil || idx < 0 || idx >= len(a.spans) {
			if a.logger != nil {
				a.logger.Printf("placeholder index out of range: %q (have %d spans)", token[1:len(token)-1], len(a.spans))
			}
			return ""
		}
		return a.spans[idx].HTML
	})
}
