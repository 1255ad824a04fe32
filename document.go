package richtext

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// standardOptions goldmark 扩展配置，用于长文渲染
var standardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, tasklists, autolinks
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
}

var (
	docMarkdown = goldmark.New(standardOptions...)
	docPolicy   = bluemonday.UGCPolicy()
)

// RenderDocument 将长文 Markdown（RSS 条目、webhook 内容等）渲染为 HTML
//
// 与消息管线的信任模型不同：这里走完整的 CommonMark/GFM 解析，
// 输出经 bluemonday 清洗后才可信。消息正文不要用这个入口。
func RenderDocument(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := docMarkdown.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return docPolicy.Sanitize(buf.String()), nil
}
