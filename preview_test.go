package richtext

import (
	"strings"
	"testing"
)

// TestPreview_StripsFormatting 标记剥除、受保护片段降级为可读文本
func TestPreview_StripsFormatting(t *testing.T) {
	got := Preview("Hey **bold** and `code` plus $x+y$", 0)
	want := "Hey bold and code plus x+y"
	if got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}
}

// TestPreview_Mentions 提及显示截断 id
func TestPreview_Mentions(t *testing.T) {
	got := Preview("ping <@"+userID+"> and <@&"+roleID+">", 0)
	if !strings.Contains(got, "@"+userID[:8]) {
		t.Errorf("Preview() = %q, want truncated user id", got)
	}
	if strings.Contains(got, "<@") {
		t.Errorf("Preview() = %q, raw mention syntax left", got)
	}
}

// TestPreview_CodeBlockAndQuote 代码块保留正文，引用和列表前缀剥除
func TestPreview_CodeBlockAndQuote(t *testing.T) {
	got := Preview("> note\n```go\nf()\n```\n- item", 0)
	want := "note f() item"
	if got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}
}

// TestPreview_LinkKeepsLabel 链接保留标题文本
func TestPreview_LinkKeepsLabel(t *testing.T) {
	got := Preview("read [the docs](https://example.com/d)", 0)
	want := "read the docs"
	if got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}
}

// TestPreview_Truncation 按 rune 截断并追加省略号
func TestPreview_Truncation(t *testing.T) {
	got := Preview("hello world", 5)
	if got != "hello…" {
		t.Errorf("Preview() = %q, want %q", got, "hello…")
	}
	// 多字节字符按 rune 计数
	got = Preview("你好世界你好", 4)
	if got != "你好世界…" {
		t.Errorf("Preview() = %q, want %q", got, "你好世界…")
	}
	// 不超长时原样返回
	if got := Preview("short", 10); got != "short" {
		t.Errorf("Preview() = %q, want %q", got, "short")
	}
}
