// Package latex 将 LaTeX 风格的公式转换为 HTML 片段
//
// 设计原则：
// 1. 数据驱动 — 符号映射集中在 symbols.go
// 2. 未知命令降级为原文输出，不算错误
// 3. 结构性错误（未闭合的分组、缺失的参数）返回 error，
//    由调用方负责生成回退标记
package latex

import "errors"

var (
	// ErrUnterminatedGroup 分组 { 未闭合
	ErrUnterminatedGroup = errors.New("latex: unterminated group")
	// ErrUnexpectedBrace 多余的 }
	ErrUnexpectedBrace = errors.New("latex: unexpected '}'")
	// ErrMissingArgument 命令缺少必需参数
	ErrMissingArgument = errors.New("latex: missing argument")
)

// Renderer LaTeX→HTML 转换引擎
type Renderer struct{}

// New 创建新的 Renderer
func New() *Renderer {
	return &Renderer{}
}

// Render converts a formula to an HTML fragment.
//
// The display flag is accepted for interface compatibility; block styling is
// applied by the caller, the fragment itself is the same in both modes.
// Structural parse failures return an error and no output.
func (r *Renderer) Render(formula string, display bool) (string, error) {
	p := &parser{input: []rune(formula)}
	out, err := p.parseUntilEOF()
	if err != nil {
		return "", err
	}
	return out, nil
}
