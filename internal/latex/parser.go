package latex

import (
	"strings"
	"unicode"
)

// parser 递归下降解析器，输出 HTML
type parser struct {
	input []rune
	pos   int
}

// parseUntilEOF 解析整个输入
func (p *parser) parseUntilEOF() (string, error) {
	out, err := p.parseSequence(false)
	if err != nil {
		return "", err
	}
	if p.pos < len(p.input) {
		// 只有多余的 } 会提前停止
		return "", ErrUnexpectedBrace
	}
	return out, nil
}

// parseSequence 解析直到 EOF 或（inGroup 时）闭合的 }
//
// 不消耗闭合的 }，由调用方处理。
func (p *parser) parseSequence(inGroup bool) (string, error) {
	var b strings.Builder

	for p.pos < len(p.input) {
		r := p.input[p.pos]
		switch r {
		case '}':
			// 不消耗：组内由 parseGroup 消耗，顶层由 parseUntilEOF 报告多余的 }
			return b.String(), nil

		case '{':
			inner, err := p.parseGroup()
			if err != nil {
				return "", err
			}
			b.WriteString(inner)

		case '\\':
			out, err := p.parseCommand()
			if err != nil {
				return "", err
			}
			b.WriteString(out)

		case '^', '_':
			p.pos++
			arg, err := p.parseArgument()
			if err != nil {
				return "", err
			}
			if r == '^' {
				b.WriteString("<sup>" + arg + "</sup>")
			} else {
				b.WriteString("<sub>" + arg + "</sub>")
			}

		default:
			b.WriteString(escapeRune(r))
			p.pos++
		}
	}

	if inGroup {
		return "", ErrUnterminatedGroup
	}
	return b.String(), nil
}

// parseGroup 解析 {...}，消耗两侧花括号
func (p *parser) parseGroup() (string, error) {
	p.pos++ // consume '{'
	inner, err := p.parseSequence(true)
	if err != nil {
		return "", err
	}
	if p.pos >= len(p.input) || p.input[p.pos] != '}' {
		return "", ErrUnterminatedGroup
	}
	p.pos++ // consume '}'
	return inner, nil
}

// parseArgument 解析命令参数：{...} 分组、\command 或单个字符
func (p *parser) parseArgument() (string, error) {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
	if p.pos >= len(p.input) {
		return "", ErrMissingArgument
	}
	switch p.input[p.pos] {
	case '{':
		return p.parseGroup()
	case '}':
		return "", ErrMissingArgument
	case '\\':
		return p.parseCommand()
	default:
		r := p.input[p.pos]
		p.pos++
		return escapeRune(r), nil
	}
}

// parseCommand 解析 \command 及其参数
func (p *parser) parseCommand() (string, error) {
	p.pos++ // consume '\'
	if p.pos >= len(p.input) {
		return "\\", nil
	}

	// \$ \{ \} \\ 等转义字符
	if !unicode.IsLetter(p.input[p.pos]) {
		r := p.input[p.pos]
		p.pos++
		if sym, ok := Symbols[string(r)]; ok {
			return sym, nil
		}
		if r == '\\' {
			return "<br>", nil
		}
		return escapeRune(r), nil
	}

	start := p.pos
	for p.pos < len(p.input) && unicode.IsLetter(p.input[p.pos]) {
		p.pos++
	}
	name := string(p.input[start:p.pos])

	switch name {
	case "frac", "dfrac", "tfrac":
		num, err := p.parseArgument()
		if err != nil {
			return "", err
		}
		den, err := p.parseArgument()
		if err != nil {
			return "", err
		}
		return `<span class="frac"><sup>` + num + `</sup>&frasl;<sub>` + den + `</sub></span>`, nil

	case "sqrt":
		index := ""
		if p.pos < len(p.input) && p.input[p.pos] == '[' {
			var err error
			index, err = p.parseOption()
			if err != nil {
				return "", err
			}
		}
		arg, err := p.parseArgument()
		if err != nil {
			return "", err
		}
		if index != "" {
			return "<sup>" + index + `</sup>√<span class="radicand">` + arg + `</span>`, nil
		}
		return `√<span class="radicand">` + arg + `</span>`, nil

	case "text", "mathrm", "operatorname", "textrm":
		return p.parseArgument()

	case "mathbf", "textbf", "bm", "boldsymbol":
		arg, err := p.parseArgument()
		if err != nil {
			return "", err
		}
		return "<b>" + arg + "</b>", nil

	case "mathit", "textit", "emph":
		arg, err := p.parseArgument()
		if err != nil {
			return "", err
		}
		return "<i>" + arg + "</i>", nil

	case "left", "right":
		// 伸缩定界符：输出定界符本身
		if p.pos < len(p.input) {
			r := p.input[p.pos]
			p.pos++
			if r == '\\' {
				p.pos--
				return p.parseCommand()
			}
			if r == '.' {
				return "", nil
			}
			return escapeRune(r), nil
		}
		return "", nil
	}

	if sym, ok := Symbols[name]; ok {
		return sym, nil
	}
	if FunctionNames[name] {
		return name, nil
	}

	// 未知命令：原样输出（降级，不报错）
	return "\\" + name, nil
}

// parseOption 解析 [...]，消耗两侧方括号
func (p *parser) parseOption() (string, error) {
	p.pos++ // consume '['
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != ']' {
		p.pos++
	}
	if p.pos >= len(p.input) {
		return "", ErrUnterminatedGroup
	}
	opt := string(p.input[start:p.pos])
	p.pos++ // consume ']'
	return opt, nil
}

// escapeRune HTML 转义单个字符
func escapeRune(r rune) string {
	switch r {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	default:
		return string(r)
	}
}
