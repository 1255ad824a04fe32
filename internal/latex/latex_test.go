package latex

import (
	"errors"
	"strings"
	"testing"
)

// TestRender_PlainText 测试普通字符原样输出
func TestRender_PlainText(t *testing.T) {
	r := New()
	got, err := r.Render("y=1", false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "y=1" {
		t.Errorf("Render(\"y=1\") = %q, want %q", got, "y=1")
	}
}

// TestRender_Symbols 测试符号表查找
func TestRender_Symbols(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		want    string
	}{
		{"greek", `\alpha + \beta`, "α + β"},
		{"uppercase greek", `\Sigma`, "Σ"},
		{"relation", `a \leq b`, "a ≤ b"},
		{"arrow", `p \to q`, "p → q"},
		{"infinity", `\infty`, "∞"},
		{"function name", `\sin x`, "sin x"},
	}
	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.formula, false)
			if err != nil {
				t.Fatalf("Render(%q) error = %v", tt.formula, err)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.formula, got, tt.want)
			}
		})
	}
}

// TestRender_Scripts 测试上下标
func TestRender_Scripts(t *testing.T) {
	r := New()

	got, err := r.Render("x^2", false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "x<sup>2</sup>" {
		t.Errorf("Render(\"x^2\") = %q", got)
	}

	got, err = r.Render("a_{ij}", false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "a<sub>ij</sub>" {
		t.Errorf("Render(\"a_{ij}\") = %q", got)
	}
}

// TestRender_Fraction 测试 \frac
func TestRender_Fraction(t *testing.T) {
	r := New()
	got, err := r.Render(`\frac{1}{2}`, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `<span class="frac"><sup>1</sup>&frasl;<sub>2</sub></span>`
	if got != want {
		t.Errorf("Render(\\frac{1}{2}) = %q, want %q", got, want)
	}
}

// TestRender_Sqrt 测试 \sqrt（含可选指数）
func TestRender_Sqrt(t *testing.T) {
	r := New()

	got, err := r.Render(`\sqrt{2}`, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != `√<span class="radicand">2</span>` {
		t.Errorf("Render(\\sqrt{2}) = %q", got)
	}

	got, err = r.Render(`\sqrt[3]{x}`, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != `<sup>3</sup>√<span class="radicand">x</span>` {
		t.Errorf("Render(\\sqrt[3]{x}) = %q", got)
	}
}

// TestRender_EscapesHTML 测试公式中的 HTML 特殊字符被转义
func TestRender_EscapesHTML(t *testing.T) {
	r := New()
	got, err := r.Render("a < b", false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "a &lt; b" {
		t.Errorf("Render(\"a < b\") = %q, want %q", got, "a &lt; b")
	}
}

// TestRender_UnknownCommandDegrades 未知命令降级为原文，不报错
func TestRender_UnknownCommandDegrades(t *testing.T) {
	r := New()
	got, err := r.Render(`\foobar x`, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, `\foobar`) {
		t.Errorf("Render(\\foobar x) = %q, want literal command", got)
	}
}

// TestRender_Errors 结构性错误必须返回 error
func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		wantErr error
	}{
		{"unterminated frac", `\frac{`, ErrUnterminatedGroup},
		{"unterminated group", `{a+b`, ErrUnterminatedGroup},
		{"stray closing brace", `a}b`, ErrUnexpectedBrace},
		{"missing superscript arg", `x^`, ErrMissingArgument},
		{"frac missing denominator", `\frac{1}`, ErrMissingArgument},
	}
	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.formula, false)
			if err == nil {
				t.Fatalf("Render(%q) expected error, got nil", tt.formula)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Render(%q) error = %v, want %v", tt.formula, err, tt.wantErr)
			}
		})
	}
}

// TestRender_Styles 测试样式命令
func TestRender_Styles(t *testing.T) {
	r := New()
	got, err := r.Render(`\mathbf{v}`, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "<b>v</b>" {
		t.Errorf("Render(\\mathbf{v}) = %q, want %q", got, "<b>v</b>")
	}
}
