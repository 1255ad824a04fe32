package types

// MemberInfo 频道成员的显示信息
//
// 渲染 <@id> 提及时的名称优先级：Nickname → DisplayName → Username。
type MemberInfo struct {
	Nickname    string `yaml:"nickname" json:"nickname"`
	DisplayName string `yaml:"display_name" json:"display_name"`
	Username    string `yaml:"username" json:"username"`
}

// RoleInfo 角色的显示信息
//
// Color 必须是严格的十六进制颜色（# + 3/4/6/8 位），否则使用默认颜色。
type RoleInfo struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// Symbol 定义各类元素的显示符号
type Symbol struct {
	DeepLink string `yaml:"deep_link"`
}

// DefaultSymbol 返回默认符号配置
func DefaultSymbol() *Symbol {
	return &Symbol{
		DeepLink: "🔗",
	}
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Symbol           *Symbol `yaml:"symbol"`
	DefaultRoleColor string  `yaml:"default_role_color"`
	MermaidLinks     bool    `yaml:"mermaid_links"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Symbol:           DefaultSymbol(),
		DefaultRoleColor: "#99aab5",
	}
}

// MathRenderer converts a LaTeX-like formula to an HTML fragment.
//
// Implementations must return an error on parse failure instead of emitting
// partial output; the pipeline converts the error into fallback markup.
type MathRenderer interface {
	Render(formula string, display bool) (string, error)
}
