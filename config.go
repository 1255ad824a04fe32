package richtext

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/amityvox/richtext-go/internal/types"
)

// 导出类型别名
type (
	Symbol       = types.Symbol
	RenderConfig = types.RenderConfig
	MemberInfo   = types.MemberInfo
	RoleInfo     = types.RoleInfo
	MathRenderer = types.MathRenderer
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// LoadConfig reads a RenderConfig from a YAML file, filling unset fields
// with defaults.
func LoadConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := types.DefaultRenderConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Symbol == nil {
		cfg.Symbol = types.DefaultSymbol()
	}
	if cfg.DefaultRoleColor == "" {
		cfg.DefaultRoleColor = types.DefaultRenderConfig().DefaultRoleColor
	}
	return cfg, nil
}
