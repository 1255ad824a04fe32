package richtext

import (
	"github.com/amityvox/richtext-go/internal/latex"
)

// RenderOptions holds options for message rendering.
type RenderOptions struct {
	Members map[string]MemberInfo
	Roles   map[string]RoleInfo
	Config  *RenderConfig
	Math    MathRenderer
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithMembers supplies the member lookup used to resolve <@id> mentions.
// The map is read-only for the duration of the render pass.
func WithMembers(members map[string]MemberInfo) Option {
	return func(o *RenderOptions) {
		o.Members = members
	}
}

// WithRoles supplies the role lookup used to resolve <@&id> mentions.
func WithRoles(roles map[string]RoleInfo) Option {
	return func(o *RenderOptions) {
		o.Roles = roles
	}
}

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(o *RenderOptions) {
		o.Config = config
	}
}

// WithMathRenderer replaces the built-in LaTeX renderer.
func WithMathRenderer(mr MathRenderer) Option {
	return func(o *RenderOptions) {
		o.Math = mr
	}
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Config: DefaultConfig(),
		Math:   latex.New(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
