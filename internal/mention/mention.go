// Package mention renders user, role and @here mentions as pill markup.
package mention

import (
	"regexp"

	"github.com/amityvox/richtext-go/internal/escape"
	"github.com/amityvox/richtext-go/internal/types"
)

// DefaultRoleColor 角色颜色非法或缺失时的回退值
const DefaultRoleColor = "#99aab5"

// UnknownRoleName 查不到角色时的显示名
const UnknownRoleName = "Unknown Role"

// hexColorRe 严格的十六进制颜色：# + 3/4/6/8 位
//
// 颜色直接进入 style 属性，校验失败必须回退到默认值，
// 否则恶意的 color 值可以突破属性上下文。
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// User 渲染用户提及
//
// 名称优先级：nickname → display_name → username → id 前 8 位。
func User(id string, members map[string]types.MemberInfo) string {
	name := truncateID(id)
	if m, ok := members[id]; ok {
		switch {
		case m.Nickname != "":
			name = m.Nickname
		case m.DisplayName != "":
			name = m.DisplayName
		case m.Username != "":
			name = m.Username
		}
	}
	return `<span class="mention mention-user">@` + escape.HTML(name) + `</span>`
}

// Role 渲染角色提及
//
// defaultColor 来自配置；它本身也要通过颜色校验，双重失效时使用常量。
func Role(id string, roles map[string]types.RoleInfo, defaultColor string) string {
	name := UnknownRoleName
	color := ""
	if r, ok := roles[id]; ok {
		if r.Name != "" {
			name = r.Name
		}
		color = r.Color
	}
	return `<span class="mention mention-role" style="color: ` + SafeColor(color, defaultColor) + `">@` + escape.HTML(name) + `</span>`
}

// Here 渲染 @here 提及
func Here() string {
	return `<span class="mention mention-here">@here</span>`
}

// SafeColor 返回通过校验的颜色，否则依次回退到 fallback 和 DefaultRoleColor
func SafeColor(color, fallback string) string {
	if hexColorRe.MatchString(color) {
		return color
	}
	if hexColorRe.MatchString(fallback) {
		return fallback
	}
	return DefaultRoleColor
}

// truncateID id 的前 8 个字符
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
