// Package deeplink parses internal AmityVox paths and renders jump anchors.
//
// 支持两种路径：
//
//	/channels/<guild-ulid>/<channel-ulid>[/<message-ulid>]
//	/dm/<channel-ulid>[/<message-ulid>]
//
// ULID 为 26 位 Crockford base32。
package deeplink

import (
	"regexp"

	"github.com/amityvox/richtext-go/internal/escape"
)

const ulid = `[0-9A-HJKMNP-TV-Z]{26}`

var (
	// ChannelPattern 频道路径，可选消息段
	ChannelPattern = regexp.MustCompile(`/channels/(` + ulid + `)/(` + ulid + `)(?:/(` + ulid + `))?`)

	// DMPattern 私信路径，可选消息段
	DMPattern = regexp.MustCompile(`/dm/(` + ulid + `)(?:/(` + ulid + `))?`)
)

// Link 一个解析后的内部深链接
type Link struct {
	GuildID   string
	ChannelID string
	MessageID string
	DM        bool
}

// ParseChannel 解析频道路径匹配结果
func ParseChannel(match []string) *Link {
	return &Link{
		GuildID:   match[1],
		ChannelID: match[2],
		MessageID: match[3],
	}
}

// ParseDM 解析私信路径匹配结果
func ParseDM(match []string) *Link {
	return &Link{
		ChannelID: match[1],
		MessageID: match[2],
		DM:        true,
	}
}

// Href 重建规范化的内部路径
func (l *Link) Href() string {
	var path string
	if l.DM {
		path = "/dm/" + l.ChannelID
	} else {
		path = "/channels/" + l.GuildID + "/" + l.ChannelID
	}
	if l.MessageID != "" {
		path += "/" + l.MessageID
	}
	return path
}

// Label 跳转标签，取决于目标类型
func (l *Link) Label() string {
	if l.MessageID != "" {
		return "Jump to message"
	}
	if l.DM {
		return "Jump to DM"
	}
	return "Jump to channel"
}

// Anchor 渲染跳转锚点，icon 为配置的图标符号
func (l *Link) Anchor(icon string) string {
	html := `<a class="deep-link" href="` + escape.HTML(l.Href()) + `">`
	if icon != "" {
		html += `<span class="deep-link-icon">` + icon + `</span> `
	}
	return html + l.Label() + `</a>`
}
