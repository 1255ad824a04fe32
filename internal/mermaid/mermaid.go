// Package mermaid 生成 mermaid.live 编辑器链接
//
// 只做纯编码（zlib + URL-safe base64 的 pako 格式），不做任何网络请求：
// 渲染管线是同步纯函数，图片抓取不属于它。
package mermaid

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Config Mermaid 配置
type Config struct {
	Theme string `json:"theme"`
}

// DefaultConfig 返回默认 Mermaid 配置
func DefaultConfig() *Config {
	return &Config{
		Theme: "default",
	}
}

// GeneratePako 生成 Mermaid 图表的 pako 编码串
func GeneratePako(graph string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}

	graphData := map[string]interface{}{
		"code":    graph,
		"mermaid": config,
	}

	jsonBytes, err := json.Marshal(graphData)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := writer.Write(jsonBytes); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("pako:%s", base64.URLEncoding.EncodeToString(buf.Bytes())), nil
}

// LiveURL 获取 Mermaid Live 编辑器 URL
func LiveURL(graph string) (string, error) {
	pako, err := GeneratePako(graph, nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://mermaid.live/edit/#%s", pako), nil
}
