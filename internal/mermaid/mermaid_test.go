package mermaid

import (
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

// decodePako 解开 pako 串，还原 JSON 负载
func decodePako(t *testing.T, pako string) map[string]interface{} {
	t.Helper()
	raw, err := base64.URLEncoding.DecodeString(strings.TrimPrefix(pako, "pako:"))
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	zr, err := zlib.NewReader(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("zlib reader: %v", err)
	}
	defer zr.Close()
	jsonBytes, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("zlib read: %v", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &payload); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	return payload
}

// TestGeneratePako_RoundTrip 编码后可还原出原始图表代码
func TestGeneratePako_RoundTrip(t *testing.T) {
	graph := "graph TD;\n  A-->B;"
	pako, err := GeneratePako(graph, nil)
	if err != nil {
		t.Fatalf("GeneratePako() error = %v", err)
	}
	if !strings.HasPrefix(pako, "pako:") {
		t.Fatalf("GeneratePako() = %q, want pako: prefix", pako)
	}
	payload := decodePako(t, pako)
	if payload["code"] != graph {
		t.Errorf("decoded code = %q, want %q", payload["code"], graph)
	}
}

// TestLiveURL 编辑器链接格式
func TestLiveURL(t *testing.T) {
	url, err := LiveURL("graph TD; A-->B")
	if err != nil {
		t.Fatalf("LiveURL() error = %v", err)
	}
	if !strings.HasPrefix(url, "https://mermaid.live/edit/#pako:") {
		t.Errorf("LiveURL() = %q", url)
	}
}
