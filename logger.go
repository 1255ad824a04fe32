package richtext

import (
	"log"
	"os"
)

// Logger 全局日志记录器
//
// 只用于内部缺陷信号（例如回填阶段遇到越界的占位符索引）。
var Logger = log.New(os.Stderr, "[richtext] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}
