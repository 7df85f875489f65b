package node

import (
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/eino/schema"
)

// TruncateByRunes 按字符数截断，用于日志中的模型输出摘录
func TruncateByRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}

// MessageText 返回消息中的文本内容，纯空白视为无文本
func MessageText(msg *schema.Message) (string, bool) {
	if msg == nil {
		return "", false
	}
	text := strings.TrimSpace(msg.Content)
	return text, text != ""
}
