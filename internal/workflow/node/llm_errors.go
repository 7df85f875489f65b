package node

import "strings"

// responseFormatMarkers 提供商拒绝 response_format 时错误信息中的特征片段
var responseFormatMarkers = [][]string{
	{"response_format"},
	{"json_object"},
	{"json_schema"},
	{"unknown parameter", "response"},
	{"extra inputs are not permitted"},
}

// IsResponseFormatUnsupportedError 判断错误是否源于提供商不支持 response_format
// 命中时调用方去掉 response_format 后以纯提示词约束重试一次
func IsResponseFormatUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range responseFormatMarkers {
		if containsAll(msg, marker) {
			return true
		}
	}
	return false
}

func containsAll(s string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
