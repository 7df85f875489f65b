// Package node 提供工作流节点共用的小工具
package node

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject 从模型输出中截取第一个完整的 JSON 对象
// 模型可能在 JSON 前后夹杂说明文字或 markdown 代码块，截取失败时原样返回（去除首尾空白）
func ExtractJSONObject(s string) string {
	raw := strings.TrimSpace(stripCodeFence(s))
	if raw == "" {
		return raw
	}

	start := strings.Index(raw, "{")
	if start < 0 {
		return strings.TrimSpace(s)
	}

	// 逐个尝试以 '{' 开头的位置，取第一个能完整解码的对象
	for start >= 0 {
		dec := json.NewDecoder(strings.NewReader(raw[start:]))
		dec.UseNumber()
		var v json.RawMessage
		if err := dec.Decode(&v); err == nil {
			return string(v)
		}
		next := strings.Index(raw[start+1:], "{")
		if next < 0 {
			break
		}
		start += next + 1
	}

	// 兜底：首个 '{' 到最后一个 '}'，交由调用方解码并报错
	if end := strings.LastIndex(raw, "}"); end > strings.Index(raw, "{") {
		return raw[strings.Index(raw, "{") : end+1]
	}
	return strings.TrimSpace(s)
}

// stripCodeFence 去掉 ```json ... ``` 包裹
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return s
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return t
}
