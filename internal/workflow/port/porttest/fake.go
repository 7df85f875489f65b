// Package porttest 提供 port 接口的内存实现，供测试使用
package porttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Reply 预置的一次模型响应
type Reply struct {
	Content string
	Err     error
	// Nil 为 true 时返回 nil 消息
	Nil bool
}

// Call 一次 Generate 调用的记录
type Call struct {
	Messages  []*schema.Message
	MaxTokens *int
	Model     *string
}

// ChatModel 按顺序返回预置响应，并记录每次调用
type ChatModel struct {
	mu      sync.Mutex
	replies []Reply
	Calls   []Call
}

// NewChatModel 创建带预置响应的 ChatModel
func NewChatModel(replies ...Reply) *ChatModel {
	return &ChatModel{replies: replies}
}

// Generate 实现 model.BaseChatModel
func (m *ChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	common := model.GetCommonOptions(nil, opts...)
	m.Calls = append(m.Calls, Call{Messages: input, MaxTokens: common.MaxTokens, Model: common.Model})

	if len(m.replies) == 0 {
		return nil, fmt.Errorf("porttest: no reply queued for call %d", len(m.Calls))
	}
	r := m.replies[0]
	m.replies = m.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Nil {
		return nil, nil
	}
	return schema.AssistantMessage(r.Content, nil), nil
}

// Stream 实现 model.BaseChatModel，返回单帧流
func (m *ChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// CallCount 返回已发生的调用次数
func (m *ChatModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Factory 返回固定 ChatModel 或固定错误，并记录请求的提供商名称
type Factory struct {
	mu        sync.Mutex
	Model     model.BaseChatModel
	Err       error
	Providers []string
}

// Get 实现 port.ChatModelFactory
func (f *Factory) Get(_ context.Context, name string) (model.BaseChatModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Providers = append(f.Providers, name)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Model, nil
}
