package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	llmctx "promptforge-api/internal/domain/service"
	wfmodel "promptforge-api/internal/workflow/model"
	wfnode "promptforge-api/internal/workflow/node"
	workflowport "promptforge-api/internal/workflow/port"
	workflowprompt "promptforge-api/internal/workflow/prompt"
	"promptforge-api/pkg/logger"
)

// AnalysisChain 将原始输入交给模型做结构化分析，输出模型原始消息
type AnalysisChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*analysisChainState, *schema.Message]
	chainErr  error
}

func NewAnalysisChain(factory workflowport.ChatModelFactory) *AnalysisChain {
	return &AnalysisChain{factory: factory}
}

type analysisChainState struct {
	In        *wfmodel.AnalysisInput
	ChatModel model.BaseChatModel
	Messages  []*schema.Message
	OutMsg    *schema.Message
}

// Invoke 执行一次分析调用
// ChatModel 在进入 chain 之前解析，凭证缺失等错误不会被编排层包装
func (c *AnalysisChain) Invoke(ctx context.Context, in *wfmodel.AnalysisInput) (*schema.Message, error) {
	if c == nil || c.factory == nil {
		return nil, fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	provider := strings.TrimSpace(in.Provider)
	ctx = llmctx.WithWorkflowProvider(ctx, WorkflowAnalysis, provider)
	chatModel, err := c.factory.Get(ctx, provider)
	if err != nil {
		return nil, err
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, &analysisChainState{In: in, ChatModel: chatModel})
}

func (c *AnalysisChain) getChain() (compose.Runnable[*analysisChainState, *schema.Message], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = buildAnalysisChain(context.Background())
	})
	return c.chain, c.chainErr
}

func buildAnalysisChain(ctx context.Context) (compose.Runnable[*analysisChainState, *schema.Message], error) {
	chain := compose.NewChain[*analysisChainState, *schema.Message]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *analysisChainState) (*analysisChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("input is nil")
			}
			if strings.TrimSpace(st.In.Input) == "" {
				return nil, fmt.Errorf("input is empty")
			}
			return st, nil
		}),
		compose.WithNodeName("analysis.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *analysisChainState) (*analysisChainState, error) {
			tpl, err := defaultPromptRegistry.ChatTemplate(workflowprompt.PromptAnalysisV1)
			if err != nil {
				return nil, err
			}
			msgs, err := tpl.Format(ctx, map[string]any{"input": st.In.Input})
			if err != nil {
				return nil, err
			}
			st.Messages = msgs
			return st, nil
		}),
		compose.WithNodeName("analysis.template"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *analysisChainState) (*analysisChainState, error) {
			if st.ChatModel == nil {
				return nil, fmt.Errorf("chat model is nil")
			}
			in := st.In

			outMsg, err := st.ChatModel.Generate(ctx, st.Messages,
				buildModelOptions(in.Model, in.Temperature, in.MaxTokens, in.JSONResponseFormat)...)
			if err != nil && in.JSONResponseFormat && wfnode.IsResponseFormatUnsupportedError(err) {
				logger.Warn(ctx, "llm json_object not supported, fallback to prompt-only",
					"provider", strings.TrimSpace(in.Provider),
					"model", strings.TrimSpace(in.Model),
					"error", err.Error(),
				)
				outMsg, err = st.ChatModel.Generate(ctx, st.Messages,
					buildModelOptions(in.Model, in.Temperature, in.MaxTokens, false)...)
			}
			if err != nil {
				return nil, err
			}
			if outMsg == nil {
				return nil, fmt.Errorf("empty llm response")
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("analysis.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *analysisChainState) (*schema.Message, error) {
			if st == nil || st.OutMsg == nil {
				return nil, fmt.Errorf("state is nil")
			}
			return st.OutMsg, nil
		}),
		compose.WithNodeName("analysis.finalize"),
	)

	return chain.Compile(ctx)
}
