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
	workflowport "promptforge-api/internal/workflow/port"
	workflowprompt "promptforge-api/internal/workflow/prompt"
)

// RefinementChain 基于原始输入、平台草稿与用户回答生成最终提示词
type RefinementChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*refinementChainState, *schema.Message]
	chainErr  error
}

func NewRefinementChain(factory workflowport.ChatModelFactory) *RefinementChain {
	return &RefinementChain{factory: factory}
}

type refinementChainState struct {
	In        *wfmodel.RefinementInput
	ChatModel model.BaseChatModel
	Messages  []*schema.Message
	OutMsg    *schema.Message
}

// Invoke 执行一次精炼调用
func (c *RefinementChain) Invoke(ctx context.Context, in *wfmodel.RefinementInput) (*schema.Message, error) {
	if c == nil || c.factory == nil {
		return nil, fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	provider := strings.TrimSpace(in.Provider)
	ctx = llmctx.WithWorkflowProvider(ctx, WorkflowRefinement, provider)
	chatModel, err := c.factory.Get(ctx, provider)
	if err != nil {
		return nil, err
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, &refinementChainState{In: in, ChatModel: chatModel})
}

func (c *RefinementChain) getChain() (compose.Runnable[*refinementChainState, *schema.Message], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = buildRefinementChain(context.Background())
	})
	return c.chain, c.chainErr
}

func buildRefinementChain(ctx context.Context) (compose.Runnable[*refinementChainState, *schema.Message], error) {
	chain := compose.NewChain[*refinementChainState, *schema.Message]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *refinementChainState) (*refinementChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("input is nil")
			}
			return st, nil
		}),
		compose.WithNodeName("refinement.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *refinementChainState) (*refinementChainState, error) {
			tpl, err := defaultPromptRegistry.ChatTemplate(workflowprompt.PromptRefinementV1)
			if err != nil {
				return nil, err
			}
			msgs, err := tpl.Format(ctx, map[string]any{
				"platform":      st.In.Platform,
				"context_block": BuildRefinementContext(st.In),
			})
			if err != nil {
				return nil, err
			}
			st.Messages = msgs
			return st, nil
		}),
		compose.WithNodeName("refinement.template"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *refinementChainState) (*refinementChainState, error) {
			if st.ChatModel == nil {
				return nil, fmt.Errorf("chat model is nil")
			}
			in := st.In
			outMsg, err := st.ChatModel.Generate(ctx, st.Messages,
				buildModelOptions(in.Model, in.Temperature, in.MaxTokens, false)...)
			if err != nil {
				return nil, err
			}
			if outMsg == nil {
				return nil, fmt.Errorf("empty llm response")
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("refinement.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *refinementChainState) (*schema.Message, error) {
			if st == nil || st.OutMsg == nil {
				return nil, fmt.Errorf("state is nil")
			}
			return st.OutMsg, nil
		}),
		compose.WithNodeName("refinement.finalize"),
	)

	return chain.Compile(ctx)
}

// BuildRefinementContext 组装精炼请求的上下文块
// 仅包含非空白回答；问答对的顺序由调用方决定
func BuildRefinementContext(in *wfmodel.RefinementInput) string {
	parts := []string{
		`Original user input: "` + in.Input + `"`,
		"Target platform: " + in.Platform,
		`Assembled prompt with presets: "` + in.Draft + `"`,
	}

	qa := make([]string, 0, len(in.Answers))
	for _, p := range in.Answers {
		answer := strings.TrimSpace(p.Answer)
		if answer == "" {
			continue
		}
		qa = append(qa, "Q: "+p.Question+"\nA: "+answer)
	}
	if len(qa) > 0 {
		parts = append(parts, "Additional context from user:\n"+strings.Join(qa, "\n\n"))
	}
	return strings.Join(parts, "\n\n")
}
