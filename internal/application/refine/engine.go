// Package refine 实现提示词分析、澄清问题与精炼的流水线
package refine

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"promptforge-api/internal/application/platform"
	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/application/prompt"
	"promptforge-api/internal/domain/entity"
	wfchain "promptforge-api/internal/workflow/chain"
	wfmodel "promptforge-api/internal/workflow/model"
	wfnode "promptforge-api/internal/workflow/node"
	workflowport "promptforge-api/internal/workflow/port"
	apperrors "promptforge-api/pkg/errors"
	"promptforge-api/pkg/logger"
	"promptforge-api/pkg/metrics"
	"promptforge-api/pkg/tracer"
)

// Options 精炼流水线的模型参数
type Options struct {
	// Provider LLM 提供商名称，为空时使用工厂默认提供商
	Provider string
	// ModelName 写入结果元数据的模型标识
	ModelName           string
	AnalysisMaxTokens   int
	RefinementMaxTokens int
	JSONResponseFormat  bool
}

// Request 一次精炼请求（已通过边界校验）
type Request struct {
	Input         string
	Platform      entity.PlatformID
	Presets       entity.PresetSelection
	CustomPresets entity.CustomPresets
	Answers       map[string]string
}

// Result 精炼结果：要么是澄清问题，要么是最终提示词
type Result struct {
	Questions []string
	Prompt    *entity.RefinedPrompt
	Run       *Run
}

// Engine 精炼流水线，自身不持有请求级可变状态
type Engine struct {
	analysis   *wfchain.AnalysisChain
	refinement *wfchain.RefinementChain
	presets    *preset.Catalog
	platforms  *platform.Registry
	builder    *prompt.Builder
	opts       Options
	now        func() time.Time
}

// NewEngine 创建精炼流水线
func NewEngine(
	factory workflowport.ChatModelFactory,
	presets *preset.Catalog,
	platforms *platform.Registry,
	opts Options,
) *Engine {
	return &Engine{
		analysis:   wfchain.NewAnalysisChain(factory),
		refinement: wfchain.NewRefinementChain(factory),
		presets:    presets,
		platforms:  platforms,
		builder:    prompt.NewBuilder(platforms),
		opts:       opts,
		now:        time.Now,
	}
}

// Run 执行完整流水线
// 未提供回答且存在澄清问题时返回问题并停止，不调用精炼模型
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	ctx = context.WithValue(ctx, logger.PlatformKey, string(req.Platform))
	run := newRun()

	res, err := e.run(ctx, run, req)

	outcome := "refined"
	switch {
	case err != nil:
		outcome = "error"
	case res.Prompt == nil:
		outcome = "questions"
	}
	metrics.RefineRequestsTotal.WithLabelValues(string(req.Platform), outcome).Inc()
	metrics.RefineDuration.WithLabelValues(string(req.Platform)).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}
	res.Run = run
	return res, nil
}

func (e *Engine) run(ctx context.Context, run *Run, req Request) (*Result, error) {
	custom, err := preset.NormalizeCustom(req.CustomPresets)
	if err != nil {
		return nil, run.fail(ctx, err)
	}
	selection := req.Presets.Normalize()
	for category := range selection {
		if !category.IsValid() {
			logger.Warn(ctx, "unknown preset category ignored", "category", string(category))
			delete(selection, category)
		}
	}
	answers := nonBlankAnswers(req.Answers)

	if len(answers) == 0 {
		run.to(ctx, StateAnalyzing)
		analysis, err := e.Analyze(ctx, req.Input)
		if err != nil {
			return nil, run.fail(ctx, err)
		}

		if questions := GenerateQuestions(analysis); len(questions) > 0 {
			run.to(ctx, StateQuestionsPending)
			metrics.RefineQuestionsTotal.Add(float64(len(questions)))
			logger.Info(ctx, "clarifying questions generated",
				"count", len(questions),
				"ambiguity_score", analysis.AmbiguityScore,
			)
			return &Result{Questions: questions}, nil
		}
	}

	run.to(ctx, StateRefining)
	refined, err := e.refine(ctx, req, selection, custom, answers)
	if err != nil {
		return nil, run.fail(ctx, err)
	}
	run.to(ctx, StateDone)
	return &Result{Prompt: refined}, nil
}

// Analyze 调用分析模型并解析为 PromptAnalysis
func (e *Engine) Analyze(ctx context.Context, input string) (entity.PromptAnalysis, error) {
	ctx, span := tracer.Start(ctx, "refine.analyze")
	defer span.End()

	msg, err := e.analysis.Invoke(ctx, &wfmodel.AnalysisInput{
		Input:              input,
		Provider:           e.opts.Provider,
		MaxTokens:          positive(e.opts.AnalysisMaxTokens),
		JSONResponseFormat: e.opts.JSONResponseFormat,
	})
	if err != nil {
		err = classify(err, apperrors.ErrAnalysisUnavailable)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.PromptAnalysis{}, err
	}

	analysis, err := ParseAnalysis(msg, input)
	if err != nil {
		logger.Warn(ctx, "analysis output unusable",
			"error", err.Error(),
			"output", wfnode.TruncateByRunes(msg.Content, 200),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.PromptAnalysis{}, err
	}
	span.SetAttributes(attribute.Float64("refine.ambiguity_score", analysis.AmbiguityScore))
	return analysis, nil
}

func (e *Engine) refine(
	ctx context.Context,
	req Request,
	selection entity.PresetSelection,
	custom entity.CustomPresets,
	answers []wfmodel.QAPair,
) (*entity.RefinedPrompt, error) {
	// 分析是远程非确定性调用，精炼阶段重新分析
	analysis, err := e.Analyze(ctx, req.Input)
	if err != nil {
		return nil, err
	}

	adapter, err := e.platforms.Get(req.Platform)
	if err != nil {
		return nil, err
	}
	sel := preset.NewResolver(e.presets, custom).Bind(selection)
	draft, err := e.builder.BuildPrompt(analysis, sel, req.Platform)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "refine.refine")
	defer span.End()

	msg, err := e.refinement.Invoke(ctx, &wfmodel.RefinementInput{
		Input:     req.Input,
		Platform:  string(req.Platform),
		Draft:     draft,
		Answers:   answers,
		Provider:  e.opts.Provider,
		MaxTokens: positive(e.opts.RefinementMaxTokens),
	})
	if err != nil {
		err = classify(err, apperrors.ErrRefinementUnavailable)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	text, ok := wfnode.MessageText(msg)
	if !ok {
		err := apperrors.ErrRefinementUnavailable.WithDetail("no text response received from refinement model")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	usage := wfnode.UsageFromMessage(msg, e.opts.Provider, e.opts.ModelName)
	logger.Info(ctx, "prompt refined",
		"answers", len(answers),
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
	)

	return &entity.RefinedPrompt{
		Platform:       req.Platform,
		Prompt:         text,
		NegativePrompt: adapter.NegativePrompt(),
		Parameters:     adapter.BuildParameters(sel),
		Metadata: entity.RefinedPromptMetadata{
			OriginalInput:       req.Input,
			PresetsApplied:      selection.Applied(),
			RefinementTimestamp: entity.FormatTimestamp(e.now()),
			ModelUsed:           usage.Model,
		},
	}, nil
}

// nonBlankAnswers 过滤空白回答，并按问题文本排序以保证上下文稳定
func nonBlankAnswers(answers map[string]string) []wfmodel.QAPair {
	pairs := make([]wfmodel.QAPair, 0, len(answers))
	for q, a := range answers {
		if strings.TrimSpace(q) == "" || strings.TrimSpace(a) == "" {
			continue
		}
		pairs = append(pairs, wfmodel.QAPair{Question: q, Answer: strings.TrimSpace(a)})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Question < pairs[j].Question })
	return pairs
}

// classify 保留已分类的应用错误（如凭证缺失），其余归入 fallback
func classify(err error, fallback *apperrors.AppError) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return fallback.WithError(err)
}

func positive(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
