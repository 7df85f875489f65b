package model

// AnalysisInput 分析链输入
type AnalysisInput struct {
	Input string

	Provider string
	Model    string

	Temperature *float32
	MaxTokens   *int

	// JSONResponseFormat 请求 response_format=json_object，提供商不支持时退化为纯提示词约束
	JSONResponseFormat bool
}

// QAPair 澄清问题与用户回答
type QAPair struct {
	Question string
	Answer   string
}

// RefinementInput 精炼链输入
type RefinementInput struct {
	Input    string
	Platform string
	Draft    string
	Answers  []QAPair

	Provider string
	Model    string

	Temperature *float32
	MaxTokens   *int
}
