package model

type InsightType string

const (
	InsightStrength    InsightType = "strength"
	InsightOpportunity InsightType = "opportunity"
	InsightWarning     InsightType = "warning"
	InsightPrediction  InsightType = "prediction"
)

// Insight 规则推导出的诊断结论，仅作为建议文本返回给调用方，
// ActionLabel/TargetItemID 是给前端触发后续操作的提示
// swagger:model Insight
type Insight struct {
	Type         InsightType `json:"type"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Confidence   int         `json:"confidence"`
	ActionLabel  string      `json:"actionLabel,omitempty"`
	TargetItemID string      `json:"targetItemId,omitempty"`
}
