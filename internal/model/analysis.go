package model

type AnalysisState string

const (
	AnalysisIdle     AnalysisState = "idle"
	AnalysisRunning  AnalysisState = "running"
	AnalysisComplete AnalysisState = "complete"
)

// AnalysisStatus 模拟分析的当前状态；完成后携带生成的诊断列表
// swagger:model AnalysisStatus
type AnalysisStatus struct {
	State    AnalysisState `json:"state"`
	Insights []Insight     `json:"insights,omitempty"`
}
