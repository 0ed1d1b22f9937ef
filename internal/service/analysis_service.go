package service

import (
	"context"
	"encoding/json"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// InsightSource 为分析运行提供最终的诊断列表
type InsightSource interface {
	InsightsForUser(ctx context.Context, userID uint) ([]model.Insight, error)
}

// analysisRun 一次进行中或已完成的分析。
// seq 用于识别过期的完成回调：重启分析后旧回调即便触发也会被丢弃。
type analysisRun struct {
	seq      uint64
	state    model.AnalysisState
	timer    *time.Timer
	insights []model.Insight
}

// AnalysisService 模拟的分析状态机：每个用户同一时刻最多一次运行，
// 运行期间重新开始会取消上一次的待完成回调（后发先至）。
type AnalysisService struct {
	Source InsightSource
	Redis  *redis.Client
	Delay  time.Duration

	mu   sync.Mutex
	seq  uint64
	runs map[uint]*analysisRun
}

func NewAnalysisService(source InsightSource, rdb *redis.Client, delay time.Duration) *AnalysisService {
	return &AnalysisService{
		Source: source,
		Redis:  rdb,
		Delay:  delay,
		runs:   make(map[uint]*analysisRun),
	}
}

// Start 启动（或重启）该用户的分析
func (s *AnalysisService) Start(userID uint) model.AnalysisState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.runs[userID]; ok && prev.state == model.AnalysisRunning {
		// 显式作废旧句柄，避免过期回调覆盖新一轮结果
		prev.timer.Stop()
		monitoring.AnalysisRuns.WithLabelValues("cancelled").Inc()
	}

	s.seq++
	run := &analysisRun{seq: s.seq, state: model.AnalysisRunning}
	run.timer = time.AfterFunc(s.Delay, func() {
		s.complete(userID, run.seq)
	})
	s.runs[userID] = run

	monitoring.AnalysisRuns.WithLabelValues("started").Inc()
	return model.AnalysisRunning
}

// Status 返回当前状态；从未启动过时为 idle
func (s *AnalysisService) Status(userID uint) model.AnalysisStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[userID]
	if !ok {
		return model.AnalysisStatus{State: model.AnalysisIdle}
	}
	return model.AnalysisStatus{State: run.state, Insights: run.insights}
}

func (s *AnalysisService) complete(userID uint, seq uint64) {
	ctx := context.Background()

	// 诊断计算放在锁外
	insights, err := s.Source.InsightsForUser(ctx, userID)
	if err != nil {
		insights = []model.Insight{}
	}

	s.mu.Lock()
	run, ok := s.runs[userID]
	if !ok || run.seq != seq {
		// 过期回调，新一轮已经开始
		s.mu.Unlock()
		return
	}
	run.state = model.AnalysisComplete
	run.insights = insights
	s.mu.Unlock()

	monitoring.AnalysisRuns.WithLabelValues("completed").Inc()
	s.cacheInsights(ctx, userID, insights)
}

func (s *AnalysisService) cacheInsights(ctx context.Context, userID uint, insights []model.Insight) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(insights)
	if err != nil {
		return
	}
	s.Redis.Set(ctx, analysisCacheKey(userID), raw, 10*time.Minute)
}

func analysisCacheKey(userID uint) string {
	return fmt.Sprintf("analysis:insights:%d", userID)
}
