package service

import (
	"context"
	"learnhub_backend/internal/model"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInsightSource struct {
	calls    int64
	insights []model.Insight
}

func (s *stubInsightSource) InsightsForUser(ctx context.Context, userID uint) ([]model.Insight, error) {
	atomic.AddInt64(&s.calls, 1)
	return s.insights, nil
}

func TestAnalysisLifecycle(t *testing.T) {
	source := &stubInsightSource{insights: []model.Insight{
		{Type: model.InsightPrediction, Title: "学习节奏建议", Confidence: 70},
	}}
	svc := NewAnalysisService(source, nil, 20*time.Millisecond)

	// 从未启动过是 idle
	assert.Equal(t, model.AnalysisIdle, svc.Status(1).State)

	state := svc.Start(1)
	assert.Equal(t, model.AnalysisRunning, state)
	assert.Equal(t, model.AnalysisRunning, svc.Status(1).State)
	assert.Empty(t, svc.Status(1).Insights)

	require.Eventually(t, func() bool {
		return svc.Status(1).State == model.AnalysisComplete
	}, time.Second, 5*time.Millisecond)

	status := svc.Status(1)
	require.Len(t, status.Insights, 1)
	assert.Equal(t, 70, status.Insights[0].Confidence)
}

func TestAnalysisRestartCancelsPreviousRun(t *testing.T) {
	source := &stubInsightSource{}
	svc := NewAnalysisService(source, nil, 30*time.Millisecond)

	// 运行中重复启动：旧的计时器被取消，只有最后一次会完成
	svc.Start(1)
	time.Sleep(10 * time.Millisecond)
	svc.Start(1)
	time.Sleep(10 * time.Millisecond)
	svc.Start(1)

	require.Eventually(t, func() bool {
		return svc.Status(1).State == model.AnalysisComplete
	}, time.Second, 5*time.Millisecond)

	// 稳定一段时间后确认没有多余的完成回调执行过
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&source.calls))
}

func TestAnalysisRunsArePerUser(t *testing.T) {
	source := &stubInsightSource{}
	svc := NewAnalysisService(source, nil, 15*time.Millisecond)

	svc.Start(1)
	assert.Equal(t, model.AnalysisRunning, svc.Status(1).State)
	assert.Equal(t, model.AnalysisIdle, svc.Status(2).State)

	require.Eventually(t, func() bool {
		return svc.Status(1).State == model.AnalysisComplete
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, model.AnalysisIdle, svc.Status(2).State)
}

func TestAnalysisRestartAfterComplete(t *testing.T) {
	source := &stubInsightSource{}
	svc := NewAnalysisService(source, nil, 10*time.Millisecond)

	svc.Start(1)
	require.Eventually(t, func() bool {
		return svc.Status(1).State == model.AnalysisComplete
	}, time.Second, 5*time.Millisecond)

	// 完成后可以再次启动
	assert.Equal(t, model.AnalysisRunning, svc.Start(1))
	require.Eventually(t, func() bool {
		return svc.Status(1).State == model.AnalysisComplete
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(2), atomic.LoadInt64(&source.calls))
}
