package service

import (
	"sync/atomic"
)

// WeightsSource 并发安全的权重持有者。
// 配置热更新在独立 goroutine 里整体替换权重，请求侧通过 Load 拿到
// 一份完整快照，避免打分途中读到换了一半的权重。
// 每次替换递增 epoch，缓存键携带 epoch，旧权重算出的缓存视图随之失效。
type WeightsSource struct {
	v     atomic.Pointer[ScoreWeights]
	epoch atomic.Uint64
}

func NewWeightsSource(w ScoreWeights) *WeightsSource {
	s := &WeightsSource{}
	s.v.Store(&w)
	return s
}

// Load 返回当前权重的快照
func (s *WeightsSource) Load() ScoreWeights {
	return *s.v.Load()
}

// Store 整体替换权重并递增 epoch
func (s *WeightsSource) Store(w ScoreWeights) {
	s.v.Store(&w)
	s.epoch.Add(1)
}

// Epoch 当前权重版本号
func (s *WeightsSource) Epoch() uint64 {
	return s.epoch.Load()
}
