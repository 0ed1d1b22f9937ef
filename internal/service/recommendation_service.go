package service

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RecommendationService struct {
	ProfileRepo *repository.ProfileRepository
	CatalogRepo *repository.CatalogRepository
	Weights     *WeightsSource
	Redis       *redis.Client
	CacheTTL    time.Duration
}

func NewRecommendationService(
	profileRepo *repository.ProfileRepository,
	catalogRepo *repository.CatalogRepository,
	weights *WeightsSource,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *RecommendationService {
	return &RecommendationService{
		ProfileRepo: profileRepo,
		CatalogRepo: catalogRepo,
		Weights:     weights,
		Redis:       rdb,
		CacheTTL:    cacheTTL,
	}
}

// GetRecommendations 对目录打分后按查询条件过滤排序。
// 画像不存在时按空画像打分（只剩质量加成），不报错。
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uint, q CatalogQuery) ([]model.ScoredItem, error) {
	monitoring.RecommendationRequests.WithLabelValues(q.NormalizedSort()).Inc()

	cacheKey := recommendCacheKey(userID, s.Weights.Epoch(), q)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	scored, err := s.scoreForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := FilterAndSort(scored, q)
	s.toCache(ctx, cacheKey, result)
	return result, nil
}

// GetWeeklyPlan 以最高分课程为种子生成周计划
func (s *RecommendationService) GetWeeklyPlan(ctx context.Context, userID uint) ([]model.WeeklyPlanSlot, error) {
	scored, err := s.scoreForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	top := TopScored(scored)
	if top == nil {
		return BuildWeeklyPlan(nil), nil
	}
	return BuildWeeklyPlan(&top.CatalogItem), nil
}

func (s *RecommendationService) scoreForUser(ctx context.Context, userID uint) ([]model.ScoredItem, error) {
	profile, err := s.ProfileRepo.FindByUserID(userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		profile = &model.LearnerProfile{UserID: userID}
	}

	catalog, err := s.CatalogRepo.List()
	if err != nil {
		return nil, err
	}

	return ScoreCatalog(profile, catalog, s.Weights.Load()), nil
}

// recommendCacheKey 查询部分做哈希，原始取值里的分隔符不会造成键冲突；
// epoch 跟随权重版本，热更新后旧缓存自然失效
func recommendCacheKey(userID uint, epoch uint64, q CatalogQuery) string {
	h := fnv.New64a()
	for _, part := range []string{q.Text, q.Category, q.Level, q.NormalizedSort()} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("recommend:%d:e%d:%x", userID, epoch, h.Sum64())
}

func (s *RecommendationService) fromCache(ctx context.Context, key string) ([]model.ScoredItem, bool) {
	if s.Redis == nil {
		return nil, false
	}
	raw, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var items []model.ScoredItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (s *RecommendationService) toCache(ctx context.Context, key string, items []model.ScoredItem) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, raw, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("recommendation cache write failed", zap.Error(err))
	}
}

// InvalidateCache 画像变更后清掉该用户的缓存视图
func (s *RecommendationService) InvalidateCache(ctx context.Context, userID uint) {
	s.deleteByPattern(ctx, fmt.Sprintf("recommend:%d:*", userID))
}

// InvalidateAllCaches 目录变更影响所有用户的推荐结果
func (s *RecommendationService) InvalidateAllCaches(ctx context.Context) {
	s.deleteByPattern(ctx, "recommend:*")
}

func (s *RecommendationService) deleteByPattern(ctx context.Context, pattern string) {
	if s.Redis == nil {
		return
	}
	keys, err := s.Redis.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	s.Redis.Del(ctx, keys...)
}
