package service

import (
	"context"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"math"
	"strings"

	"gorm.io/gorm"
)

// 各规则的固定置信度
const (
	confidenceStrength = 92
	confidenceGap      = 88
	confidenceVelocity = 75
	confidenceTrending = 85
	confidenceTopPick  = 82
	confidenceSchedule = 70
)

// gapKeywords 触发"关键技能缺口"告警的后端方向关键词
var gapKeywords = []string{"python", "backend", "database", "node", "sql"}

type InsightService struct {
	ProfileRepo *repository.ProfileRepository
	CatalogRepo *repository.CatalogRepository
	Weights     *WeightsSource
}

func NewInsightService(
	profileRepo *repository.ProfileRepository,
	catalogRepo *repository.CatalogRepository,
	weights *WeightsSource,
) *InsightService {
	return &InsightService{
		ProfileRepo: profileRepo,
		CatalogRepo: catalogRepo,
		Weights:     weights,
	}
}

// InsightsForUser 装载画像与目录后生成诊断；画像缺失按空画像处理
func (s *InsightService) InsightsForUser(ctx context.Context, userID uint) ([]model.Insight, error) {
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

	scored := ScoreCatalog(profile, catalog, s.Weights.Load())
	return GenerateInsights(profile, catalog, scored), nil
}

// GenerateInsights 按固定顺序执行六条规则，每条最多产出一条诊断。
// 纯函数，方便单独测试。
func GenerateInsights(profile *model.LearnerProfile, catalog []model.CatalogItem, scored []model.ScoredItem) []model.Insight {
	if profile == nil {
		profile = &model.LearnerProfile{}
	}

	insights := make([]model.Insight, 0, 6)

	// 1. 强项诊断：强技能达到 3 项
	if len(profile.StrongSkills) >= 3 {
		title, desc := strengthMessage(profile.StrongSkills)
		insights = append(insights, model.Insight{
			Type:        model.InsightStrength,
			Title:       title,
			Description: desc,
			Confidence:  confidenceStrength,
		})
	}

	// 2. 缺口告警：全栈目标且薄弱技能命中后端关键词
	if strings.Contains(strings.ToLower(profile.LearningGoal), "full-stack") {
		matched := matchedGapKeywords(profile.WeakSkills)
		if len(matched) > 0 {
			title, desc := gapWarningMessage(matched)
			insight := model.Insight{
				Type:        model.InsightWarning,
				Title:       title,
				Description: desc,
				Confidence:  confidenceGap,
			}
			if target := firstItemWithKeywords(catalog, matched); target != nil {
				insight.TargetItemID = target.ID
				insight.ActionLabel = "去补齐"
			}
			insights = append(insights, insight)
		}
	}

	// 3. 速度预测：总是产出
	months := int(math.Ceil(6 - float64(len(profile.CompletedItems))*0.8))
	title, desc := velocityMessage(months)
	insights = append(insights, model.Insight{
		Type:        model.InsightPrediction,
		Title:       title,
		Description: desc,
		Confidence:  confidenceVelocity,
	})

	// 4. 热门机会：存在热门课程时产出，指向第一个热门条目
	for i := range catalog {
		if catalog[i].IsTrending {
			title, desc := trendingMessage(catalog[i].Title)
			insights = append(insights, model.Insight{
				Type:         model.InsightOpportunity,
				Title:        title,
				Description:  desc,
				Confidence:   confidenceTrending,
				ActionLabel:  "查看课程",
				TargetItemID: catalog[i].ID,
			})
			break
		}
	}

	// 5. 同伴推荐：指向当前最高分课程
	if top := TopScored(scored); top != nil {
		title, desc := topPickMessage(top.Title, top.AffinityScore)
		insights = append(insights, model.Insight{
			Type:         model.InsightOpportunity,
			Title:        title,
			Description:  desc,
			Confidence:   confidenceTopPick,
			ActionLabel:  "查看课程",
			TargetItemID: top.ID,
		})
	}

	// 6. 节奏建议：总是产出
	title, desc = scheduleMessage()
	insights = append(insights, model.Insight{
		Type:        model.InsightPrediction,
		Title:       title,
		Description: desc,
		Confidence:  confidenceSchedule,
	})

	return insights
}

// matchedGapKeywords 返回薄弱技能命中的关键词，保持关键词声明顺序
func matchedGapKeywords(weakSkills []string) []string {
	var matched []string
	for _, kw := range gapKeywords {
		for _, skill := range weakSkills {
			if skillMatches(skill, kw) {
				matched = append(matched, kw)
				break
			}
		}
	}
	return matched
}

// firstItemWithKeywords 第一个标签命中任一关键词的目录条目
func firstItemWithKeywords(catalog []model.CatalogItem, keywords []string) *model.CatalogItem {
	for i := range catalog {
		for _, tag := range catalog[i].Tags {
			if matchesAnySkill(tag, keywords) {
				return &catalog[i]
			}
		}
	}
	return nil
}
