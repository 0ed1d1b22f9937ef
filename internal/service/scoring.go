package service

import (
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"math"
	"strings"
)

// ScoreWeights 匹配分的可调权重集合
type ScoreWeights struct {
	GapFill           float64
	SkillOverlap      float64
	InterestMatch     float64
	AdvancedBonus     float64
	IntermediateBonus float64
	BeginnerBonus     float64
	GoalBonus         float64
	RatingWeight      float64
	EnrollmentDivisor float64
	EnrollmentCap     float64
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		GapFill:           18,
		SkillOverlap:      12,
		InterestMatch:     10,
		AdvancedBonus:     15,
		IntermediateBonus: 12,
		BeginnerBonus:     10,
		GoalBonus:         20,
		RatingWeight:      8,
		EnrollmentDivisor: 500,
		EnrollmentCap:     5,
	}
}

// ScoreWeightsFromConfig 从配置装载权重，未配置（零值）的字段回退到默认值
func ScoreWeightsFromConfig(cfg config.WeightsConfig) ScoreWeights {
	w := DefaultScoreWeights()
	if cfg.GapFill > 0 {
		w.GapFill = cfg.GapFill
	}
	if cfg.SkillOverlap > 0 {
		w.SkillOverlap = cfg.SkillOverlap
	}
	if cfg.InterestMatch > 0 {
		w.InterestMatch = cfg.InterestMatch
	}
	if cfg.AdvancedBonus > 0 {
		w.AdvancedBonus = cfg.AdvancedBonus
	}
	if cfg.IntermediateBonus > 0 {
		w.IntermediateBonus = cfg.IntermediateBonus
	}
	if cfg.BeginnerBonus > 0 {
		w.BeginnerBonus = cfg.BeginnerBonus
	}
	if cfg.GoalBonus > 0 {
		w.GoalBonus = cfg.GoalBonus
	}
	if cfg.RatingWeight > 0 {
		w.RatingWeight = cfg.RatingWeight
	}
	if cfg.EnrollmentDivisor > 0 {
		w.EnrollmentDivisor = cfg.EnrollmentDivisor
	}
	if cfg.EnrollmentCap > 0 {
		w.EnrollmentCap = cfg.EnrollmentCap
	}
	return w
}

// fullStackTags 学习目标包含 full-stack 时额外加分的后端技术标签，
// 与标签比较用完全相等（忽略大小写），避免 "Data" 误配 "Database"
var fullStackTags = []string{"Node.js", "Express", "PostgreSQL", "API", "Backend", "Database"}

// ScoreItem 计算课程对学习者的匹配分，结果在 [0,100] 内。
// 纯函数：相同输入必得相同分数。
//
// 注意兴趣匹配按"命中的兴趣个数"计，一个兴趣同时命中分类和多个标签只算一次；
// 而补弱/强项按"命中的标签个数"计。两者的不对称是有意保留的。
func ScoreItem(profile *model.LearnerProfile, item *model.CatalogItem, w ScoreWeights) int {
	if profile == nil || item == nil {
		return 0
	}

	score := 0.0

	// 1. 补弱：课程标签命中薄弱技能
	for _, tag := range item.Tags {
		if matchesAnySkill(tag, profile.WeakSkills) {
			score += w.GapFill
		}
	}

	// 2. 强项重叠：课程标签命中已有强项
	for _, tag := range item.Tags {
		if matchesAnySkill(tag, profile.StrongSkills) {
			score += w.SkillOverlap
		}
	}

	// 3. 兴趣匹配：每个命中的兴趣只计一次
	seen := make(map[string]bool, len(profile.Interests))
	for _, interest := range profile.Interests {
		key := strings.ToLower(strings.TrimSpace(interest))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if skillMatches(item.Category, interest) || matchesAnySkill(interest, item.Tags) {
			score += w.InterestMatch
		}
	}

	// 4. 难度加成：最多命中一条
	switch {
	case profile.AvgScore >= 85 && item.Level == model.LevelAdvanced:
		score += w.AdvancedBonus
	case profile.AvgScore >= 70 && item.Level == model.LevelIntermediate:
		score += w.IntermediateBonus
	case profile.AvgScore < 70 && item.Level == model.LevelBeginner:
		score += w.BeginnerBonus
	}

	// 5. 目标加成：全栈目标且课程覆盖后端技术栈
	if strings.Contains(strings.ToLower(profile.LearningGoal), "full-stack") {
		if intersectsFold(item.Tags, fullStackTags) {
			score += w.GoalBonus
		}
	}

	// 6. 质量加成：评分与报名热度
	score += item.Rating / 5 * w.RatingWeight
	score += math.Min(float64(item.EnrollmentCount)/w.EnrollmentDivisor, w.EnrollmentCap)

	final := int(math.Round(score))
	if final > 100 {
		final = 100
	}
	if final < 0 {
		final = 0
	}
	return final
}

// ScoreCatalog 对整个目录打分，返回派生的 ScoredItem 列表，不修改入参
func ScoreCatalog(profile *model.LearnerProfile, catalog []model.CatalogItem, w ScoreWeights) []model.ScoredItem {
	scored := make([]model.ScoredItem, 0, len(catalog))
	for i := range catalog {
		scored = append(scored, model.ScoredItem{
			CatalogItem:   catalog[i],
			AffinityScore: ScoreItem(profile, &catalog[i], w),
		})
	}
	return scored
}

// TopScored 返回得分最高的条目；空目录返回 nil
func TopScored(scored []model.ScoredItem) *model.ScoredItem {
	var top *model.ScoredItem
	for i := range scored {
		if top == nil || scored[i].AffinityScore > top.AffinityScore {
			top = &scored[i]
		}
	}
	return top
}

// skillMatches 不区分大小写，双向子串包含均视为命中
func skillMatches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func matchesAnySkill(value string, skills []string) bool {
	for _, skill := range skills {
		if skillMatches(value, skill) {
			return true
		}
	}
	return false
}

// intersectsFold 两个标签集合是否存在忽略大小写的完全相等项
func intersectsFold(tags, set []string) bool {
	for _, tag := range tags {
		for _, s := range set {
			if strings.EqualFold(strings.TrimSpace(tag), s) {
				return true
			}
		}
	}
	return false
}
